// Package address derives and parses Base58 blockchain addresses.
// Supports Bitcoin (P2PKH, P2SH-P2WPKH, P2TR and WIF keys), Tron and Solana.
package address

import (
	"fmt"

	"github.com/Amr-9/b58check/pkg/base58"
	"github.com/Amr-9/b58check/pkg/hash2"
)

// Network represents the blockchain network an address belongs to.
type Network int

const (
	Unknown Network = iota
	Bitcoin         // Bitcoin (secp256k1, SHA256+RIPEMD160, Base58Check/Bech32m)
	Tron            // Tron (secp256k1, Keccak-256, Base58Check)
	Solana          // Solana (Ed25519, Base58)
)

// String returns the network name.
func (n Network) String() string {
	switch n {
	case Bitcoin:
		return "Bitcoin"
	case Tron:
		return "Tron"
	case Solana:
		return "Solana"
	default:
		return "Unknown"
	}
}

// ParseNetwork maps a user supplied name to a Network.
func ParseNetwork(s string) (Network, error) {
	switch s {
	case "bitcoin", "btc":
		return Bitcoin, nil
	case "tron", "trx":
		return Tron, nil
	case "solana", "sol":
		return Solana, nil
	default:
		return Unknown, fmt.Errorf("unknown network %q", s)
	}
}

// AddressType represents the Bitcoin address format.
type AddressType int

const (
	AddressTypeDefault      AddressType = iota // Default for network (P2TR for Bitcoin)
	AddressTypeTaproot                         // P2TR - Taproot (bc1p...)
	AddressTypeLegacy                          // P2PKH - Legacy (1...)
	AddressTypeNestedSegWit                    // P2SH-P2WPKH - Nested SegWit (3...)
)

// String returns the address type name.
func (a AddressType) String() string {
	switch a {
	case AddressTypeTaproot:
		return "Taproot (P2TR)"
	case AddressTypeLegacy:
		return "Legacy (P2PKH)"
	case AddressTypeNestedSegWit:
		return "Nested SegWit (P2SH)"
	default:
		return "Default"
	}
}

// ParseAddressType maps a user supplied name to an AddressType.
func ParseAddressType(s string) (AddressType, error) {
	switch s {
	case "", "default":
		return AddressTypeDefault, nil
	case "taproot", "p2tr":
		return AddressTypeTaproot, nil
	case "legacy", "p2pkh":
		return AddressTypeLegacy, nil
	case "segwit", "nested-segwit", "p2sh":
		return AddressTypeNestedSegWit, nil
	default:
		return AddressTypeDefault, fmt.Errorf("unknown address type %q", s)
	}
}

// Version bytes of the Base58Check formats this package knows.
const (
	VersionP2PKH      = 0x00 // Bitcoin mainnet P2PKH, starts with '1'
	VersionP2SH       = 0x05 // Bitcoin mainnet P2SH, starts with '3'
	VersionWIF        = 0x80 // Bitcoin mainnet private key
	VersionTron       = 0x41 // Tron mainnet, starts with 'T'
	hash160Len        = 20
	wifCompressedFlag = 0x01
)

// Result is a generated key pair and its address.
type Result struct {
	Network    Network
	Type       AddressType
	Address    string
	PrivateKey string // WIF for Bitcoin, hex for Tron, Base58 keypair for Solana
}

// Info describes a parsed Base58Check address.
type Info struct {
	Network Network
	Type    AddressType
	Version byte
	Payload []byte
}

// checker is the double-SHA256 Base58Check codec shared by Bitcoin and Tron.
var checker = mustChecker()

func mustChecker() *base58.Checker {
	c, err := base58.NewChecker(hash2.SHA256d)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and verifies a Base58Check address and identifies its format
// from the version byte.
func Parse(addr string) (Info, error) {
	version, payload, err := checker.Decode(addr)
	if err != nil {
		return Info{}, fmt.Errorf("parse %q: %w", addr, err)
	}

	info := Info{Version: version, Payload: payload}
	switch version {
	case VersionP2PKH:
		info.Network, info.Type = Bitcoin, AddressTypeLegacy
	case VersionP2SH:
		info.Network, info.Type = Bitcoin, AddressTypeNestedSegWit
	case VersionTron:
		info.Network = Tron
	}
	if info.Network != Unknown && len(payload) != hash160Len {
		return Info{}, fmt.Errorf("parse %q: %s payload is %d bytes, want %d", addr, info.Network, len(payload), hash160Len)
	}
	return info, nil
}

// InvalidChars returns any characters of a user pattern that can never appear
// in a Base58 address.
func InvalidChars(pattern string) []rune {
	return base58.InvalidChars(pattern)
}
