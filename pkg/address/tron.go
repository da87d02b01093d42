package address

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/crypto"
)

// GenerateTronKey generates a new random secp256k1 key pair and its Tron
// address.
func GenerateTronKey() (*Result, error) {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	addr, err := TronAddress(privKey.PubKey().SerializeUncompressed())
	if err != nil {
		return nil, err
	}
	return &Result{
		Network:    Tron,
		Address:    addr,
		PrivateKey: hex.EncodeToString(privKey.Serialize()),
	}, nil
}

// TronAddress derives a Tron address from an uncompressed public key.
// Tron address = Base58Check(0x41 + last 20 bytes of Keccak256(pubKey[1:]))
// All Tron addresses start with 'T'.
func TronAddress(pubKeyBytes []byte) (string, error) {
	if len(pubKeyBytes) != 65 || pubKeyBytes[0] != 0x04 {
		return "", fmt.Errorf("tron: want 65 byte uncompressed public key, got %d bytes", len(pubKeyBytes))
	}
	// Skip the 0x04 prefix
	hash := crypto.Keccak256(pubKeyBytes[1:])
	return checker.Encode(VersionTron, hash[len(hash)-hash160Len:])
}
