package address

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/ripemd160"

	"github.com/Amr-9/b58check/pkg/base58"
)

// GenerateBitcoinKey generates a new random secp256k1 key pair and derives the
// address of the requested type.
func GenerateBitcoinKey(addrType AddressType) (*Result, error) {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	addr, err := BitcoinAddress(privKey.PubKey(), addrType)
	if err != nil {
		return nil, err
	}
	wif, err := WIF(privKey)
	if err != nil {
		return nil, err
	}
	if addrType == AddressTypeDefault {
		addrType = AddressTypeTaproot
	}
	return &Result{
		Network:    Bitcoin,
		Type:       addrType,
		Address:    addr,
		PrivateKey: wif,
	}, nil
}

// BitcoinAddress derives a Bitcoin address from a public key based on the
// address type.
func BitcoinAddress(pubKey *btcec.PublicKey, addrType AddressType) (string, error) {
	switch addrType {
	case AddressTypeLegacy:
		return Legacy(pubKey)
	case AddressTypeNestedSegWit:
		return NestedSegWit(pubKey)
	default:
		return Taproot(pubKey)
	}
}

// Legacy creates a P2PKH (1...) address.
// Legacy address = Base58Check(0x00 + HASH160(pubkey))
func Legacy(pubKey *btcec.PublicKey) (string, error) {
	return checker.Encode(VersionP2PKH, hash160(pubKey.SerializeCompressed()))
}

// NestedSegWit creates a P2SH-P2WPKH (3...) address.
// Address = Base58Check(0x05 + HASH160(0x0014 + HASH160(pubkey)))
func NestedSegWit(pubKey *btcec.PublicKey) (string, error) {
	pubKeyHash := hash160(pubKey.SerializeCompressed())

	// OP_0 (0x00) + push 20 bytes (0x14) + pubkeyhash
	witnessProgram := make([]byte, 0, 2+hash160Len)
	witnessProgram = append(witnessProgram, 0x00, 0x14)
	witnessProgram = append(witnessProgram, pubKeyHash...)

	return checker.Encode(VersionP2SH, hash160(witnessProgram))
}

// Taproot creates a P2TR (bc1p...) address using Bech32m encoding.
// BIP-341: the output key is P + TaggedHash("TapTweak", P_x)*G for a key-path
// only spend.
func Taproot(pubKey *btcec.PublicKey) (string, error) {
	xOnly := schnorr.SerializePubKey(pubKey)

	tweak := taggedHash("TapTweak", xOnly)
	var tweakScalar btcec.ModNScalar
	tweakScalar.SetBytes(&tweak)

	var result, pubKeyJacobian btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&tweakScalar, &result)
	pubKey.AsJacobian(&pubKeyJacobian)
	btcec.AddNonConst(&pubKeyJacobian, &result, &result)
	result.ToAffine()

	tweaked := schnorr.SerializePubKey(btcec.NewPublicKey(&result.X, &result.Y))

	data, err := bech32.ConvertBits(tweaked, 8, 5, true)
	if err != nil {
		return "", err
	}
	// Witness version 1
	data = append([]byte{0x01}, data...)
	return bech32.EncodeM("bc", data)
}

// WIF encodes a private key in Wallet Import Format for a compressed public
// key (starts with K or L on mainnet).
// WIF = Base58Check(0x80 + privKey + 0x01)
func WIF(privKey *btcec.PrivateKey) (string, error) {
	payload := make([]byte, 0, btcec.PrivKeyBytesLen+1)
	payload = append(payload, privKey.Serialize()...)
	payload = append(payload, wifCompressedFlag)
	return checker.Encode(VersionWIF, payload)
}

// ParseWIF decodes a WIF string back into a private key.
func ParseWIF(wif string) (*btcec.PrivateKey, error) {
	version, payload, err := checker.Decode(wif)
	if err != nil {
		return nil, fmt.Errorf("parse WIF: %w", err)
	}
	if version != VersionWIF {
		return nil, fmt.Errorf("parse WIF: version 0x%02x, want 0x%02x", version, VersionWIF)
	}
	switch {
	case len(payload) == btcec.PrivKeyBytesLen+1 && payload[btcec.PrivKeyBytesLen] == wifCompressedFlag:
		payload = payload[:btcec.PrivKeyBytesLen]
	case len(payload) == btcec.PrivKeyBytesLen:
	default:
		return nil, fmt.Errorf("parse WIF: payload is %d bytes", len(payload))
	}
	privKey, _ := btcec.PrivKeyFromBytes(payload)
	return privKey, nil
}

// IsValidPattern checks that a Legacy or Nested SegWit pattern can occur in a
// Base58 address.
func IsValidPattern(pattern string) bool {
	return base58.IsValid(pattern)
}

// hash160 computes RIPEMD160(SHA256(data))
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripemd := ripemd160.New()
	ripemd.Write(sha[:])
	return ripemd.Sum(nil)
}

// taggedHash computes SHA256(SHA256(tag) || SHA256(tag) || data).
func taggedHash(tag string, data []byte) [32]byte {
	tagHash := sha256.Sum256([]byte(tag))

	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	h.Write(data)

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
