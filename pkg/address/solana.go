package address

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/Amr-9/b58check/pkg/base58"
)

// GenerateSolanaKey generates a new Ed25519 key pair. The address is the
// Base58 public key and the private key is the Base58 64-byte keypair
// (seed + pubkey) wallets import.
func GenerateSolanaKey() (*Result, error) {
	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Result{
		Network:    Solana,
		Address:    SolanaAddress(pubKey),
		PrivateKey: base58.EncodeToString(privKey),
	}, nil
}

// SolanaAddress returns the Base58 form of an Ed25519 public key.
func SolanaAddress(pubKey ed25519.PublicKey) string {
	return base58.EncodeToString(pubKey)
}

// ParseSolana decodes a Solana address into its public key.
func ParseSolana(addr string) (ed25519.PublicKey, error) {
	key := make([]byte, ed25519.PublicKeySize)
	n, err := base58.Decode(key, addr)
	if err != nil {
		return nil, fmt.Errorf("parse solana address %q: %w", addr, err)
	}
	if n != ed25519.PublicKeySize {
		return nil, fmt.Errorf("parse solana address %q: decoded %d bytes, want %d", addr, n, ed25519.PublicKeySize)
	}
	return ed25519.PublicKey(key), nil
}
