// Package hash2 provides double-hash functions for Base58Check checksums.
//
// Every provider satisfies base58.DoubleHasher. SHA256d is the one Bitcoin,
// Tron and most Base58Check formats use; the others serve chains and formats
// that take their checksum from a different digest.
package hash2

import (
	"fmt"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ethereum/go-ethereum/crypto"
	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/sha3"

	"github.com/Amr-9/b58check/pkg/base58"
)

// Func is a double hash that cannot fail.
type Func func(data []byte) [32]byte

// DoubleHash implements base58.DoubleHasher.
func (f Func) DoubleHash(data []byte) ([32]byte, error) {
	return f(data), nil
}

// Double composes a single 32-byte hash with itself: single(single(data)).
func Double(single func([]byte) [32]byte) Func {
	return func(data []byte) [32]byte {
		first := single(data)
		return single(first[:])
	}
}

var (
	// SHA256d is SHA-256(SHA-256(data)) using the SIMD accelerated SHA-256.
	SHA256d = Double(sha256.Sum256)

	// ChainHash is btcd's double SHA-256, the checksum used by btcutil.
	ChainHash = Func(func(data []byte) [32]byte {
		return chainhash.DoubleHashH(data)
	})

	// Keccak256d is Keccak-256(Keccak-256(data)).
	Keccak256d = Double(func(data []byte) [32]byte {
		var out [32]byte
		copy(out[:], crypto.Keccak256(data))
		return out
	})

	// SHA3d is SHA3-256(SHA3-256(data)).
	SHA3d = Double(sha3.Sum256)
)

var registry = map[string]Func{
	"sha256d":    SHA256d,
	"chainhash":  ChainHash,
	"keccak256d": Keccak256d,
	"sha3d":      SHA3d,
}

// Names returns the names accepted by ByName, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the provider registered under name (case-insensitive).
func ByName(name string) (base58.DoubleHasher, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown hash %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// NewChecker returns a base58.Checker backed by the named provider.
func NewChecker(name string) (*base58.Checker, error) {
	h, err := ByName(name)
	if err != nil {
		return nil, err
	}
	return base58.NewChecker(h)
}
