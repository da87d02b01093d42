// Package cid builds and parses version 0 content identifiers: the Base58
// form ("Qm...") of a sha2-256 multihash.
package cid

import (
	"fmt"

	"github.com/multiformats/go-multihash"

	"github.com/Amr-9/b58check/pkg/base58"
)

// V0Len is the length of a CIDv0 multihash: code, length and a 32-byte digest.
const V0Len = 34

// V0 returns the CIDv0 string of data.
func V0(data []byte) (string, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return FromMultihash(sum)
}

// FromMultihash encodes a sha2-256 multihash as a CIDv0 string.
func FromMultihash(mh multihash.Multihash) (string, error) {
	dec, err := multihash.Decode(mh)
	if err != nil {
		return "", err
	}
	if dec.Code != multihash.SHA2_256 || dec.Length != 32 {
		return "", fmt.Errorf("cid: v0 requires sha2-256/32, got %s/%d", dec.Name, dec.Length)
	}
	return base58.EncodeToString(mh), nil
}

// ParseV0 decodes a CIDv0 string into its multihash.
func ParseV0(s string) (multihash.Multihash, error) {
	buf := make([]byte, V0Len)
	n, err := base58.Decode(buf, s)
	if err != nil {
		return nil, fmt.Errorf("cid: %w", err)
	}
	if n != V0Len {
		return nil, fmt.Errorf("cid: decoded %d bytes, want %d", n, V0Len)
	}
	if buf[0] != multihash.SHA2_256 || buf[1] != 32 {
		return nil, fmt.Errorf("cid: not a sha2-256 multihash")
	}
	return multihash.Cast(buf)
}
