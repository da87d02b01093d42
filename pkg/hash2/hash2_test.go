package hash2

import (
	stdsha256 "crypto/sha256"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

var inputs = [][]byte{
	nil,
	{0x00},
	[]byte("hello"),
	make([]byte, 1000),
}

func TestSHA256d(t *testing.T) {
	for _, in := range inputs {
		first := stdsha256.Sum256(in)
		want := stdsha256.Sum256(first[:])

		got, err := SHA256d.DoubleHash(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		got, err = ChainHash.DoubleHash(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestKeccak256d(t *testing.T) {
	for _, in := range inputs {
		want := crypto.Keccak256(crypto.Keccak256(in))
		got, err := Keccak256d.DoubleHash(in)
		require.NoError(t, err)
		assert.Equal(t, want, got[:])
	}
}

func TestSHA3d(t *testing.T) {
	for _, in := range inputs {
		first := sha3.Sum256(in)
		want := sha3.Sum256(first[:])
		got, err := SHA3d.DoubleHash(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"chainhash", "keccak256d", "sha256d", "sha3d"}, Names())

	for _, name := range Names() {
		h, err := ByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, h)
	}

	h, err := ByName("SHA256d")
	require.NoError(t, err)
	got, err := h.DoubleHash([]byte("hello"))
	require.NoError(t, err)
	want, _ := SHA256d.DoubleHash([]byte("hello"))
	assert.Equal(t, want, got)

	_, err = ByName("md5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown hash")
}

func TestNewChecker(t *testing.T) {
	c, err := NewChecker("sha256d")
	require.NoError(t, err)
	s, err := c.Encode(0x00, []byte("hash2"))
	require.NoError(t, err)

	other, err := NewChecker("keccak256d")
	require.NoError(t, err)
	_, _, err = other.Decode(s)
	assert.Error(t, err, "a checksum from one hash must not verify under another")

	_, err = NewChecker("nope")
	assert.Error(t, err)
}
