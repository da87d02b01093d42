package base58

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Vectors shared with the encoder tests: hex input and its Base58 form.
var hexVectors = []struct {
	hex string
	b58 string
}{
	{"", ""},
	{"61", "2g"},
	{"626262", "a3gV"},
	{"636363", "aPEr"},
	{"73696d706c792061206c6f6e6720737472696e67", "2cFupjhnEsSn59qHXstmK2ffpLv2"},
	{"00eb15231dfceb60925886b67d065299925915aeb172c06647", "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L"},
	{"516b6fcd0f", "ABnLTmg"},
	{"bf4f89001e670274dd", "3SEo3LWLoPntC"},
	{"572e4794", "3EFU7m"},
	{"ecac89cad93923c02321", "EJDM8drfXA6uyA"},
	{"10c8511e", "Rt5zm"},
	{"00000000000000000000", "1111111111"},
	{"000001", "112"},
}

func TestDecodeVectors(t *testing.T) {
	for _, tc := range hexVectors {
		want, err := hex.DecodeString(tc.hex)
		require.NoError(t, err)

		got, err := DecodeString(tc.b58)
		require.NoError(t, err, tc.b58)
		assert.Equal(t, want, got, tc.b58)

		// Exact capacity.
		dst := make([]byte, len(want))
		n, err := Decode(dst, tc.b58)
		require.NoError(t, err, tc.b58)
		assert.Equal(t, len(want), n)
		assert.Equal(t, want, dst)
	}
}

func TestDecodeRightAligned(t *testing.T) {
	dst := make([]byte, 30)
	n, err := Decode(dst, "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L")
	require.NoError(t, err)
	require.Equal(t, 25, n)
	assert.Equal(t, "00eb15231dfceb60925886b67d065299925915aeb172c06647", hex.EncodeToString(dst[len(dst)-n:]))
	assert.Equal(t, make([]byte, 5), dst[:5])
}

func TestDecodeLeadingOne(t *testing.T) {
	dst := make([]byte, 1)
	n, err := Decode(dst, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte{0x00}, dst)
}

func TestDecodeEmpty(t *testing.T) {
	n, err := Decode(nil, "")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = Decode(make([]byte, 8), "")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDecodeInvalidChar(t *testing.T) {
	for _, tc := range []struct {
		in     string
		offset int
	}{
		{"0", 0},
		{"1O", 1},
		{"abcI", 3},
		{"11l", 2},
		{"3EF\x00U7m", 3},
		{"é", 0},
		{" 2g", 0},
	} {
		n, err := Decode(make([]byte, 16), tc.in)
		assert.Equal(t, 0, n)
		require.Error(t, err, tc.in)
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, KindInvalidChar, e.Kind, tc.in)
		assert.Equal(t, tc.offset, e.Offset, tc.in)
	}
}

func TestDecodeTooLarge(t *testing.T) {
	for _, tc := range []struct {
		in       string
		capacity int
	}{
		{"z", 0},                                  // carry past the only limb
		{"a3gV", 2},                               // 3 bytes into 2: high bytes of the top limb
		{"2g", 0},                                 // no limbs at all
		{"11", 1},                                 // zero run longer than capacity
		{"1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L", 24}, // one byte short
		{"5Hueqv", 3},
	} {
		n, err := Decode(make([]byte, tc.capacity), tc.in)
		assert.Equal(t, 0, n, tc.in)
		assert.True(t, IsKind(err, KindTooLarge), "%s into %d: %v", tc.in, tc.capacity, err)
	}
}

func TestDecodeCapacityNotLimbAligned(t *testing.T) {
	// 0x626262 needs 3 bytes: fits a 3 byte buffer, 5 and 7 byte buffers too.
	for _, capacity := range []int{3, 5, 6, 7} {
		dst := make([]byte, capacity)
		n, err := Decode(dst, "a3gV")
		require.NoError(t, err, "capacity %d", capacity)
		assert.Equal(t, 3, n)
		assert.Equal(t, []byte{0x62, 0x62, 0x62}, dst[capacity-n:])
	}
}

func TestDecodeInputTooLong(t *testing.T) {
	_, err := Decode(make([]byte, 1), strings.Repeat("2", MaxInputLen+1))
	assert.True(t, IsKind(err, KindInputTooLong))
}
