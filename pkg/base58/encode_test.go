package base58

import (
	"encoding/hex"
	"math/rand"
	"strings"
	"testing"

	mrtron "github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeVectors(t *testing.T) {
	for _, tc := range hexVectors {
		src, err := hex.DecodeString(tc.hex)
		require.NoError(t, err)
		assert.Equal(t, tc.b58, EncodeToString(src), tc.hex)
	}
}

func TestEncodeStrings(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"", ""},
		{" ", "Z"},
		{"-", "n"},
		{"0", "q"},
		{"1", "r"},
		{"-1", "4SU"},
		{"11", "4k8"},
		{"abc", "ZiCa"},
		{"1234598760", "3mJr7AoUXx2Wqd"},
		{"abcdefghijklmnopqrstuvwxyz", "3yxU3u1igY8WkgtjK92fbJQCd4BZiiT1v25f"},
		{"Test data", "25JnwSn7XKfNQ"},
	} {
		assert.Equal(t, tc.want, EncodeToString([]byte(tc.in)), tc.in)
	}
}

func TestEncodeEmpty(t *testing.T) {
	n, err := Encode(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestEncodeCapacityRetry(t *testing.T) {
	src, err := hex.DecodeString("00eb15231dfceb60925886b67d065299925915aeb172c06647")
	require.NoError(t, err)

	_, err = Encode(nil, src)
	required, ok := RequiredLen(err)
	require.True(t, ok, "%v", err)
	require.Equal(t, 34, required)

	// One byte short fails with the same answer and leaves dst untouched.
	dst := make([]byte, required-1)
	n, err := Encode(dst, src)
	assert.Equal(t, 0, n)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindInsufficientCapacity, e.Kind)
	assert.Equal(t, required, e.Required)
	assert.Equal(t, make([]byte, required-1), dst)

	dst = make([]byte, required)
	n, err = Encode(dst, src)
	require.NoError(t, err)
	assert.Equal(t, required, n)
	assert.Equal(t, "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L", string(dst))
}

func TestEncodeLeadingZeros(t *testing.T) {
	for z := 0; z <= 10; z++ {
		src := append(make([]byte, z), 0xff, 0x01)
		s := EncodeToString(src)
		assert.Equal(t, strings.Repeat("1", z), s[:z])
		assert.NotEqual(t, byte('1'), s[z], "only zero bytes may produce a leading '1'")
	}
}

func TestEncodeInputTooLong(t *testing.T) {
	_, err := Encode(make([]byte, 8), make([]byte, MaxInputLen+1))
	assert.True(t, IsKind(err, KindInputTooLong))
	assert.Equal(t, "", EncodeToString(make([]byte, MaxInputLen+1)))
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(58))
	for length := 0; length <= 128; length++ {
		src := make([]byte, length)
		rng.Read(src)
		if length > 0 {
			// Force a run of leading zeros on some inputs.
			zeros := rng.Intn(length + 1)
			for i := 0; i < zeros && i < length/3; i++ {
				src[i] = 0
			}
		}

		s := EncodeToString(src)
		if length > 0 {
			assert.Equal(t, mrtron.Encode(src), s, "length %d", length)
		}

		got, err := DecodeString(s)
		require.NoError(t, err, "length %d", length)
		assert.Equal(t, src, got, "length %d", length)
	}
}

func TestRoundTripAllZeros(t *testing.T) {
	for length := 0; length <= 16; length++ {
		src := make([]byte, length)
		s := EncodeToString(src)
		assert.Equal(t, strings.Repeat("1", length), s)

		dst := make([]byte, length)
		n, err := Decode(dst, s)
		require.NoError(t, err)
		assert.Equal(t, length, n)
	}
}

func TestDecodeMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		var sb strings.Builder
		for j := 1 + rng.Intn(60); j > 0; j-- {
			sb.WriteByte(Alphabet[rng.Intn(Radix)])
		}
		s := sb.String()

		want, err := mrtron.Decode(s)
		require.NoError(t, err)
		got, err := DecodeString(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
}
