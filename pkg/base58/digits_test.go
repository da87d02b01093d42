package base58

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitsMapMatchesAlphabet(t *testing.T) {
	require.Len(t, Alphabet, Radix)

	valid := 0
	for c := 0; c < 256; c++ {
		d, ok := DigitValue(byte(c))
		if !ok {
			assert.Equal(t, int8(-1), digitsMap[c], "byte 0x%02x", c)
			continue
		}
		valid++
		assert.Equal(t, byte(c), AlphabetChar(d), "byte 0x%02x", c)
	}
	assert.Equal(t, Radix, valid)
}

func TestDigitValue(t *testing.T) {
	for _, tc := range []struct {
		c    byte
		want int
		ok   bool
	}{
		{'1', 0, true},
		{'9', 8, true},
		{'A', 9, true},
		{'H', 16, true},
		{'J', 17, true},
		{'Z', 32, true},
		{'a', 33, true},
		{'k', 43, true},
		{'m', 44, true},
		{'z', 57, true},
		{'0', 0, false},
		{'O', 0, false},
		{'I', 0, false},
		{'l', 0, false},
		{'+', 0, false},
		{0x00, 0, false},
		{0x80 | '1', 0, false},
		{0xff, 0, false},
	} {
		got, ok := DigitValue(tc.c)
		assert.Equal(t, tc.ok, ok, "byte %q", tc.c)
		assert.Equal(t, tc.want, got, "byte %q", tc.c)
	}
}

func TestInvalidChars(t *testing.T) {
	assert.True(t, IsValid(""))
	assert.True(t, IsValid(Alphabet))
	assert.False(t, IsValid("abc0"))

	assert.Nil(t, InvalidChars("Amr9"))
	assert.Equal(t, []rune{'0', 'O', 'I', 'l', 'é'}, InvalidChars("x0OyIlzé"))
}
