// Package base58 implements the Bitcoin flavour of Base58 and the Base58Check
// checksum wrapper around it.
//
// Decode and Encode work on caller-owned buffers and report capacity problems
// with the exact size needed, so a caller can retry with a bigger buffer.
// The checksum hash is never chosen by this package: it is injected into a
// Checker as a DoubleHasher.
package base58

//go:generate go run ../../cmd/gen_tables -out digits_table.go

// Alphabet is the ordered Base58 alphabet (excludes 0, O, I, l).
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Radix is the number of symbols in Alphabet.
const Radix = 58

// ZeroSymbol encodes a single leading zero byte.
const ZeroSymbol = '1'

// MaxInputLen bounds the length of the binary input to Encode and of the text
// input to Decode. Scratch space is allocated per call in proportion to it.
const MaxInputLen = 64 << 10

// DigitValue returns the value (0-57) of c in Alphabet.
// The second result is false for any byte outside the alphabet, including
// every byte with the high bit set.
func DigitValue(c byte) (int, bool) {
	if c&0x80 != 0 {
		return 0, false
	}
	d := digitsMap[c]
	if d < 0 {
		return 0, false
	}
	return int(d), true
}

// AlphabetChar returns the symbol for digit d. It panics if d is not in 0..57.
func AlphabetChar(d int) byte {
	return Alphabet[d]
}

// IsValid reports whether s contains only Base58 symbols.
func IsValid(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := DigitValue(s[i]); !ok {
			return false
		}
	}
	return true
}

// InvalidChars returns the runes of s that are not Base58 symbols, in order.
// Useful for telling a user exactly what to fix in a pattern or address.
func InvalidChars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if c >= 0x80 {
			invalid = append(invalid, c)
			continue
		}
		if _, ok := DigitValue(byte(c)); !ok {
			invalid = append(invalid, c)
		}
	}
	return invalid
}
