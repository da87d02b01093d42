package base58

// EncodedMaxLen returns an upper bound on the encoded length of n bytes.
// 138/100 over-approximates log(256)/log(58).
func EncodedMaxLen(n int) int {
	return n*138/100 + 1
}

// Encode writes the Base58 encoding of src into dst and returns the number of
// characters written.
//
// If dst is too small nothing is written and the returned *Error has kind
// KindInsufficientCapacity with Required set to the exact length needed.
func Encode(dst, src []byte) (n int, err error) {
	if len(src) > MaxInputLen {
		return 0, newError(KindInputTooLong, "input length %d exceeds %d", len(src), MaxInputLen)
	}

	// Count leading zeros
	zcount := 0
	for zcount < len(src) && src[zcount] == 0 {
		zcount++
	}

	size := EncodedMaxLen(len(src) - zcount)
	buf := make([]byte, size)

	// buf is a big-endian base 58 accumulator. high marks the most significant
	// cell touched so far; cells above it are still zero.
	high := size - 1
	for i := zcount; i < len(src); i++ {
		carry := int(src[i])
		j := size - 1
		for ; j > high || carry != 0; j-- {
			carry += 256 * int(buf[j])
			buf[j] = byte(carry % Radix)
			carry /= Radix
			if j == 0 {
				break
			}
		}
		high = j
	}

	j := 0
	for j < size && buf[j] == 0 {
		j++
	}

	required := zcount + size - j
	if len(dst) < required {
		e := newError(KindInsufficientCapacity, "need %d bytes, have %d", required, len(dst))
		e.Required = required
		return 0, e
	}

	for i := 0; i < zcount; i++ {
		dst[i] = ZeroSymbol
	}
	n = zcount
	for ; j < size; j++ {
		dst[n] = Alphabet[buf[j]]
		n++
	}
	return n, nil
}

// EncodeToString returns the Base58 encoding of src. It returns an empty
// string if src is longer than MaxInputLen.
func EncodeToString(src []byte) string {
	buf := make([]byte, EncodedMaxLen(len(src)))
	n, err := Encode(buf, src)
	if err != nil {
		return ""
	}
	return string(buf[:n])
}
