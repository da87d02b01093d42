package base58

const (
	limbBytes = 4
	limbBits  = limbBytes * 8
	limbMask  = uint64(1)<<limbBits - 1
)

// Decode decodes the Base58 text src into dst. len(dst) is the largest
// decoded size the caller accepts.
//
// On success n is the decoded length and the value is right-aligned: it is
// dst[len(dst)-n:], with one zero byte for each leading '1' of src. On failure
// n is 0 and the contents of dst are unspecified.
func Decode(dst []byte, src string) (n int, err error) {
	if len(src) > MaxInputLen {
		return 0, newError(KindInputTooLong, "text length %d exceeds %d", len(src), MaxInputLen)
	}

	capacity := len(dst)
	limbs := make([]uint32, (capacity+limbBytes-1)/limbBytes)
	bytesLeft := capacity % limbBytes

	// Bits of the most significant limb that lie above the declared capacity.
	var zeroMask uint32
	if bytesLeft > 0 {
		zeroMask = uint32(limbMask << (uint(bytesLeft) * 8))
	}

	// Leading zeros, just count
	zeroCount := 0
	for zeroCount < len(src) && src[zeroCount] == ZeroSymbol {
		zeroCount++
	}

	for i := zeroCount; i < len(src); i++ {
		d, ok := DigitValue(src[i])
		if !ok {
			e := newError(KindInvalidChar, "invalid character %q at offset %d", src[i], i)
			e.Offset = i
			return 0, e
		}

		carry := uint32(d)
		for j := len(limbs) - 1; j >= 0; j-- {
			t := uint64(limbs[j])*Radix + uint64(carry)
			carry = uint32(t >> limbBits)
			limbs[j] = uint32(t & limbMask)
		}

		if carry != 0 {
			return 0, newError(KindTooLarge, "value does not fit in %d bytes", capacity)
		}
		if len(limbs) > 0 && limbs[0]&zeroMask != 0 {
			return 0, newError(KindTooLarge, "value does not fit in %d bytes", capacity)
		}
	}

	out := dst
	j := 0
	if bytesLeft > 0 {
		for i := bytesLeft; i > 0; i-- {
			out[0] = byte(limbs[0] >> (8 * uint(i-1)))
			out = out[1:]
		}
		j++
	}
	for ; j < len(limbs); j++ {
		for i := limbBytes; i > 0; i-- {
			out[0] = byte(limbs[j] >> (8 * uint(i-1)))
			out = out[1:]
		}
	}

	// Canonical length: the significant suffix plus one zero per leading '1'.
	n = capacity
	for i := 0; i < capacity && dst[i] == 0; i++ {
		n--
	}
	n += zeroCount

	if n > capacity {
		return 0, newError(KindTooLarge, "%d leading zeros do not fit in %d bytes", zeroCount, capacity)
	}
	return n, nil
}

// DecodeString decodes s into a newly allocated slice of exactly the decoded
// length.
func DecodeString(s string) ([]byte, error) {
	// 58^L < 256^L, so L bytes always hold an L character string.
	buf := make([]byte, len(s))
	n, err := Decode(buf, s)
	if err != nil {
		return nil, err
	}
	return buf[len(buf)-n:], nil
}
