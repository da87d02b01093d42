package base58

import "bytes"

// ChecksumLen is the length of the Base58Check integrity trailer.
const ChecksumLen = 4

// DoubleHasher computes hash(hash(data)) for the checksum trailer. Only the
// first ChecksumLen bytes of the digest are used.
type DoubleHasher interface {
	DoubleHash(data []byte) ([32]byte, error)
}

// DoubleHashFunc adapts a function to DoubleHasher.
type DoubleHashFunc func(data []byte) ([32]byte, error)

// DoubleHash calls f(data).
func (f DoubleHashFunc) DoubleHash(data []byte) ([32]byte, error) {
	return f(data)
}

// Checker encodes and verifies Base58Check records:
// version (1 byte) || payload || checksum (4 bytes).
//
// A Checker is safe for concurrent use if its DoubleHasher is.
type Checker struct {
	hasher DoubleHasher
}

// NewChecker returns a Checker that takes its checksums from h.
func NewChecker(h DoubleHasher) (*Checker, error) {
	if h == nil {
		return nil, newError(KindHashUnavailable, "no double hash provided")
	}
	return &Checker{hasher: h}, nil
}

func (c *Checker) checksum(data []byte) ([ChecksumLen]byte, error) {
	var sum [ChecksumLen]byte
	if c == nil || c.hasher == nil {
		return sum, newError(KindHashUnavailable, "no double hash provided")
	}
	digest, err := c.hasher.DoubleHash(data)
	if err != nil {
		return sum, &Error{Kind: KindHashFailed, Message: "double hash failed", Err: err}
	}
	copy(sum[:], digest[:ChecksumLen])
	return sum, nil
}

func (c *Checker) record(version byte, payload []byte) ([]byte, error) {
	if len(payload)+1+ChecksumLen > MaxInputLen {
		return nil, &Error{
			Kind:    KindEncodeFailed,
			Message: "record too long",
			Err:     newError(KindInputTooLong, "record length %d exceeds %d", len(payload)+1+ChecksumLen, MaxInputLen),
		}
	}
	rec := make([]byte, 0, 1+len(payload)+ChecksumLen)
	rec = append(rec, version)
	rec = append(rec, payload...)
	sum, err := c.checksum(rec)
	if err != nil {
		return nil, err
	}
	return append(rec, sum[:]...), nil
}

// Encode returns the Base58Check string for version and payload.
func (c *Checker) Encode(version byte, payload []byte) (string, error) {
	rec, err := c.record(version, payload)
	if err != nil {
		return "", err
	}
	buf := make([]byte, EncodedMaxLen(len(rec)))
	n, err := Encode(buf, rec)
	if err != nil {
		return "", &Error{Kind: KindEncodeFailed, Message: "encoding record", Err: err}
	}
	return string(buf[:n]), nil
}

// EncodeTo writes the Base58Check string for version and payload into dst.
// When dst is too small the error has kind KindEncodeFailed and carries the
// exact Required length.
func (c *Checker) EncodeTo(dst []byte, version byte, payload []byte) (int, error) {
	rec, err := c.record(version, payload)
	if err != nil {
		return 0, err
	}
	n, err := Encode(dst, rec)
	if err != nil {
		e := &Error{Kind: KindEncodeFailed, Message: "encoding record", Err: err}
		e.Required, _ = RequiredLen(err)
		return 0, e
	}
	return n, nil
}

// Verify checks a decoded record bin against the text it was decoded from and
// returns the version byte.
//
// The checksum is verified first. Only then is the number of leading zero
// bytes in bin compared with the number of leading '1' characters in text, so
// a corrupted record always reports KindChecksumMismatch rather than
// KindNonCanonical.
func (c *Checker) Verify(bin []byte, text string) (version byte, err error) {
	if len(bin) < ChecksumLen {
		return 0, newError(KindTooShort, "record of %d bytes has no room for a checksum", len(bin))
	}

	body := bin[:len(bin)-ChecksumLen]
	sum, err := c.checksum(body)
	if err != nil {
		return 0, err
	}
	if !bytes.Equal(sum[:], bin[len(body):]) {
		return 0, newError(KindChecksumMismatch, "checksum mismatch")
	}

	i := 0
	for i < len(bin) && i < len(text) && bin[i] == 0 && text[i] == ZeroSymbol {
		i++
	}
	if (i < len(bin) && bin[i] == 0) || (i < len(text) && text[i] == ZeroSymbol) {
		return 0, newError(KindNonCanonical, "%d leading zero bytes do not match leading '1' run", i)
	}

	return bin[0], nil
}

// Decode decodes a Base58Check string and verifies it against itself in one
// call. It returns the version byte and the payload without the checksum.
func (c *Checker) Decode(text string) (version byte, payload []byte, err error) {
	bin, err := DecodeString(text)
	if err != nil {
		return 0, nil, err
	}
	version, err = c.Verify(bin, text)
	if err != nil {
		return 0, nil, err
	}
	if len(bin) < 1+ChecksumLen {
		return 0, nil, newError(KindTooShort, "record of %d bytes has no version byte", len(bin))
	}
	return version, bin[1 : len(bin)-ChecksumLen], nil
}
