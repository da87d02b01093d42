package base58

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind string

const (
	KindInvalidChar          Kind = "INVALID_CHAR"
	KindTooLarge             Kind = "TOO_LARGE"
	KindInsufficientCapacity Kind = "INSUFFICIENT_CAPACITY"
	KindInputTooLong         Kind = "INPUT_TOO_LONG"
	KindHashUnavailable      Kind = "HASH_UNAVAILABLE"
	KindHashFailed           Kind = "HASH_FAILED"
	KindEncodeFailed         Kind = "ENCODE_FAILED"
	KindChecksumMismatch     Kind = "CHECKSUM_MISMATCH"
	KindNonCanonical         Kind = "NON_CANONICAL"
	KindTooShort             Kind = "TOO_SHORT"
)

// Code returns the numeric status libbase58 uses for the same condition
// (-1 mismatch, -2 hash failure, -3 non-canonical, -4 too short), or 0 when
// there is no numeric equivalent.
func (k Kind) Code() int {
	switch k {
	case KindChecksumMismatch:
		return -1
	case KindHashFailed:
		return -2
	case KindNonCanonical:
		return -3
	case KindTooShort:
		return -4
	default:
		return 0
	}
}

// Error is returned by every operation in this package.
type Error struct {
	Kind Kind
	// Offset is the byte offset of the offending character for KindInvalidChar.
	Offset int
	// Required is the exact destination size needed, set for
	// KindInsufficientCapacity and for KindEncodeFailed caused by it.
	Required int
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("base58: %s: %s", e.Kind, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err, or any error it wraps, is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == k {
			return true
		}
		err = e.Err
	}
	return false
}

// RequiredLen extracts the size a retry needs from a capacity failure.
func RequiredLen(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Required > 0 {
		return e.Required, true
	}
	return 0, false
}

func newError(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}
