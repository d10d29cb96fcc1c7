package xcode

import "fmt"

// ErrorKind discriminates the reasons a strict-mode decode can fail. It is
// a discriminator, not a family of error types: callers compare Error.Kind
// directly rather than type-switching.
type ErrorKind int

const (
	// InvalidSurrogatePair marks a 3-byte sequence that should have paired
	// with another but did not: a lone high surrogate, a lone low
	// surrogate, or a high surrogate whose low half is absent or malformed.
	InvalidSurrogatePair ErrorKind = iota

	// InvalidNullEncoding marks a MUTF-8 0xC0 byte not followed by 0x80.
	InvalidNullEncoding

	// InvalidUTF8 marks a non-surrogate, non-overlong sequence that was not
	// valid UTF-8.
	InvalidUTF8

	// UnexpectedEnd marks input that ended mid-sequence.
	UnexpectedEnd
)

// Error implements the error interface for ErrorKind itself, so a bare kind
// (xcode.InvalidUTF8) can be used as an errors.Is target without needing a
// full *Error value.
func (k ErrorKind) Error() string { return k.String() }

func (k ErrorKind) String() string {
	switch k {
	case InvalidSurrogatePair:
		return "invalid surrogate pair"
	case InvalidNullEncoding:
		return "invalid null encoding"
	case InvalidUTF8:
		return "invalid UTF-8"
	case UnexpectedEnd:
		return "unexpected end of input"
	default:
		return "unknown decode error"
	}
}

// Error is the strict-mode decode error: a discriminator plus the byte
// offset, measured in the input stream, of the first offending byte.
type Error struct {
	Kind   ErrorKind
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("simd-cesu8: %s at offset %d", e.Kind, e.Offset)
}

// Is lets errors.Is match a bare ErrorKind against an *Error, e.g.
// errors.Is(err, xcode.InvalidUTF8) without needing an Error value to
// compare against. This is the only error-trait integration this module
// offers; single-purpose codec errors are terminal and never wrapped, so
// there is no propagation chain for a heavier error-handling library
// (github.com/pkg/errors, go.uber.org/multierr) to serve.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && e.Kind == k
}
