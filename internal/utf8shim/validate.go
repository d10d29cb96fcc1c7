// Package utf8shim is the seam the transcoding engine delegates full UTF-8
// validation to: a single-method interface plus a default implementation
// backed by the standard library's own unicode/utf8 package.
package utf8shim

import "unicode/utf8"

// Validator validates a byte slice as UTF-8.
type Validator interface {
	// Validate reports whether b is valid UTF-8. If it is not, offset is the
	// byte index of the first invalid byte.
	Validate(b []byte) (ok bool, offset int)
}

// Default is the Validator every pipeline uses unless a caller supplies
// another. It delegates to unicode/utf8: Go's own battle-tested validator,
// the natural external collaborator this interface exists to wrap.
var Default Validator = stdlibValidator{}

type stdlibValidator struct{}

func (stdlibValidator) Validate(b []byte) (ok bool, offset int) {
	if utf8.Valid(b) {
		return true, 0
	}
	return false, firstInvalidOffset(b)
}

// firstInvalidOffset walks b one rune at a time and returns the byte index
// where decoding first produces utf8.RuneError with a one-byte-wide result —
// utf8's own signal for "this byte does not begin (or continue) a valid
// encoding".
func firstInvalidOffset(b []byte) int {
	offset := 0
	for offset < len(b) {
		r, size := utf8.DecodeRune(b[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset
		}
		offset += size
	}
	return offset
}

// ValidateScalar reports whether the single UTF-8 scalar starting at b[0]
// decodes cleanly, and its encoded width. It is used by the decoder to
// validate one code point at a time without the cost of Validator.Validate's
// whole-slice scan.
func ValidateScalar(b []byte) (ok bool, size int) {
	if len(b) == 0 {
		return false, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return false, size
	}
	return true, size
}
