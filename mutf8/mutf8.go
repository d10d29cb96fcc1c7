// Package mutf8 converts between standard UTF-8 and Modified UTF-8
// (MUTF-8): CESU-8 with U+0000 additionally encoded as the overlong
// two-byte sequence 0xC0 0x80, so an encoded string never contains a
// literal NUL byte. This is the variant used by the JVM's
// DataInput/DataOutput and by JNI's string APIs.
//
// See the sibling package cesu8 for the plain CESU-8 variant and the
// shared Output/DecodeError types both packages return.
package mutf8

import (
	cesu8 "github.com/seancroach/simd-cesu8"
	"github.com/seancroach/simd-cesu8/internal/utf8shim"
	"github.com/seancroach/simd-cesu8/internal/xcode"
)

var defaultValidator = utf8shim.Default

// Encode converts valid UTF-8 to MUTF-8. The caller promises input is
// already valid UTF-8 — Encode is infallible.
//
// If input contains no 4-byte UTF-8 sequence and no NUL byte, the result
// borrows input directly and no allocation occurs.
func Encode(input []byte) cesu8.Output {
	return xcode.Encode(xcode.MUTF8, input)
}

// Decode converts MUTF-8 to UTF-8 in strict mode. If input is not valid
// MUTF-8, it returns a *cesu8.DecodeError describing the first violation
// and no partial output.
//
// If input contains no 0xED and no 0xC0 lead byte and is already valid
// UTF-8, the result borrows input directly and no allocation occurs.
func Decode(input []byte) (cesu8.Output, error) {
	out, err := xcode.Decode(xcode.MUTF8, input, xcode.Strict, defaultValidator)
	if err != nil {
		return cesu8.Output{}, err
	}
	return out, nil
}

// DecodeLossy converts MUTF-8 to UTF-8, never failing: malformed sequences
// are replaced with U+FFFD rather than surfaced as an error.
func DecodeLossy(input []byte) cesu8.Output {
	out, _ := xcode.Decode(xcode.MUTF8, input, xcode.Lossy, defaultValidator)
	return out
}
