package cesu8

import "github.com/seancroach/simd-cesu8/internal/xcode"

// Decode converts CESU-8 to UTF-8 in strict mode. If input is not valid
// CESU-8, it returns a *DecodeError describing the first violation and no
// partial output.
//
// If input contains no 0xED lead byte and is already valid UTF-8, the
// result borrows input directly and no allocation occurs.
func Decode(input []byte) (Output, error) {
	out, err := xcode.Decode(xcode.CESU8, input, xcode.Strict, defaultValidator)
	if err != nil {
		return Output{}, err
	}
	return out, nil
}

// DecodeLossy converts CESU-8 to UTF-8, never failing: malformed sequences
// are replaced with U+FFFD rather than surfaced as an error.
func DecodeLossy(input []byte) Output {
	out, _ := xcode.Decode(xcode.CESU8, input, xcode.Lossy, defaultValidator)
	return out
}
