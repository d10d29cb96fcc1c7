package cesu8

import "github.com/seancroach/simd-cesu8/internal/xcode"

// Encode converts valid UTF-8 to CESU-8. The caller promises input is
// already valid UTF-8 — Encode is infallible and performs no validation of
// its own beyond what its byte-class scan requires to find 4-byte leads.
//
// If input contains no 4-byte UTF-8 sequence, the result borrows input
// directly and no allocation occurs.
func Encode(input []byte) Output {
	return xcode.Encode(xcode.CESU8, input)
}
