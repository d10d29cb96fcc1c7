package cesu8

import "github.com/seancroach/simd-cesu8/internal/xcode"

// Output is a possibly-borrowed byte sequence: either a zero-copy view of
// the input that was passed to Encode/Decode/DecodeLossy, or a freshly
// allocated, owned buffer. See the package doc for when each occurs.
type Output = xcode.Output
