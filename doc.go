// Package cesu8 converts between standard UTF-8 and CESU-8, the
// Compatibility Encoding Scheme for UTF-16: 8-bit.
//
// # Overview
//
// CESU-8 is identical to UTF-8 for code points up to U+FFFF. Supplementary
// code points (U+10000..U+10FFFF) are instead encoded as their UTF-16
// surrogate pair, with each surrogate half written out as its own 3-byte
// UTF-8 form. The sibling package "mutf8" additionally escapes U+0000 as the
// overlong sequence 0xC0 0x80, matching the modified UTF-8 used by the JVM
// and JNI.
//
// # When to Use CESU-8
//
// CESU-8 shows up at the boundary of systems built around UTF-16 code
// units rather than Unicode scalar values:
//   - Interop with Java's modified UTF-8 serialization (via the mutf8
//     package)
//   - Legacy ICU and Oracle database NCHAR encodings
//   - Any wire format whose byte-length accounting assumes UTF-16 code
//     units
//
// # When NOT to Use CESU-8
//
// CESU-8 is not a general-purpose text encoding:
//   - It is explicitly discouraged by the Unicode Consortium for open
//     interchange (UTR #26 restricts it to internal processing)
//   - It is 50% larger than UTF-8 for supplementary-plane text
//   - New protocols should use UTF-8 directly
//
// # Performance
//
// Encode and Decode inspect the input with a SIMD-aware byte-class scanner
// (internal/simdscan) before doing any work: if nothing in the input
// requires transcoding, the result borrows the input directly with no
// allocation and no copy. Only when a 4-byte UTF-8 lead (encode) or an 0xED
// lead byte (decode) is found does either function allocate — exactly once,
// sized by an upper-bound formula, with no further reallocation.
//
// # Basic Usage
//
//	out := cesu8.Encode([]byte("hello \U0001F600"))
//	if out.Owned() {
//	    // out.Bytes() references a freshly allocated buffer
//	}
//
//	back, err := cesu8.Decode(out.Bytes())
//	if err != nil {
//	    var decErr *cesu8.DecodeError
//	    if errors.As(err, &decErr) {
//	        fmt.Println(decErr.Kind, decErr.Offset)
//	    }
//	}
//
//	// Never fails; malformed sequences become U+FFFD.
//	lossy := cesu8.DecodeLossy(maybeMalformed)
//
// # Concurrency
//
// Every function here is a pure, reentrant transform from an input slice to
// a freshly produced Output: there is no shared mutable state, no global
// cache, and no initialization phase beyond resolving SIMD capability once
// at process start. Multiple goroutines may call Encode/Decode/DecodeLossy
// concurrently on disjoint inputs with no synchronization.
package cesu8
