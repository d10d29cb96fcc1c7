package cesu8

import "github.com/seancroach/simd-cesu8/internal/xcode"

// DecodeError is returned by Decode when strict-mode decoding fails. It
// carries the discriminator describing what went wrong and the byte offset
// in the input at which the violation starts.
type DecodeError = xcode.Error

// ErrorKind discriminates the ways strict decoding can fail.
type ErrorKind = xcode.ErrorKind

// The decode error kinds, usable directly with errors.Is:
//
//	if errors.Is(err, cesu8.InvalidSurrogatePair) { ... }
const (
	InvalidSurrogatePair = xcode.InvalidSurrogatePair
	InvalidNullEncoding  = xcode.InvalidNullEncoding
	InvalidUTF8          = xcode.InvalidUTF8
	UnexpectedEnd        = xcode.UnexpectedEnd
)

// Mode selects strict or lossy decoding. Decode always uses Strict;
// DecodeLossy always uses Lossy. Mode exists as the shared vocabulary the
// internal decode engine is built around.
type Mode = xcode.Mode

const (
	Strict = xcode.Strict
	Lossy  = xcode.Lossy
)
