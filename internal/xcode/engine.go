package xcode

import (
	"unicode/utf8"

	"github.com/seancroach/simd-cesu8/internal/simdscan"
	"github.com/seancroach/simd-cesu8/internal/utf8shim"
)

// Encode re-encodes valid UTF-8 input into the given variant. Callers
// promise input is already valid UTF-8; Encode never fails.
func Encode(variant Variant, input []byte) Output {
	class := simdscan.FourByteLead
	if variant == MUTF8 {
		class = simdscan.FourByteLeadOrNUL
	}

	p, found := simdscan.Find(input, class)
	if !found {
		return borrowed(input)
	}

	remaining := len(input) - p
	dst := make([]byte, 0, encodeCapacity(variant, len(input), remaining))
	dst = append(dst, input[:p]...)

	i := p
	for i < len(input) {
		b := input[i]
		switch {
		case variant == MUTF8 && b == 0x00:
			dst = append(dst, 0xC0, 0x80)
			i++
		case b < 0xF0:
			dst = append(dst, b)
			i++
		default:
			r, size := utf8.DecodeRune(input[i:])
			hi, lo := splitSurrogate(r)
			dst = appendSurrogateHalf(dst, hi)
			dst = appendSurrogateHalf(dst, lo)
			i += size
		}
	}
	return owned(dst)
}

// encodeCapacity returns the one-shot allocation size for Encode's output
// buffer: an upper bound the walk never exceeds, so no reallocation ever
// occurs.
//
// For CESU-8 the only source of growth is a 4-byte UTF-8 sequence (4 input
// bytes becoming two 3-byte surrogate halves, 6 output bytes): growth of 2
// bytes per 4 consumed, bounded by ceil(remaining/2). For MUTF-8 a run of
// NUL bytes grows 1-for-2 (every single input byte can become 2 output
// bytes), a worse ratio than the 4-byte-lead case, so MUTF-8 uses the safe
// remaining-for-remaining bound instead (see DESIGN.md's Open Questions).
func encodeCapacity(variant Variant, total, remaining int) int {
	if variant == MUTF8 {
		return total + remaining
	}
	return total + (remaining+1)/2
}

// Decode converts {CESU-8, MUTF-8} bytes back into UTF-8. In Strict mode
// the first violation is returned as *Error with no partial output; in
// Lossy mode decoding never fails, substituting U+FFFD for malformed
// sequences.
func Decode(variant Variant, input []byte, mode Mode, validate utf8shim.Validator) (Output, *Error) {
	class := simdscan.EDLead
	if variant == MUTF8 {
		class = simdscan.EDOrC0Lead
	}

	p, found := simdscan.Find(input, class)
	if !found {
		if ok, offset := validate.Validate(input); ok {
			return borrowed(input), nil
		} else if mode == Strict {
			return Output{}, &Error{Kind: InvalidUTF8, Offset: offset}
		}
		p = 0
	} else if ok, offset := validate.Validate(input[:p]); !ok {
		if mode == Strict {
			return Output{}, &Error{Kind: InvalidUTF8, Offset: offset}
		}
		p = 0
	}

	dst := make([]byte, 0, decodeCapacity(p, len(input)-p, mode))
	dst = append(dst, input[:p]...)

	i := p
	for i < len(input) {
		var err *Error
		dst, i, err = decodeStep(variant, dst, input, i, mode)
		if err != nil {
			return Output{}, err
		}
	}
	return owned(dst), nil
}

// decodeCapacity returns the one-shot allocation size for Decode's output
// buffer. In Strict mode, decoding never expands: a surrogate pair shrinks
// 6 bytes to 4, an overlong NUL shrinks 2 bytes to 1, and every other byte
// passes straight through, so len(input) is a safe bound. In Lossy mode a
// single malformed byte can be replaced by the 3-byte U+FFFD encoding, the
// worst case being one violation per remaining byte (e.g. a run of lone
// 0x80 continuation bytes), so the unvalidated suffix is sized at 3x.
func decodeCapacity(prefix, remaining int, mode Mode) int {
	if mode == Lossy {
		return prefix + 3*remaining
	}
	return prefix + remaining
}

// decodeStep advances the decoder state machine by exactly one token (a
// surrogate pair, an overlong NUL, or a single scalar) starting at input[i],
// appending to dst and returning the new write position and read offset.
func decodeStep(variant Variant, dst []byte, input []byte, i int, mode Mode) ([]byte, int, *Error) {
	switch {
	case input[i] == 0xED:
		return decodeEDLead(dst, input, i, mode)
	case variant == MUTF8 && input[i] == 0xC0:
		return decodeOverlongNul(dst, input, i, mode)
	default:
		return decodeScalar(dst, input, i, mode)
	}
}

// decodeEDLead handles a 0xED lead byte: a surrogate pair, a lone
// surrogate half, or an ordinary 0xED-prefixed scalar passed through
// verbatim.
func decodeEDLead(dst []byte, input []byte, i int, mode Mode) ([]byte, int, *Error) {
	if i+3 > len(input) {
		if mode == Lossy {
			return utf8.AppendRune(dst, utf8.RuneError), len(input), nil
		}
		return dst, i, &Error{Kind: UnexpectedEnd, Offset: i}
	}

	cp, ok := decodeEDTriple(input[i : i+3])
	if !ok {
		// Malformed continuation bytes: not even a well-formed 3-byte
		// sequence, let alone a surrogate half.
		if mode == Lossy {
			return utf8.AppendRune(dst, utf8.RuneError), i + 1, nil
		}
		return dst, i, &Error{Kind: InvalidUTF8, Offset: i}
	}

	switch {
	case cp < highSurrogateStart:
		// Ordinary codepoint in [0xD000, 0xD800): pass through verbatim.
		return append(dst, input[i:i+3]...), i + 3, nil

	case isLowSurrogate(cp):
		// Lone low surrogate: same policy as a failed pairing below.
		if mode == Lossy {
			return utf8.AppendRune(dst, utf8.RuneError), i + 3, nil
		}
		return dst, i, &Error{Kind: InvalidSurrogatePair, Offset: i}

	default: // isHighSurrogate(cp)
		if second, lo, ok := decodeLowSurrogateHalf(input, i+3); ok {
			r := combineSurrogate(cp, lo)
			return utf8.AppendRune(dst, r), second, nil
		}
		if mode == Lossy {
			return utf8.AppendRune(dst, utf8.RuneError), i + 3, nil
		}
		return dst, i, &Error{Kind: InvalidSurrogatePair, Offset: i}
	}
}

// decodeLowSurrogateHalf attempts to read the second 3-byte half of a
// surrogate pair starting at offset j. It returns the offset just past the
// pair (j+3) and the decoded low-surrogate code unit on success.
func decodeLowSurrogateHalf(input []byte, j int) (next int, lo uint32, ok bool) {
	if j+3 > len(input) || input[j] != 0xED {
		return 0, 0, false
	}
	cp, ok := decodeEDTriple(input[j : j+3])
	if !ok || !isLowSurrogate(cp) {
		return 0, 0, false
	}
	return j + 3, cp, true
}

// decodeOverlongNul handles a MUTF-8 0xC0 lead byte, the overlong
// encoding of U+0000. A 0xC0 with no byte following it at all is input
// ending mid-sequence (UnexpectedEnd), distinct from a 0xC0 whose
// following byte exists but isn't 0x80 (InvalidNullEncoding).
func decodeOverlongNul(dst []byte, input []byte, i int, mode Mode) ([]byte, int, *Error) {
	if i+2 > len(input) {
		if mode == Lossy {
			return utf8.AppendRune(dst, utf8.RuneError), len(input), nil
		}
		return dst, i, &Error{Kind: UnexpectedEnd, Offset: i}
	}
	if input[i+1] == 0x80 {
		return append(dst, 0x00), i + 2, nil
	}
	if mode == Lossy {
		return utf8.AppendRune(dst, utf8.RuneError), i + 1, nil
	}
	return dst, i, &Error{Kind: InvalidNullEncoding, Offset: i}
}

// decodeScalar validates and copies a single ordinary UTF-8 scalar.
func decodeScalar(dst []byte, input []byte, i int, mode Mode) ([]byte, int, *Error) {
	ok, size := utf8shim.ValidateScalar(input[i:])
	if ok {
		return append(dst, input[i:i+size]...), i + size, nil
	}
	if mode == Lossy {
		return utf8.AppendRune(dst, utf8.RuneError), i + 1, nil
	}
	return dst, i, &Error{Kind: InvalidUTF8, Offset: i}
}
