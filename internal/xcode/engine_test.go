package xcode

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/seancroach/simd-cesu8/internal/utf8shim"
)

func mustDecode(t *testing.T, variant Variant, input []byte) Output {
	t.Helper()
	out, err := Decode(variant, input, Strict, utf8shim.Default)
	if err != nil {
		t.Fatalf("Decode(%x): unexpected error %v", input, err)
	}
	return out
}

func TestScenarios(t *testing.T) {
	t.Run("cesu8 encode ascii borrows", func(t *testing.T) {
		out := Encode(CESU8, []byte("ABC"))
		if out.Owned() {
			t.Fatalf("expected borrowed output")
		}
		if !bytes.Equal(out.Bytes(), []byte("ABC")) {
			t.Fatalf("got %x", out.Bytes())
		}
	})

	t.Run("cesu8 encode emoji", func(t *testing.T) {
		out := Encode(CESU8, []byte{0xF0, 0x9F, 0x98, 0x80})
		if !out.Owned() {
			t.Fatalf("expected owned output")
		}
		want := []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}
		if !bytes.Equal(out.Bytes(), want) {
			t.Fatalf("got %x want %x", out.Bytes(), want)
		}
	})

	t.Run("mutf8 encode nul", func(t *testing.T) {
		out := Encode(MUTF8, []byte{0x00, 0x41, 0x00})
		if !out.Owned() {
			t.Fatalf("expected owned output")
		}
		want := []byte{0xC0, 0x80, 0x41, 0xC0, 0x80}
		if !bytes.Equal(out.Bytes(), want) {
			t.Fatalf("got %x want %x", out.Bytes(), want)
		}
	})

	t.Run("cesu8 decode emoji", func(t *testing.T) {
		out := mustDecode(t, CESU8, []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80})
		want := []byte{0xF0, 0x9F, 0x98, 0x80}
		if !bytes.Equal(out.Bytes(), want) {
			t.Fatalf("got %x want %x", out.Bytes(), want)
		}
	})

	t.Run("cesu8 decode lone high surrogate errors", func(t *testing.T) {
		_, err := Decode(CESU8, []byte{0xED, 0xA0, 0xBD, 0x41}, Strict, utf8shim.Default)
		if err == nil {
			t.Fatalf("expected error")
		}
		if err.Kind != InvalidSurrogatePair || err.Offset != 0 {
			t.Fatalf("got %+v", err)
		}
	})

	t.Run("mutf8 decode bad null encoding errors", func(t *testing.T) {
		_, err := Decode(MUTF8, []byte{0xC0, 0x81}, Strict, utf8shim.Default)
		if err == nil {
			t.Fatalf("expected error")
		}
		if err.Kind != InvalidNullEncoding || err.Offset != 0 {
			t.Fatalf("got %+v", err)
		}
	})

	t.Run("mutf8 decode lossy lone high surrogate", func(t *testing.T) {
		out, err := Decode(MUTF8, []byte{0xED, 0xA0, 0xBD, 0x41}, Lossy, utf8shim.Default)
		if err != nil {
			t.Fatalf("lossy decode must not error, got %v", err)
		}
		want := append(utf8.AppendRune(nil, utf8.RuneError), 'A')
		if !bytes.Equal(out.Bytes(), want) {
			t.Fatalf("got %x want %x", out.Bytes(), want)
		}
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"ascii only",
		"café",       // 2-byte
		"中文",    // 3-byte
		"\U0001F600hi\U0001F601", // 4-byte surrounded
		"\x00null\x00byte\x00",
	}

	for _, variant := range []Variant{CESU8, MUTF8} {
		for _, s := range inputs {
			enc := Encode(variant, []byte(s))
			dec, err := Decode(variant, enc.Bytes(), Strict, utf8shim.Default)
			if err != nil {
				t.Fatalf("variant=%v input=%q: decode error %v", variant, s, err)
			}
			if dec.String() != s {
				t.Fatalf("variant=%v input=%q: round-trip got %q", variant, s, dec.String())
			}
		}
	}
}

func TestEncodeBorrowCorrectness(t *testing.T) {
	// CESU-8: borrows iff no 4-byte lead.
	if out := Encode(CESU8, []byte("plain ascii + é中")); out.Owned() {
		t.Fatalf("expected borrow: no 4-byte lead present")
	}
	if out := Encode(CESU8, []byte("\U0001F600")); !out.Owned() {
		t.Fatalf("expected owned: 4-byte lead present")
	}

	// MUTF-8: borrows iff no 4-byte lead AND no NUL.
	if out := Encode(MUTF8, []byte("plain ascii")); out.Owned() {
		t.Fatalf("expected borrow: no 4-byte lead or NUL")
	}
	if out := Encode(MUTF8, []byte("has\x00nul")); !out.Owned() {
		t.Fatalf("expected owned: NUL present")
	}
}

func TestDecodeBorrowCorrectness(t *testing.T) {
	if out := mustDecode(t, CESU8, []byte("plain utf8 é中")); out.Owned() {
		t.Fatalf("expected borrow: valid utf8, no 0xED")
	}
	if out := mustDecode(t, MUTF8, []byte("plain utf8, no c0 or ed")); out.Owned() {
		t.Fatalf("expected borrow: valid utf8, no 0xED/0xC0")
	}
}

func TestStrictLossyAgreement(t *testing.T) {
	cases := [][]byte{
		{0x41, 0x42, 0x43},
		{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80},
		{0xC0, 0x80},
	}
	for _, variant := range []Variant{CESU8, MUTF8} {
		for _, input := range cases {
			strict, err := Decode(variant, input, Strict, utf8shim.Default)
			if err != nil {
				continue // not all cases are valid for every variant
			}
			lossy, _ := Decode(variant, input, Lossy, utf8shim.Default)
			if !bytes.Equal(strict.Bytes(), lossy.Bytes()) {
				t.Fatalf("variant=%v input=%x: strict %x != lossy %x", variant, input, strict.Bytes(), lossy.Bytes())
			}
		}
	}
}

func TestReencodeIdempotence(t *testing.T) {
	// encode(decode(t)) == t for all t that strict-decode successfully.
	valid := [][]byte{
		{0x41, 0x42, 0x43},
		{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80},
	}
	for _, input := range valid {
		dec, err := Decode(CESU8, input, Strict, utf8shim.Default)
		if err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		enc := Encode(CESU8, dec.Bytes())
		if !bytes.Equal(enc.Bytes(), input) {
			t.Fatalf("re-encode mismatch: got %x want %x", enc.Bytes(), input)
		}
	}
}

func TestErrorOffsetsInRange(t *testing.T) {
	cases := []struct {
		variant Variant
		input   []byte
	}{
		{CESU8, []byte{0xED, 0xA0, 0xBD, 0x41}},
		{MUTF8, []byte{0xC0, 0x81}},
		{MUTF8, []byte{0xED, 0xB8, 0x80}}, // lone low surrogate
	}
	for _, c := range cases {
		_, err := Decode(c.variant, c.input, Strict, utf8shim.Default)
		if err == nil {
			t.Fatalf("expected error for %x", c.input)
		}
		if err.Offset < 0 || err.Offset > len(c.input) {
			t.Fatalf("offset %d out of range for input len %d", err.Offset, len(c.input))
		}
	}
}

// Lossy decoding of a run of lone continuation bytes expands each
// single-byte violation into a 3-byte U+FFFD, so the output buffer must be
// sized for 3x growth, not len(input), to avoid a mid-walk reallocation.
func TestDecodeLossyConsecutiveViolationsDoNotReallocate(t *testing.T) {
	input := bytes.Repeat([]byte{0x80}, 50)

	out, err := Decode(CESU8, input, Lossy, utf8shim.Default)
	if err != nil {
		t.Fatalf("lossy decode must not error, got %v", err)
	}
	want := bytes.Repeat(utf8.AppendRune(nil, utf8.RuneError), 50)
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("got %d bytes, want %d bytes", len(out.Bytes()), len(want))
	}

	allocs := testing.AllocsPerRun(20, func() {
		Decode(CESU8, input, Lossy, utf8shim.Default)
	})
	if allocs > 1 {
		t.Fatalf("lossy decode allocated %v times per run, want at most 1", allocs)
	}
}

func TestDecodeLossyOverlongNulRunDoesNotReallocate(t *testing.T) {
	input := bytes.Repeat([]byte{0xC0}, 50) // every 0xC0 is malformed: no 0x80 follows

	out, err := Decode(MUTF8, input, Lossy, utf8shim.Default)
	if err != nil {
		t.Fatalf("lossy decode must not error, got %v", err)
	}
	if out.Len() == 0 {
		t.Fatalf("expected non-empty replacement output")
	}

	allocs := testing.AllocsPerRun(20, func() {
		Decode(MUTF8, input, Lossy, utf8shim.Default)
	})
	if allocs > 1 {
		t.Fatalf("lossy decode allocated %v times per run, want at most 1", allocs)
	}
}

// A 0xC0 as the very last byte of input has no following byte at all: that
// is input ending mid-sequence (UnexpectedEnd), not a malformed-but-present
// continuation byte (InvalidNullEncoding).
func TestDecodeOverlongNulAtEndOfInputIsUnexpectedEnd(t *testing.T) {
	_, err := Decode(MUTF8, []byte{0xC0}, Strict, utf8shim.Default)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Kind != UnexpectedEnd || err.Offset != 0 {
		t.Fatalf("got %+v, want UnexpectedEnd at offset 0", err)
	}
}

func TestDecodeOverlongNulFollowedByWrongByteIsInvalidNullEncoding(t *testing.T) {
	_, err := Decode(MUTF8, []byte{0xC0, 0x41}, Strict, utf8shim.Default)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Kind != InvalidNullEncoding || err.Offset != 0 {
		t.Fatalf("got %+v, want InvalidNullEncoding at offset 0", err)
	}
}
