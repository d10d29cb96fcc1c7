package xcode

import "unsafe"

// Output is a possibly-borrowed byte sequence: either a reference into the
// caller's input (zero-copy) or a freshly allocated, owned buffer. The
// borrow decision is taken once, at the end of the fast scan, and never
// revised — there is no copy-on-write re-evaluation later in the pipeline.
type Output struct {
	data  []byte
	owned bool
}

// borrowed wraps a slice of the original input. No allocation occurs.
func borrowed(b []byte) Output { return Output{data: b} }

// owned wraps a freshly allocated buffer.
func owned(b []byte) Output { return Output{data: b, owned: true} }

// Bytes returns the output's bytes. For a borrowed Output this aliases the
// original input; callers that need an independent copy should copy it
// themselves.
func (o Output) Bytes() []byte { return o.data }

// Owned reports whether this Output allocated a new buffer, as opposed to
// borrowing a view of the input.
func (o Output) Owned() bool { return o.owned }

// String returns the output's bytes as a string without copying.
func (o Output) String() string {
	if len(o.data) == 0 {
		return ""
	}
	return unsafe.String(&o.data[0], len(o.data))
}

// Len returns the number of bytes in the output.
func (o Output) Len() int { return len(o.data) }
