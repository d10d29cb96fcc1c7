//go:build arm64

package simdscan

import "golang.org/x/sys/cpu"

// wideLaneBytes is the number of bytes processed per wide-tier iteration: 4
// machine words (32 bytes), standing in for a 128-bit NEON lane processed in
// pairs.
const wideLaneBytes = 32

// wideAvailable: ASIMD (NEON) is mandatory baseline on arm64, but the check
// is kept explicit rather than assumed, matching the gate-before-use
// discipline of the pack's CPU-feature-gated scanner.
var wideAvailable = cpu.ARM64.HasASIMD

// findWide consumes 32-byte chunks of data four words at a time, testing each
// word's SWAR mask in ascending order, before falling back to findWord for
// the remaining tail.
func findWide(data []byte, class Class) (offset int, ok bool) {
	n := len(data)
	i := 0
	for ; i+wideLaneBytes <= n; i += wideLaneBytes {
		w0 := le64(data[i:])
		w1 := le64(data[i+8:])
		w2 := le64(data[i+16:])
		w3 := le64(data[i+24:])

		if m := swarMask(w0, class); m != 0 {
			return i + laneIndex(m), true
		}
		if m := swarMask(w1, class); m != 0 {
			return i + 8 + laneIndex(m), true
		}
		if m := swarMask(w2, class); m != 0 {
			return i + 16 + laneIndex(m), true
		}
		if m := swarMask(w3, class); m != 0 {
			return i + 24 + laneIndex(m), true
		}
	}
	off, found := findWord(data[i:], class)
	if !found {
		return 0, false
	}
	return i + off, true
}
