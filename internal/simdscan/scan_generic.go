//go:build !amd64 && !arm64

package simdscan

// wideLaneBytes is unused on this tier but kept so Find's length check
// compiles identically across architectures.
const wideLaneBytes = 0

// wideAvailable is always false here: neither of the wide-lane
// implementations is wired up for this architecture, so every call falls
// through to the SWAR word-at-a-time tier.
var wideAvailable = false

// findWide is unreachable on this build (wideAvailable is always false) but
// must exist to satisfy scan.go's call site.
func findWide(data []byte, class Class) (offset int, ok bool) {
	return findWord(data, class)
}
