package cesu8

import "github.com/seancroach/simd-cesu8/internal/utf8shim"

// defaultValidator is the external UTF-8 validator the decode engine
// delegates full-slice validation to. See internal/utf8shim for why this is
// unicode/utf8 rather than a third-party validator module.
var defaultValidator = utf8shim.Default
