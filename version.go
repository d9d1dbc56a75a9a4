package winnow

import _ "embed"

// Version is the current winnow release, read from the VERSION file at the
// repository root. Trim it before display; the file ends with a newline.
//
//go:embed VERSION
var Version string
