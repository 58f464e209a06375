// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

// Brand Colors.
const (
	Iris   = "#8B5CF6"
	Slate  = "#667085"
	Green  = "#22A06B"
	Red    = "#D93025"
	Yellow = "#F59E0B"
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)
