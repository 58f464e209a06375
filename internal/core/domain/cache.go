package domain

// Unknown is reported for any version that could not be determined.
const Unknown = "unknown"

// Versions holds the interpreter and companion tool version strings.
type Versions struct {
	Interpreter string `json:"interpreter_version"`
	Tool        string `json:"tool_version"`
}

// UnknownVersions returns a Versions value with both sides unknown.
func UnknownVersions() Versions {
	return Versions{Interpreter: Unknown, Tool: Unknown}
}

// Known reports whether at least one side was determined.
func (v Versions) Known() bool {
	return (v.Interpreter != "" && v.Interpreter != Unknown) || (v.Tool != "" && v.Tool != Unknown)
}

// CacheStats are the monotonically increasing counters of a cache instance.
type CacheStats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Writes uint64 `json:"writes"`
	Errors uint64 `json:"errors"`
}
