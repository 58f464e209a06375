package probe

import (
	"strings"

	"go.trai.ch/seek/internal/core/domain"
)

// Normalize reduces version output to a bare version string. Only the first
// line is kept; interpreter and tool name prefixes, a "version" word and a
// leading "v" are dropped. Empty output is domain.Unknown.
func Normalize(out, tool string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	line = strings.TrimSpace(line)

	for _, prefix := range []string{"Python", tool, "version"} {
		line = strings.TrimSpace(trimPrefixFold(line, prefix))
	}
	line = strings.TrimPrefix(line, "v")
	line = strings.TrimSpace(line)

	if line == "" {
		return domain.Unknown
	}
	return line
}

func trimPrefixFold(s, prefix string) string {
	if prefix == "" || len(s) < len(prefix) {
		return s
	}
	if strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):]
	}
	return s
}
