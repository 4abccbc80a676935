package emitter

import (
	"strings"
)

// joinNonBlank joins the non-blank parts with single spaces.
func joinNonBlank(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// terminate strips every trailing statement terminator and appends exactly one.
func terminate(line string) string {
	return strings.TrimRight(strings.TrimRightFunc(line, isSpace), ";") + ";"
}

// bracket wraps an attribute in one canonical bracket pair.
func bracket(attribute string) string {
	attribute = strings.TrimSpace(attribute)
	attribute = strings.TrimLeft(attribute, "[")
	attribute = strings.TrimRight(attribute, "]")
	return "[" + strings.TrimSpace(attribute) + "]"
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
