package core

import "strings"

// ClassNames joins non-empty class strings with single spaces, keeping the
// order they were given in.
func ClassNames(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(part)
	}
	return b.String()
}
