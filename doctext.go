package taxon

import "strings"

// excerpt normalizes a raw documentation string into a single flowing block:
// surrounding indentation is stripped per line, only the first paragraph (up
// to the first blank line) is kept, and at most maxLines of it are joined
// with single spaces. An absent doc yields the empty string, never a
// placeholder.
func excerpt(doc string, maxLines int) string {
	if doc == "" || maxLines <= 0 {
		return ""
	}
	var kept []string
	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(kept) > 0 {
				break // end of first paragraph
			}
			continue // leading blank lines
		}
		kept = append(kept, trimmed)
		if len(kept) == maxLines {
			break
		}
	}
	return strings.Join(kept, " ")
}
