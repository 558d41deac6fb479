// Package cashtag extracts $-prefixed ticker mentions from free text
package cashtag

import "regexp"

// a mention is "$" followed by the longest run of ASCII letters
var mentionRe = regexp.MustCompile(`\$([A-Za-z]+)`)

// Extract returns the upper-cased ticker symbols mentioned in content,
// in order of first appearance. Duplicates are retained: downstream
// consumers count repeat mentions. Zero matches yields nil, never an
// empty slice; the absence marker is observable on the wire.
func Extract(content string) []string {
	matches := mentionRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, upper(m[1]))
	}
	return out
}

// upper ASCII-uppercases s without pulling in unicode tables;
// the pattern guarantees s is ASCII letters only
func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
