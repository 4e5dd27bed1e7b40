package importer

import (
	"regexp"
	"strings"
)

var lineSep = regexp.MustCompile(`\r\n|\n`)

// ParseText parses multi-line free-text input. Every line is fed to
// ParseLine; lines that parse to nothing are dropped.
func ParseText(text string) []Candidate {
	var results []Candidate
	for _, line := range strings.Split(text, "\n") {
		if c, ok := ParseLine(line); ok {
			results = append(results, c)
		}
	}
	return results
}

// ParseFile parses uploaded file content (CSV or plain text). Lines are
// split on CRLF or LF. If the first line's lowercased content contains
// the substring "domain" it is treated as a header row and discarded;
// the remaining lines are processed exactly like text input.
func ParseFile(data []byte) []Candidate {
	lines := lineSep.Split(string(data), -1)

	var results []Candidate
	for i, line := range lines {
		if i == 0 && strings.Contains(strings.ToLower(line), "domain") {
			continue
		}
		if c, ok := ParseLine(line); ok {
			results = append(results, c)
		}
	}
	return results
}
