package importer

import (
	"regexp"
	"strings"

	"github.com/somi-im/somi/internal/domain"
)

// Candidate is a record parsed from one import line, before an id is
// assigned by the commit merge.
type Candidate struct {
	Name     string        `json:"name"`
	Price    string        `json:"price"`
	Provider string        `json:"provider"`
	Status   domain.Status `json:"status"`
}

// fieldSep splits import lines on ASCII and full-width commas.
var fieldSep = regexp.MustCompile(`,|，`)

// ParseLine parses one line of free-text import input.
//
// Fields are positional: name,price,provider,status. Missing trailing
// fields default to "" / "Manual" / available, and any unknown status
// token is coerced to available. Quoted-field CSV semantics are
// intentionally NOT supported: a comma inside a quoted value splits the
// line. Blank lines produce no candidate (ok = false), which is not an
// error.
func ParseLine(line string) (Candidate, bool) {
	clean := strings.TrimSpace(line)
	if clean == "" {
		return Candidate{}, false
	}

	parts := fieldSep.Split(clean, -1)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	c := Candidate{
		Name:     parts[0],
		Provider: "Manual",
		Status:   domain.StatusAvailable,
	}
	if len(parts) > 1 {
		c.Price = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		c.Provider = parts[2]
	}
	if len(parts) > 3 {
		c.Status = domain.NormalizeStatus(parts[3])
	}
	return c, true
}
