package domain

import (
	"strconv"
	"strings"
	"time"
)

// Status is the sale status of a record.
//
// It is only guaranteed to be one of the three known values for records
// that went through the line parser or the add/edit path. Records loaded
// from a restored backup are trusted verbatim, so every consumer must
// tolerate arbitrary strings here.
type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
	StatusReserved  Status = "reserved"
)

// Known reports whether s is one of the three known status values.
func (s Status) Known() bool {
	return s == StatusAvailable || s == StatusSold || s == StatusReserved
}

// NormalizeStatus lowercases raw and coerces anything that is not a known
// status (including the empty string) to StatusAvailable.
func NormalizeStatus(raw string) Status {
	s := Status(strings.ToLower(raw))
	if !s.Known() {
		return StatusAvailable
	}
	return s
}

// Record represents one sellable domain name.
//
// A Record is a plain value: all derived views (filters, statistics,
// exports) are pure functions over a snapshot of the collection.
type Record struct {
	// ID is unique by convention only. It is assigned as
	// max(existing numeric ids)+1 at creation time and is never
	// enforced, so duplicates after manual edits of persisted data
	// must not break any consumer.
	ID string `json:"id"`

	// Name is the domain name as entered. Case is preserved in storage
	// and compared case-insensitively everywhere. Uniqueness is NOT
	// enforced.
	Name string `json:"name"`

	// Provider is the registrar/reseller label.
	// Empty means "Unknown" for display and statistics.
	Provider string `json:"provider,omitempty"`

	// Price is free-form text and may embed a currency symbol.
	// Use NumericPrice to extract its numeric value.
	Price string `json:"price,omitempty"`

	Status Status `json:"status"`

	// Link is an optional external URL attached to the listing.
	Link string `json:"link,omitempty"`

	// ExpiryDate is YYYY-MM-DD. Absent or unparsable dates are excluded
	// from expiry computations without error.
	ExpiryDate string `json:"expiryDate,omitempty"`

	Note string `json:"note,omitempty"`
}

// DisplayProvider returns the provider label used for display and
// statistics, defaulting to "Unknown" when absent.
func (r Record) DisplayProvider() string {
	if r.Provider == "" {
		return "Unknown"
	}
	return r.Provider
}

// Suffix returns the lowercased "."-prefixed TLD of the record name,
// or "" when the name contains no dot.
func (r Record) Suffix() string {
	return Suffix(r.Name)
}

// Suffix extracts the TLD from a domain name: the substring after the
// last ".", lowercased and prefixed with ".". Names without a dot yield "".
func Suffix(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return ""
	}
	return "." + strings.ToLower(parts[len(parts)-1])
}

// NumericPrice strips every character that is not a digit or "." from a
// free-form price string and parses the remainder as a float. Empty or
// unparsable remainders yield 0.
func NumericPrice(price string) float64 {
	var b strings.Builder
	for _, c := range price {
		if (c >= '0' && c <= '9') || c == '.' {
			b.WriteRune(c)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

const expiryLayout = "2006-01-02"

// ParseExpiry parses a YYYY-MM-DD expiry date. The bool is false for
// absent or malformed dates; callers skip those records silently.
func ParseExpiry(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(expiryLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MaxNumericID returns the largest integer-parseable id in the
// collection. Absent and non-numeric ids count as 0.
func MaxNumericID(records []Record) int {
	max := 0
	for _, r := range records {
		if n, err := strconv.Atoi(r.ID); err == nil && n > max {
			max = n
		}
	}
	return max
}
