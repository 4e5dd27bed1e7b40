package stats

import (
	"sort"
	"strings"

	"github.com/somi-im/somi/internal/domain"
)

// Query is the public-page filter state.
type Query struct {
	Search   string // case-insensitive substring of the name
	Provider string // exact provider label, "" = all
	Suffix   string // bare TLD label (no dot), "" = all
}

// Options are the selectable filter values derived from the collection.
type Options struct {
	Providers []string `json:"providers"`
	Suffixes  []string `json:"suffixes"`
}

// FilterOptions collects the unique provider and suffix labels.
//
// Dotless names bucket as "unknown" here, while the statistics series
// exclude them entirely. Both behaviors come from different consumers of
// the original catalog and are preserved distinctly.
func FilterOptions(records []domain.Record) Options {
	providerSet := make(map[string]struct{})
	suffixSet := make(map[string]struct{})

	for _, r := range records {
		providerSet[r.DisplayProvider()] = struct{}{}

		parts := strings.Split(r.Name, ".")
		if len(parts) > 1 {
			suffixSet[strings.ToLower(parts[len(parts)-1])] = struct{}{}
		} else {
			suffixSet["unknown"] = struct{}{}
		}
	}

	opts := Options{
		Providers: make([]string, 0, len(providerSet)),
		Suffixes:  make([]string, 0, len(suffixSet)),
	}
	for p := range providerSet {
		opts.Providers = append(opts.Providers, p)
	}
	for s := range suffixSet {
		opts.Suffixes = append(opts.Suffixes, s)
	}
	sort.Strings(opts.Providers)
	sort.Strings(opts.Suffixes)
	return opts
}

// Filter returns the records matching q, preserving collection order.
//
// Provider matching compares the raw stored provider, so filtering by
// "Unknown" does not match records with an empty provider. Suffix
// matching is a case-insensitive ".suffix" suffix test, so the "unknown"
// bucket matches nothing. Both quirks are inherited behavior.
func Filter(records []domain.Record, q Query) []domain.Record {
	search := strings.ToLower(q.Search)
	suffix := strings.ToLower(q.Suffix)

	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if search != "" && !strings.Contains(strings.ToLower(r.Name), search) {
			continue
		}
		if q.Provider != "" && r.Provider != q.Provider {
			continue
		}
		if suffix != "" && !strings.HasSuffix(strings.ToLower(r.Name), "."+suffix) {
			continue
		}
		out = append(out, r)
	}
	return out
}
