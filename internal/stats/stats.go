// Package stats derives chart-ready aggregate series from a collection
// snapshot. Every computation is a stateless single pass over the
// records: nothing here caches between calls, the caller recomputes on
// every collection change.
package stats

import (
	"sort"
	"time"

	"github.com/somi-im/somi/internal/domain"
)

// Bucket is one entry of a distribution series.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

const (
	overviewTopN = 10
	cardTopN     = 5
)

// Overview is the admin dashboard aggregate.
type Overview struct {
	Total        int      `json:"total"`
	TotalValue   float64  `json:"totalValue"`
	StatusData   []Bucket `json:"statusData"`
	SuffixData   []Bucket `json:"suffixData"`
	ProviderData []Bucket `json:"providerData"`
	ExpiringSoon int      `json:"expiringSoon"`
}

// Cards is the compact aggregate shown on the public page.
//
// Its expiring-soon window (30 days, inclusive of today) is deliberately
// different from the Overview window (strictly inside the next three
// months). The two serve different surfaces and are kept as separate
// computations.
type Cards struct {
	Total        int      `json:"total"`
	TotalValue   float64  `json:"totalValue"`
	SoldCount    int      `json:"soldCount"`
	ExpiringSoon int      `json:"expiringSoon"`
	StatusData   []Bucket `json:"statusData"`
	TLDData      []Bucket `json:"tldData"`
}

// ComputeOverview aggregates the admin dashboard statistics.
func ComputeOverview(records []domain.Record, now time.Time) Overview {
	statuses := newCounter()
	statuses.seed(string(domain.StatusAvailable), string(domain.StatusSold), string(domain.StatusReserved))
	suffixes := newCounter()
	providers := newCounter()

	o := Overview{Total: len(records)}
	threeMonths := now.AddDate(0, 3, 0)

	for _, r := range records {
		o.TotalValue += domain.NumericPrice(r.Price)
		statuses.add(string(r.Status))
		if sfx := r.Suffix(); sfx != "" {
			suffixes.add(sfx)
		}
		providers.add(r.DisplayProvider())

		if d, ok := domain.ParseExpiry(r.ExpiryDate); ok {
			if d.After(now) && d.Before(threeMonths) {
				o.ExpiringSoon++
			}
		}
	}

	o.StatusData = statuses.series(0)
	o.SuffixData = suffixes.sortedSeries(overviewTopN)
	o.ProviderData = providers.sortedSeries(overviewTopN)
	return o
}

// ComputeCards aggregates the public stat-card statistics.
func ComputeCards(records []domain.Record, now time.Time) Cards {
	statuses := newCounter()
	statuses.seed(string(domain.StatusAvailable), string(domain.StatusSold), string(domain.StatusReserved))
	tlds := newCounter()

	c := Cards{Total: len(records)}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for _, r := range records {
		c.TotalValue += domain.NumericPrice(r.Price)
		if r.Status == domain.StatusSold {
			c.SoldCount++
		}
		// Unlike the overview, stray statuses from unvalidated restores
		// are not counted here.
		if r.Status.Known() {
			statuses.add(string(r.Status))
		}
		if sfx := r.Suffix(); sfx != "" {
			tlds.add(sfx)
		}

		if d, ok := domain.ParseExpiry(r.ExpiryDate); ok {
			days := int(d.Sub(today).Hours() / 24)
			if days >= 0 && days <= 30 {
				c.ExpiringSoon++
			}
		}
	}

	c.StatusData = dropZero(statuses.series(0))
	c.TLDData = tlds.sortedSeries(cardTopN)
	return c
}

// counter counts keys while preserving first-encountered order, so that
// descending sorts break ties stably.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

// seed registers keys at zero so they appear in the series even when no
// record carries them.
func (c *counter) seed(keys ...string) {
	for _, k := range keys {
		if _, ok := c.counts[k]; !ok {
			c.order = append(c.order, k)
			c.counts[k] = 0
		}
	}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// series returns buckets in first-encountered order, truncated to topN
// when topN > 0.
func (c *counter) series(topN int) []Bucket {
	out := make([]Bucket, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, Bucket{Name: k, Value: c.counts[k]})
	}
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// sortedSeries returns buckets sorted by descending count. The sort is
// stable: ties keep first-encountered order.
func (c *counter) sortedSeries(topN int) []Bucket {
	out := c.series(0)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

func dropZero(in []Bucket) []Bucket {
	out := make([]Bucket, 0, len(in))
	for _, b := range in {
		if b.Value > 0 {
			out = append(out, b)
		}
	}
	return out
}
