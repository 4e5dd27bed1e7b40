package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/somi-im/somi/internal/domain"
)

var statsNow = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

func TestComputeOverviewTotals(t *testing.T) {
	records := []domain.Record{
		{ID: "1", Name: "a.com", Price: "¥2,000.50", Status: domain.StatusAvailable},
		{ID: "2", Name: "b.net", Price: "1000", Status: domain.StatusSold},
		{ID: "3", Name: "c.org", Price: "free", Status: domain.StatusSold},
	}

	o := ComputeOverview(records, statsNow)
	if o.Total != 3 {
		t.Errorf("Total = %d, want 3", o.Total)
	}
	if o.TotalValue != 3000.50 {
		t.Errorf("TotalValue = %v, want 3000.50", o.TotalValue)
	}
}

func TestComputeOverviewStatusSeeding(t *testing.T) {
	// Every known status appears even at zero, strays are appended.
	records := []domain.Record{
		{ID: "1", Name: "a.com", Status: domain.StatusSold},
		{ID: "2", Name: "b.net", Status: domain.Status("Pending")},
	}

	o := ComputeOverview(records, statsNow)
	want := []Bucket{
		{Name: "available", Value: 0},
		{Name: "sold", Value: 1},
		{Name: "reserved", Value: 0},
		{Name: "Pending", Value: 1},
	}
	if !reflect.DeepEqual(o.StatusData, want) {
		t.Errorf("StatusData = %+v, want %+v", o.StatusData, want)
	}
}

func TestComputeOverviewSuffixDistribution(t *testing.T) {
	records := []domain.Record{
		{ID: "1", Name: "A.COM"},
		{ID: "2", Name: "B.com"},
		{ID: "3", Name: "C.NET"},
		{ID: "4", Name: "localhost"}, // dotless, excluded
	}

	o := ComputeOverview(records, statsNow)
	want := []Bucket{
		{Name: ".com", Value: 2},
		{Name: ".net", Value: 1},
	}
	if !reflect.DeepEqual(o.SuffixData, want) {
		t.Errorf("SuffixData = %+v, want %+v", o.SuffixData, want)
	}
}

func TestComputeOverviewProviderDistribution(t *testing.T) {
	records := []domain.Record{
		{ID: "1", Name: "a.com", Provider: "GoDaddy"},
		{ID: "2", Name: "b.net"}, // empty provider displays as Unknown
		{ID: "3", Name: "c.org", Provider: "GoDaddy"},
	}

	o := ComputeOverview(records, statsNow)
	want := []Bucket{
		{Name: "GoDaddy", Value: 2},
		{Name: "Unknown", Value: 1},
	}
	if !reflect.DeepEqual(o.ProviderData, want) {
		t.Errorf("ProviderData = %+v, want %+v", o.ProviderData, want)
	}
}

func TestComputeOverviewTopNTruncation(t *testing.T) {
	var records []domain.Record
	suffixes := []string{"aa", "bb", "cc", "dd", "ee", "ff", "gg", "hh", "ii", "jj", "kk", "ll"}
	for i, sfx := range suffixes {
		// Later suffixes get higher counts so truncation is observable.
		for j := 0; j <= i; j++ {
			records = append(records, domain.Record{Name: "x." + sfx})
		}
	}

	o := ComputeOverview(records, statsNow)
	if len(o.SuffixData) != 10 {
		t.Fatalf("SuffixData has %d buckets, want 10", len(o.SuffixData))
	}
	if o.SuffixData[0].Name != ".ll" || o.SuffixData[0].Value != 12 {
		t.Errorf("top bucket = %+v, want .ll with 12", o.SuffixData[0])
	}
}

func TestComputeOverviewExpiringSoon(t *testing.T) {
	// The window is strictly inside the next three months: today and the
	// exact three-month boundary are both excluded.
	tests := []struct {
		name   string
		expiry string
		want   int
	}{
		{"today excluded", "2026-01-15", 0},
		{"tomorrow counted", "2026-01-16", 1},
		{"inside window", "2026-03-01", 1},
		// Midnight of the boundary date is still before now+3mo when now
		// carries a time of day.
		{"three month boundary date counted", "2026-04-15", 1},
		{"day after boundary excluded", "2026-04-16", 0},
		{"past excluded", "2025-12-01", 0},
		{"far future excluded", "2026-09-01", 0},
		{"unparsable ignored", "soon", 0},
		{"empty ignored", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []domain.Record{{ID: "1", Name: "a.com", ExpiryDate: tt.expiry}}
			o := ComputeOverview(records, statsNow)
			if o.ExpiringSoon != tt.want {
				t.Errorf("ExpiringSoon = %d, want %d (expiry %q)", o.ExpiringSoon, tt.want, tt.expiry)
			}
		})
	}
}

func TestComputeCardsExpiringSoon(t *testing.T) {
	// The public window is a day difference: 0 to 30 inclusive.
	tests := []struct {
		name   string
		expiry string
		want   int
	}{
		{"today counted", "2026-01-15", 1},
		{"tomorrow counted", "2026-01-16", 1},
		{"day thirty counted", "2026-02-14", 1},
		{"day thirty-one excluded", "2026-02-15", 0},
		{"yesterday excluded", "2026-01-14", 0},
		{"unparsable ignored", "n/a", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []domain.Record{{ID: "1", Name: "a.com", ExpiryDate: tt.expiry}}
			c := ComputeCards(records, statsNow)
			if c.ExpiringSoon != tt.want {
				t.Errorf("ExpiringSoon = %d, want %d (expiry %q)", c.ExpiringSoon, tt.want, tt.expiry)
			}
		})
	}
}

func TestComputeCardsStatusData(t *testing.T) {
	records := []domain.Record{
		{ID: "1", Name: "a.com", Status: domain.StatusSold},
		{ID: "2", Name: "b.net", Status: domain.StatusSold},
		{ID: "3", Name: "c.org", Status: domain.Status("weird")},
	}

	c := ComputeCards(records, statsNow)

	// Zero buckets are dropped and stray statuses are ignored entirely.
	want := []Bucket{{Name: "sold", Value: 2}}
	if !reflect.DeepEqual(c.StatusData, want) {
		t.Errorf("StatusData = %+v, want %+v", c.StatusData, want)
	}
	if c.SoldCount != 2 {
		t.Errorf("SoldCount = %d, want 2", c.SoldCount)
	}
}

func TestComputeCardsTLDTopFive(t *testing.T) {
	var records []domain.Record
	for _, sfx := range []string{"com", "com", "com", "net", "net", "org", "io", "dev", "app"} {
		records = append(records, domain.Record{Name: "x." + sfx})
	}

	c := ComputeCards(records, statsNow)
	if len(c.TLDData) != 5 {
		t.Fatalf("TLDData has %d buckets, want 5", len(c.TLDData))
	}
	if c.TLDData[0].Name != ".com" || c.TLDData[0].Value != 3 {
		t.Errorf("top TLD = %+v, want .com with 3", c.TLDData[0])
	}
	if c.TLDData[1].Name != ".net" || c.TLDData[1].Value != 2 {
		t.Errorf("second TLD = %+v, want .net with 2", c.TLDData[1])
	}
}

func TestComputeCardsEmptyCollection(t *testing.T) {
	c := ComputeCards(nil, statsNow)
	if c.Total != 0 || c.TotalValue != 0 || c.SoldCount != 0 || c.ExpiringSoon != 0 {
		t.Errorf("empty collection cards = %+v", c)
	}
	if len(c.StatusData) != 0 {
		t.Errorf("StatusData = %+v, want empty after zero-drop", c.StatusData)
	}
}

func TestSortedSeriesStableTies(t *testing.T) {
	c := newCounter()
	c.add(".com")
	c.add(".net")
	c.add(".org")
	c.add(".net")
	c.add(".org")

	got := c.sortedSeries(0)
	// .net and .org tie at 2; first-encountered order breaks the tie.
	want := []Bucket{
		{Name: ".net", Value: 2},
		{Name: ".org", Value: 2},
		{Name: ".com", Value: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortedSeries() = %+v, want %+v", got, want)
	}
}
