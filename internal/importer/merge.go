package importer

import (
	"errors"
	"strconv"

	"github.com/somi-im/somi/internal/domain"
)

// ErrEmptyImport is returned when no line of the given input parsed to a
// candidate. Nothing is merged in that case.
var ErrEmptyImport = errors.New("no importable lines found in input")

// Merge appends candidates to the existing collection and returns the new
// collection slice. The existing slice is not mutated.
//
// New ids continue from max(existing numeric ids)+1 in input order
// (non-numeric and absent ids count as 0 for that computation). No
// deduplication against existing names is performed: duplicates are
// permitted by design of the catalog.
func Merge(existing []domain.Record, candidates []Candidate) ([]domain.Record, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyImport
	}

	maxID := domain.MaxNumericID(existing)

	merged := make([]domain.Record, 0, len(existing)+len(candidates))
	merged = append(merged, existing...)
	for i, c := range candidates {
		name := c.Name
		if name == "" {
			name = "unknown"
		}
		provider := c.Provider
		if provider == "" {
			provider = "Manual"
		}
		status := c.Status
		if status == "" {
			status = domain.StatusAvailable
		}
		merged = append(merged, domain.Record{
			ID:       strconv.Itoa(maxID + 1 + i),
			Name:     name,
			Price:    c.Price,
			Provider: provider,
			Status:   status,
		})
	}
	return merged, nil
}
