package seedfile

import (
	"fmt"
	"strconv"

	"github.com/somi-im/somi/internal/domain"
)

// Mapper converts seed entries to domain records.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// MapRecords converts entries to records, assigning positional ids
// starting at 1. Entries without a name are skipped.
func (m *Mapper) MapRecords(entries []Entry) ([]domain.Record, error) {
	var records []domain.Record
	for _, e := range entries {
		if e.Name == "" {
			continue
		}

		provider := e.Provider
		if provider == "" {
			provider = "Manual"
		}

		records = append(records, domain.Record{
			ID:         strconv.Itoa(len(records) + 1),
			Name:       e.Name,
			Provider:   provider,
			Price:      e.Price,
			Status:     domain.NormalizeStatus(e.Status),
			Link:       e.Link,
			ExpiryDate: e.ExpiryDate,
			Note:       e.Note,
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no valid records found in seed file")
	}

	return records, nil
}
