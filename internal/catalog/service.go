package catalog

import (
	"context"
	"errors"
	"strconv"

	"github.com/somi-im/somi/internal/domain"
	"github.com/somi-im/somi/internal/importer"
	"github.com/somi-im/somi/internal/logger"
)

var (
	// ErrNotFound is returned when an id does not match any record.
	ErrNotFound = errors.New("record not found")

	// ErrNameRequired is returned when an add/edit carries no name.
	ErrNameRequired = errors.New("domain name is required")
)

// BlobStore is the durable mirror of the collection: one key-value entry
// holding the JSON-encoded record array.
type BlobStore interface {
	Load(ctx context.Context) ([]domain.Record, error)
	Replace(ctx context.Context, records []domain.Record) error
}

// Service applies catalog mutations. Every operation builds a new slice,
// swaps it into the cell, then mirrors it to the store. The mirror is
// best effort: the in-memory collection stays authoritative and a failed
// write only costs durability until the next replace.
type Service struct {
	cell   *Cell
	store  BlobStore
	logger logger.Logger
}

func NewService(cell *Cell, store BlobStore, log logger.Logger) *Service {
	return &Service{
		cell:   cell,
		store:  store,
		logger: log,
	}
}

// Snapshot returns a copy of the current collection.
func (s *Service) Snapshot() []domain.Record {
	return s.cell.Snapshot()
}

// AddInput are the add-form fields. Everything except Name is optional.
type AddInput struct {
	Name       string `json:"name"`
	Price      string `json:"price"`
	Provider   string `json:"provider"`
	Status     string `json:"status"`
	Link       string `json:"link"`
	ExpiryDate string `json:"expiryDate"`
	Note       string `json:"note"`
}

// Add creates one record with id max(existing numeric ids)+1.
func (s *Service) Add(ctx context.Context, in AddInput) (domain.Record, error) {
	if in.Name == "" {
		return domain.Record{}, ErrNameRequired
	}

	records := s.cell.Snapshot()

	provider := in.Provider
	if provider == "" {
		provider = "Manual"
	}
	rec := domain.Record{
		ID:         strconv.Itoa(domain.MaxNumericID(records) + 1),
		Name:       in.Name,
		Price:      in.Price,
		Provider:   provider,
		Status:     domain.NormalizeStatus(in.Status),
		Link:       in.Link,
		ExpiryDate: in.ExpiryDate,
		Note:       in.Note,
	}

	s.replace(ctx, append(records, rec), "add")
	return rec, nil
}

// Update swaps the whole record matching rec.ID. Replacement semantics:
// the stored record becomes exactly rec, fields absent from the edit are
// gone.
func (s *Service) Update(ctx context.Context, rec domain.Record) error {
	if rec.Name == "" {
		return ErrNameRequired
	}

	records := s.cell.Snapshot()
	found := false
	for i := range records {
		if records[i].ID == rec.ID {
			records[i] = rec
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}

	s.replace(ctx, records, "update")
	return nil
}

// Delete removes the record with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	records := s.cell.Snapshot()
	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return ErrNotFound
	}

	s.replace(ctx, kept, "delete")
	return nil
}

// BatchDelete removes every record whose id is in ids and returns the
// number removed. Unknown ids are ignored.
func (s *Service) BatchDelete(ctx context.Context, ids []string) int {
	selected := idSet(ids)
	records := s.cell.Snapshot()

	kept := records[:0]
	for _, r := range records {
		if !selected[r.ID] {
			kept = append(kept, r)
		}
	}
	removed := len(records) - len(kept)
	if removed == 0 {
		return 0
	}

	s.replace(ctx, kept, "batch_delete")
	return removed
}

// BatchStatus sets the status on every record whose id is in ids and
// returns the number updated. Unknown ids are ignored.
func (s *Service) BatchStatus(ctx context.Context, ids []string, status domain.Status) int {
	selected := idSet(ids)
	records := s.cell.Snapshot()

	updated := 0
	for i := range records {
		if selected[records[i].ID] {
			records[i].Status = status
			updated++
		}
	}
	if updated == 0 {
		return 0
	}

	s.replace(ctx, records, "batch_status")
	return updated
}

// ImportCommit merges previewed candidates into the collection and
// returns the number of records added. Zero candidates is a format
// error: nothing is merged.
func (s *Service) ImportCommit(ctx context.Context, candidates []importer.Candidate) (int, error) {
	records := s.cell.Snapshot()
	merged, err := importer.Merge(records, candidates)
	if err != nil {
		return 0, err
	}

	s.replace(ctx, merged, "import_commit")
	return len(merged) - len(records), nil
}

// Restore replaces the whole collection with records, verbatim. No
// per-record validation happens here; downstream consumers tolerate
// whatever a backup carried.
func (s *Service) Restore(ctx context.Context, records []domain.Record) {
	s.replace(ctx, records, "restore")
}

func (s *Service) replace(ctx context.Context, records []domain.Record, action string) {
	s.cell.Replace(records)

	if err := s.store.Replace(ctx, records); err != nil {
		s.logger.Warn("failed to mirror collection to store",
			logger.String("action", action),
			logger.Int("records", len(records)),
			logger.Error(err))
		return
	}
	s.logger.Debug("collection replaced",
		logger.String("action", action),
		logger.Int("records", len(records)))
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
