// Package scheduler hosts the background pieces of the catalog: the
// startup sync from the store and the watcher for external replaces.
package scheduler

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/somi-im/somi/internal/catalog"
	"github.com/somi-im/somi/internal/domain"
	"github.com/somi-im/somi/internal/logger"
)

// Store is the persisted-collection surface the schedulers consume.
type Store interface {
	Load(ctx context.Context) ([]domain.Record, error)
	Origin() string
	Subscribe(ctx context.Context) *redis.PubSub
}

// StoreSyncer loads the persisted collection into the cell on startup.
type StoreSyncer struct {
	store  Store
	cell   *catalog.Cell
	logger logger.Logger
}

func NewStoreSyncer(
	store Store,
	cell *catalog.Cell,
	log logger.Logger,
) *StoreSyncer {
	return &StoreSyncer{
		store:  store,
		cell:   cell,
		logger: log,
	}
}

// Sync replaces the in-memory collection with the persisted one.
// Store errors are propagated unchanged, so the caller can tell an empty
// store (redisstore.ErrNoSnapshot, seed the catalog) from a load failure
// (leave the persisted state alone).
func (ss *StoreSyncer) Sync(ctx context.Context) error {
	ss.logger.Info("syncing collection from redis to memory")

	records, err := ss.store.Load(ctx)
	if err != nil {
		return err
	}

	ss.cell.Replace(records)

	ss.logger.Info("synced collection from redis",
		logger.Int("records", len(records)))

	return nil
}
