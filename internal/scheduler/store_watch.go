package scheduler

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/somi-im/somi/internal/catalog"
	"github.com/somi-im/somi/internal/logger"
	"github.com/somi-im/somi/internal/utils"
)

// StoreWatcher observes replace events published by sibling instances
// sharing the same store and merges them by replacing the in-memory
// collection wholesale. Events carrying our own origin id are skipped.
//
// Delivery is last-write-wins: if two instances replace concurrently,
// whichever event lands last wins, matching the replace semantics of the
// collection itself.
type StoreWatcher struct {
	store  Store
	cell   *catalog.Cell
	logger logger.Logger
	stopCh chan struct{}
}

func NewStoreWatcher(
	store Store,
	cell *catalog.Cell,
	log logger.Logger,
) *StoreWatcher {
	return &StoreWatcher{
		store:  store,
		cell:   cell,
		logger: log,
		stopCh: make(chan struct{}),
	}
}

// Start subscribes to replace events and applies foreign ones until Stop
// or context cancellation.
func (sw *StoreWatcher) Start(ctx context.Context) error {
	pubsub := sw.store.Subscribe(ctx)

	// Force the subscription to be established before returning, so no
	// event published after Start is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		utils.Close(pubsub)
		return err
	}

	go func() {
		defer utils.Close(pubsub)
		sw.loop(ctx, pubsub.Channel())
	}()

	sw.logger.Info("store watcher started")
	return nil
}

// Stop stops the watcher.
func (sw *StoreWatcher) Stop() {
	close(sw.stopCh)
}

// loop consumes replace events until the channel closes, Stop is called,
// or ctx is cancelled.
func (sw *StoreWatcher) loop(ctx context.Context, ch <-chan *redis.Message) {
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload == sw.store.Origin() {
				continue
			}
			sw.apply(ctx)
		case <-sw.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (sw *StoreWatcher) apply(ctx context.Context) {
	records, err := sw.store.Load(ctx)
	if err != nil {
		sw.logger.Warn("failed to load collection after external replace",
			logger.Error(err))
		return
	}

	sw.cell.Replace(records)
	sw.logger.Info("applied external collection replace",
		logger.Int("records", len(records)))
}
