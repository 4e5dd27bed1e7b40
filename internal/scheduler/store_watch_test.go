package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/somi-im/somi/internal/catalog"
	"github.com/somi-im/somi/internal/domain"
	"github.com/somi-im/somi/internal/logger"
	redisstore "github.com/somi-im/somi/internal/store/redis"
)

// fakeStore serves canned snapshots and counts loads.
type fakeStore struct {
	records []domain.Record
	loadErr error
	loads   int
}

func (f *fakeStore) Load(ctx context.Context) ([]domain.Record, error) {
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.records, nil
}

func (f *fakeStore) Origin() string { return "self-origin" }

func (f *fakeStore) Subscribe(ctx context.Context) *redis.PubSub { return nil }

func TestStoreSyncerSync(t *testing.T) {
	log := logger.New("error", false)

	t.Run("loads persisted collection", func(t *testing.T) {
		cell := catalog.NewCell()
		store := &fakeStore{records: []domain.Record{{ID: "1", Name: "a.com"}}}

		if err := NewStoreSyncer(store, cell, log).Sync(context.Background()); err != nil {
			t.Fatalf("Sync() error = %v", err)
		}
		if cell.Len() != 1 || cell.Snapshot()[0].Name != "a.com" {
			t.Errorf("cell = %+v", cell.Snapshot())
		}
	})

	t.Run("propagates ErrNoSnapshot unchanged", func(t *testing.T) {
		cell := catalog.NewCell()
		store := &fakeStore{loadErr: redisstore.ErrNoSnapshot}

		err := NewStoreSyncer(store, cell, log).Sync(context.Background())
		if !errors.Is(err, redisstore.ErrNoSnapshot) {
			t.Errorf("Sync() error = %v, want ErrNoSnapshot", err)
		}
		if cell.Len() != 0 {
			t.Error("a failed sync must not alter the cell")
		}
	})

	t.Run("other load errors stay distinguishable", func(t *testing.T) {
		cell := catalog.NewCell()
		loadErr := errors.New("connection reset")
		store := &fakeStore{loadErr: loadErr}

		err := NewStoreSyncer(store, cell, log).Sync(context.Background())
		if !errors.Is(err, loadErr) {
			t.Errorf("Sync() error = %v, want the load error", err)
		}
		if errors.Is(err, redisstore.ErrNoSnapshot) {
			t.Error("a load failure must not look like an empty store")
		}
	})
}

func TestStoreWatcherAppliesForeignEvents(t *testing.T) {
	cell := catalog.NewCell()
	store := &fakeStore{records: []domain.Record{{ID: "1", Name: "a.com"}, {ID: "2", Name: "b.net"}}}
	w := NewStoreWatcher(store, cell, logger.New("error", false))

	ch := make(chan *redis.Message, 1)
	ch <- &redis.Message{Payload: "other-instance"}
	close(ch)
	w.loop(context.Background(), ch)

	if store.loads != 1 {
		t.Errorf("store saw %d loads, want 1", store.loads)
	}
	if cell.Len() != 2 {
		t.Errorf("cell has %d records after foreign replace, want 2", cell.Len())
	}
	if cell.Version() != 1 {
		t.Errorf("cell version = %d, want 1", cell.Version())
	}
}

func TestStoreWatcherSkipsOwnEvents(t *testing.T) {
	cell := catalog.NewCell()
	store := &fakeStore{records: []domain.Record{{ID: "1", Name: "a.com"}}}
	w := NewStoreWatcher(store, cell, logger.New("error", false))

	ch := make(chan *redis.Message, 1)
	ch <- &redis.Message{Payload: store.Origin()}
	close(ch)
	w.loop(context.Background(), ch)

	if store.loads != 0 {
		t.Errorf("own-origin event triggered %d loads, want 0", store.loads)
	}
	if cell.Version() != 0 {
		t.Errorf("cell version = %d, want 0", cell.Version())
	}
}

func TestStoreWatcherKeepsCellOnLoadFailure(t *testing.T) {
	cell := catalog.NewCell()
	cell.Replace([]domain.Record{{ID: "1", Name: "a.com"}})
	store := &fakeStore{loadErr: errors.New("connection reset")}
	w := NewStoreWatcher(store, cell, logger.New("error", false))

	ch := make(chan *redis.Message, 1)
	ch <- &redis.Message{Payload: "other-instance"}
	close(ch)
	w.loop(context.Background(), ch)

	if cell.Len() != 1 {
		t.Error("a failed reload must leave the cell untouched")
	}
}

func TestStoreWatcherStop(t *testing.T) {
	cell := catalog.NewCell()
	store := &fakeStore{}
	w := NewStoreWatcher(store, cell, logger.New("error", false))

	ch := make(chan *redis.Message)
	done := make(chan struct{})
	go func() {
		w.loop(context.Background(), ch)
		close(done)
	}()

	w.Stop()
	<-done
}
