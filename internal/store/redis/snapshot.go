// Package redis persists the catalog as a single key-value blob and
// notifies sibling instances of replacements over pub/sub.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/somi-im/somi/internal/domain"
)

// ErrNoSnapshot is returned by Load when the collection key is absent.
// That is not a failure: the caller falls back to the seed catalog.
var ErrNoSnapshot = errors.New("no collection snapshot in redis")

// Store mirrors the in-memory collection to Redis.
type Store struct {
	client *redis.Client
	origin string
}

// NewStore creates a store. Each store carries a unique origin id so an
// instance can recognize (and skip) its own replace events.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		origin: uuid.NewString(),
	}
}

// Origin returns this instance's publish identity.
func (s *Store) Origin() string {
	return s.origin
}

// Load retrieves the persisted collection.
func (s *Store) Load(ctx context.Context) ([]domain.Record, error) {
	data, err := s.client.Get(ctx, KeyCollection).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collection: %w", err)
	}
	return records, nil
}

// Replace overwrites the persisted collection with records and publishes
// a replace event tagged with this store's origin id.
func (s *Store) Replace(ctx context.Context, records []domain.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}

	if err := s.client.Set(ctx, KeyCollection, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}

	// A missed event only delays sibling convergence until the next
	// replace, but the caller still wants to know.
	if err := s.client.Publish(ctx, ChannelEvents, s.origin).Err(); err != nil {
		return fmt.Errorf("failed to publish replace event: %w", err)
	}
	return nil
}

// Subscribe opens the replace-event subscription. The caller owns the
// returned PubSub and must close it.
func (s *Store) Subscribe(ctx context.Context) *redis.PubSub {
	return s.client.Subscribe(ctx, ChannelEvents)
}
