package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	portssvc "github.com/jengabot/jenga_backend/internal/core/ports/services"
)

const (
	keyPrefix = "jenga:msgsid:"

	// Twilio retries within minutes; a day of retention is generous.
	defaultTTL = 24 * time.Hour
)

// RedisDedupStore suppresses provider webhook retries by remembering
// MessageSid values in Redis. SET NX gives a single atomic first-seen check
// across all server instances.
type RedisDedupStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDedupStore(client *redis.Client) *RedisDedupStore {
	return &RedisDedupStore{client: client, ttl: defaultTTL}
}

var _ portssvc.DedupStore = (*RedisDedupStore)(nil)

// FirstSeen returns true exactly once per providerSID within the TTL window.
// Errors are returned to the caller, which treats the message as first-seen;
// a Redis outage degrades to at-least-once processing, never to dropping.
func (s *RedisDedupStore) FirstSeen(ctx context.Context, providerSID string) (bool, error) {
	if providerSID == "" {
		return true, nil
	}
	set, err := s.client.SetNX(ctx, keyPrefix+providerSID, 1, s.ttl).Result()
	if err != nil {
		return true, fmt.Errorf("failed to check message sid %s: %w", providerSID, err)
	}
	return set, nil
}
