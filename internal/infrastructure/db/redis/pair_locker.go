package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockTTL = 10 * time.Second

// PairLocker serializes conversation creation per participant pair across
// replicas with a short-lived SET NX lock. The TTL bounds how long a crashed
// holder can block the pair.
// Key format: pairlock:<pair_key>
type PairLocker struct {
	client *redis.Client
}

func NewPairLocker(client *redis.Client) *PairLocker {
	return &PairLocker{client: client}
}

// Claim attempts to take the lock for pairKey. False means another replica
// holds it right now.
func (l *PairLocker) Claim(ctx context.Context, pairKey string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(pairKey), "1", lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("claim pair lock: %w", err)
	}
	return ok, nil
}

// Release drops the lock. Safe to call on a lock that already expired.
func (l *PairLocker) Release(ctx context.Context, pairKey string) error {
	if err := l.client.Del(ctx, l.key(pairKey)).Err(); err != nil {
		return fmt.Errorf("release pair lock: %w", err)
	}
	return nil
}

func (l *PairLocker) key(pairKey string) string {
	return "pairlock:" + pairKey
}
