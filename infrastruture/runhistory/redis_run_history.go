package runhistory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var _ i.RunHistory = &RedisRunHistory{}

// RedisRunHistory keeps run summaries in one sorted set per board, scored by
// completion time.
type RedisRunHistory struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	limit  int64
}

// NewRedisRunHistory initializes a RedisRunHistory. Each board keeps at most
// limit summaries, and its set expires ttl after its first run.
func NewRedisRunHistory(client *redis.Client, ttl time.Duration, limit int) *RedisRunHistory {
	pool := goredis.NewPool(client)
	return &RedisRunHistory{
		client: client,
		locker: redsync.New(pool),
		ttl:    ttl,
		limit:  int64(limit),
	}
}

func historyKey(boardID uuid.UUID) string {
	return "pathfinder:board:" + boardID.String() + ":runs"
}

// Record adds a summary to its board's set, sets expiration if necessary and
// trims the set to the configured limit.
func (h *RedisRunHistory) Record(ctx context.Context, summary domain.RunSummary) error {
	member, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	key := historyKey(summary.BoardID)
	score := float64(summary.CompletedAt.UnixNano())
	if err := h.client.ZAdd(ctx, key, redis.Z{Score: score, Member: string(member)}).Err(); err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := h.client.TTL(ctx, key).Result()
	if err == nil && ttl == -1 {
		_ = h.client.Expire(ctx, key, h.ttl).Err()
	}

	return h.trim(ctx, key)
}

// trim drops the oldest summaries beyond the limit. Replicas trimming the same
// board are serialized.
func (h *RedisRunHistory) trim(ctx context.Context, key string) error {
	if h.limit <= 0 {
		return nil
	}

	mutex := h.locker.NewMutex(key + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	if h.client.ZCard(ctx, key).Val() <= h.limit {
		return nil
	}
	return h.client.ZRemRangeByRank(ctx, key, 0, -h.limit-1).Err()
}

// Recent returns up to limit summaries of a board, newest first.
func (h *RedisRunHistory) Recent(ctx context.Context, boardID uuid.UUID, limit int) ([]domain.RunSummary, error) {
	if limit <= 0 {
		return []domain.RunSummary{}, nil
	}

	members, err := h.client.ZRevRange(ctx, historyKey(boardID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.RunSummary, 0, len(members))
	for _, m := range members {
		var s domain.RunSummary
		if err := json.Unmarshal([]byte(m), &s); err != nil {
			return nil, fmt.Errorf("decoding run summary of board %s: %w", boardID, err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
