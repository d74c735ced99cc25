package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// streamMaxLen caps the audit stream; older entries are trimmed approximately
const streamMaxLen = 100000

// RedisStreamRecorder appends entries to a Redis stream
type RedisStreamRecorder struct {
	rdb    *redis.Client
	stream string
}

// NewRedisStreamRecorder creates a recorder writing to stream
func NewRedisStreamRecorder(rdb *redis.Client, stream string) *RedisStreamRecorder {
	return &RedisStreamRecorder{rdb: rdb, stream: stream}
}

// NewRedisClient creates a client for the audit stream
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        password,
		DB:              db,
		MaxRetries:      1,
		MinRetryBackoff: 50 * time.Millisecond,
		MaxRetryBackoff: 500 * time.Millisecond,
	})
}

func (r *RedisStreamRecorder) Record(ctx context.Context, entry Entry) error {
	counts, err := json.Marshal(entry.Counts)
	if err != nil {
		return fmt.Errorf("failed to encode audit counts: %w", err)
	}
	return r.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"id":          entry.ID,
			"project_id":  entry.ProjectID,
			"user_id":     entry.UserID,
			"request_id":  entry.RequestID,
			"version":     entry.Version,
			"stale_base":  entry.StaleBase,
			"counts":      string(counts),
			"warnings":    entry.Warnings,
			"occurred_at": entry.OccurredAt.Format(time.RFC3339Nano),
		},
	}).Err()
}
