package audit

import (
	"context"
	"fmt"

	"planner-backend/internal/config"
)

// NewRecorderFromConfig builds the recorder selected by AUDIT_SINK. The
// returned close function releases the recorder's connections. A nil
// recorder means entries are discarded.
func NewRecorderFromConfig(ctx context.Context, cfg *config.Config) (Recorder, func() error, error) {
	noop := func() error { return nil }

	switch cfg.AuditSink {
	case config.AuditSinkNone:
		return nil, noop, nil
	case config.AuditSinkRedis:
		rdb := NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, noop, fmt.Errorf("failed to reach audit redis at %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisStreamRecorder(rdb, cfg.AuditStream), rdb.Close, nil
	case config.AuditSinkLog, "":
		return NewLogRecorder(), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown audit sink %q", cfg.AuditSink)
}
