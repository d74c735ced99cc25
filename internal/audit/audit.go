// Package audit records applied change-sets after they commit. Recording is
// best-effort: failures are logged and never reach the caller.
package audit

import (
	"context"
	"sync"
	"time"

	"planner-backend/internal/logger"

	"github.com/google/uuid"
)

// Entry describes one committed change-set
type Entry struct {
	ID         string           `json:"id"`
	ProjectID  string           `json:"projectId"`
	UserID     string           `json:"userId"`
	RequestID  string           `json:"requestId,omitempty"`
	Version    int64            `json:"version"`
	StaleBase  bool             `json:"staleBase"`
	Counts     map[string]int64 `json:"counts"`
	Warnings   int              `json:"warnings"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// Recorder persists audit entries
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// DispatcherInterface hands entries to a recorder without blocking the caller
type DispatcherInterface interface {
	Dispatch(ctx context.Context, entry Entry)
}

// Dispatcher writes each entry from its own goroutine with a bounded timeout.
type Dispatcher struct {
	recorder Recorder
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewDispatcher creates a dispatcher over recorder. A nil recorder discards entries.
func NewDispatcher(recorder Recorder, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{recorder: recorder, timeout: timeout}
}

// Dispatch records entry in the background. The entry outlives ctx: only the
// request's user and request id are carried over for logging.
func (d *Dispatcher) Dispatch(ctx context.Context, entry Entry) {
	if d.recorder == nil {
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}
	detached := logger.ContextWithRequestID(logger.ContextWithUser(context.Background(), logger.UserFromContext(ctx)),
		logger.RequestIDFromContext(ctx))

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		recordCtx, cancel := context.WithTimeout(detached, d.timeout)
		defer cancel()

		if err := d.recorder.Record(recordCtx, entry); err != nil {
			logger.WithContext(detached).
				WithProject(entry.ProjectID).
				WithError(err).
				Warn("failed to record audit entry")
		}
	}()
}

// Close waits for entries in flight
func (d *Dispatcher) Close() {
	d.wg.Wait()
}

// LogRecorder writes entries to the structured log
type LogRecorder struct{}

// NewLogRecorder creates a LogRecorder
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

func (r *LogRecorder) Record(ctx context.Context, entry Entry) error {
	logger.WithContext(ctx).
		WithProject(entry.ProjectID).
		WithFields(map[string]interface{}{
			"audit_id":   entry.ID,
			"version":    entry.Version,
			"stale_base": entry.StaleBase,
			"counts":     entry.Counts,
			"warnings":   entry.Warnings,
		}).
		Info("change-set applied")
	return nil
}
