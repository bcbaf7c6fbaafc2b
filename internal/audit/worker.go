package audit

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Sink receives serialized audit events. The Kafka producer satisfies this;
// a nil sink degrades the worker to log-only.
type Sink interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// Worker drains the publisher inbox into the sink. Sink failures are logged
// and the event is dropped; auditing here is best-effort operational
// telemetry, not a compliance ledger.
type Worker struct {
	inbox  <-chan Event
	sink   Sink
	logger *slog.Logger
}

func NewWorker(inbox <-chan Event, sink Sink, logger *slog.Logger) *Worker {
	return &Worker{inbox: inbox, sink: sink, logger: logger}
}

// Run consumes events until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			w.handle(ctx, event)
		}
	}
}

func (w *Worker) handle(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		w.logger.ErrorContext(ctx, "audit event marshal failed", "action", event.Action, "error", err)
		return
	}
	if w.sink == nil {
		w.logger.InfoContext(ctx, "audit event", "event", string(payload))
		return
	}
	if err := w.sink.Publish(ctx, string(event.Action), payload); err != nil {
		w.logger.ErrorContext(ctx, "audit event publish failed", "action", event.Action, "error", err)
	}
}
