package audit

import (
	"context"
	"log/slog"

	"disha/pkg/requestcontext"
)

// Publisher accepts audit events without blocking the request path. Events
// queue into a buffered channel drained by the Worker; when the buffer is
// full the event is dropped and counted in the log rather than stalling a
// registration.
//
// A nil *Publisher is valid and discards events, so wiring stays simple when
// auditing is disabled.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

func NewPublisher(buffer int, logger *slog.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

// Emit enqueues an event, stamping timestamp and request metadata from the
// context. Never blocks.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if p == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.ClientIP == "" {
		event.ClientIP = requestcontext.ClientIP(ctx)
	}
	if event.Device == "" {
		event.Device = requestcontext.Device(ctx)
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.Warn("audit buffer full, dropping event", "action", event.Action)
	}
}

// Inbox exposes the drain side for the Worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}
