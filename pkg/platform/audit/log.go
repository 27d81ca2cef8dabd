package audit

import (
	"context"
	"log/slog"

	"policycore/pkg/attrs"
	"policycore/pkg/requestcontext"
)

// Emitter accepts audit events. Implemented by publisher.Publisher.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// Log writes an audit line to the structured logger and, when an emitter is
// configured, emits the matching Event. The "subject", "decision" and
// "reason" keys in kv populate the Event fields of the same name.
// Emission failures are logged, never returned.
func Log(ctx context.Context, logger *slog.Logger, emitter Emitter, event AuditEvent, kv ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		kv = append(kv, "request_id", requestID)
	}
	args := append(kv, "event", event.String(), "log_type", "audit")

	if logger != nil {
		logger.InfoContext(ctx, event.String(), args...)
	}

	if emitter == nil {
		return
	}
	err := emitter.Emit(ctx, Event{
		Category:  event.Category(),
		Timestamp: requestcontext.Now(ctx),
		Subject:   attrs.ExtractString(kv, "subject"),
		Action:    event.String(),
		Decision:  attrs.ExtractString(kv, "decision"),
		Reason:    attrs.ExtractString(kv, "reason"),
		RequestID: requestID,
	})
	if err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "event", event.String(), "error", err)
	}
}
