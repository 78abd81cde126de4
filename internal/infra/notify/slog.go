package notify

import (
	"context"
	"log/slog"
)

// SlogNotifier delivers user-facing toasts to the structured log. The web
// client reads them from the response it already gets; the log is the
// durable trace.
type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) Info(ctx context.Context, userKey, message string) {
	n.logger.LogAttrs(ctx, slog.LevelInfo, "notification",
		slog.String("severity", "info"),
		slog.String("user_key", userKey),
		slog.String("message", message),
	)
}

func (n *SlogNotifier) Success(ctx context.Context, userKey, message string) {
	n.logger.LogAttrs(ctx, slog.LevelInfo, "notification",
		slog.String("severity", "success"),
		slog.String("user_key", userKey),
		slog.String("message", message),
	)
}
