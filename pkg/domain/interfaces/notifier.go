package interfaces

import "context"

// Notifier receives semantic user-facing events from the core.
// Presentation (toast, Slack message, log line) is the implementation's
// concern. Every failure surfaces exactly one notification.
type Notifier interface {
	Info(ctx context.Context, msg string)
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}
