package notify

import (
	"context"

	"github.com/uncal-lab/flowcanvas/pkg/domain/interfaces"
	"github.com/uncal-lab/flowcanvas/pkg/utils/logging"
)

// LogNotifier writes notifications to the structured logger. It is the
// default when no Slack channel is configured.
type LogNotifier struct{}

var _ interfaces.Notifier = &LogNotifier{}

func NewLog() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Info(ctx context.Context, msg string) {
	logging.From(ctx).Info(msg)
}

func (n *LogNotifier) Success(ctx context.Context, msg string) {
	logging.From(ctx).Info(msg)
}

func (n *LogNotifier) Error(ctx context.Context, msg string) {
	logging.From(ctx).Error(msg)
}
