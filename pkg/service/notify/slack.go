package notify

import (
	"context"
	"log/slog"

	"github.com/slack-go/slack"
	"github.com/uncal-lab/flowcanvas/pkg/domain/interfaces"
	"github.com/uncal-lab/flowcanvas/pkg/utils/logging"
)

// SlackNotifier posts user-facing messages to a Slack channel. Delivery
// failures are logged and swallowed; notification is best-effort and must
// never break a save or load.
type SlackNotifier struct {
	client    *slack.Client
	channelID string
}

var _ interfaces.Notifier = &SlackNotifier{}

func NewSlack(token, channelID string) *SlackNotifier {
	return &SlackNotifier{
		client:    slack.New(token),
		channelID: channelID,
	}
}

func (n *SlackNotifier) post(ctx context.Context, emoji, msg string) {
	_, _, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(emoji+" "+msg, false),
	)
	if err != nil {
		logging.From(ctx).Warn("failed to post slack notification",
			slog.String("channel", n.channelID),
			slog.Any("error", err),
		)
	}
}

func (n *SlackNotifier) Info(ctx context.Context, msg string) {
	n.post(ctx, ":information_source:", msg)
}

func (n *SlackNotifier) Success(ctx context.Context, msg string) {
	n.post(ctx, ":white_check_mark:", msg)
}

func (n *SlackNotifier) Error(ctx context.Context, msg string) {
	n.post(ctx, ":rotating_light:", msg)
}
