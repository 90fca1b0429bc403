package config

import (
	"github.com/uncal-lab/flowcanvas/pkg/domain/interfaces"
	"github.com/uncal-lab/flowcanvas/pkg/service/notify"
	"github.com/uncal-lab/flowcanvas/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Slack holds CLI flags for Slack notification
type Slack struct {
	token     string
	channelID string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack Bot OAuth token for notifications",
			Sources:     cli.EnvVars("FLOWCANVAS_SLACK_OAUTH_TOKEN"),
			Destination: &s.token,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID for notifications",
			Sources:     cli.EnvVars("FLOWCANVAS_SLACK_CHANNEL_ID"),
			Destination: &s.channelID,
		},
	}
}

// Configure returns a Slack notifier when both token and channel are set,
// falling back to the log notifier otherwise.
func (s *Slack) Configure() interfaces.Notifier {
	if s.token == "" || s.channelID == "" {
		return notify.NewLog()
	}
	logging.Default().Info("Using Slack notifier", "channel_id", s.channelID)
	return notify.NewSlack(s.token, s.channelID)
}
