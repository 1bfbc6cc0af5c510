//go:generate go run go.uber.org/mock/mockgen -source=slack.go -destination=../mocks/mock_slack.go -package=mocks
package messaging

import (
	"coffee-chat/errors"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/slack-go/slack"
)

const DefaultMessageText = "Hi! :wave: %s and %s\n" +
	"You have been paired for a coffee chat!\n" +
	"Get in touch and find a slot within the week. :coffee: :sandwich: :cake:"

const slackbotName = "slackbot"

// SlackAPI is the subset of *slack.Client used to enumerate members and send DMs.
type SlackAPI interface {
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Member is a human account of the workspace.
type Member struct {
	ID   string
	Name string
}

type SlackClient struct {
	api         SlackAPI
	log         *slog.Logger
	messageText string
}

// NewSlackClient builds a client around api. messageText is a format string
// receiving the two member mentions; an empty one falls back to DefaultMessageText.
func NewSlackClient(api SlackAPI, log *slog.Logger, messageText string) *SlackClient {
	if strings.Count(messageText, "%s") != 2 {
		messageText = DefaultMessageText
	}
	return &SlackClient{api: api, log: log, messageText: messageText}
}

// ListMembers returns the human members of the workspace.
// Bots, deleted accounts, slackbot and members without a real name are left out.
func (c *SlackClient) ListMembers(ctx context.Context) ([]Member, error) {
	users, err := c.api.GetUsersContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrRosterUnavailable, err)
	}
	humans := lo.Filter(users, func(u slack.User, _ int) bool {
		return !u.IsBot && !u.Deleted && u.Name != slackbotName && u.Profile.RealName != ""
	})
	members := lo.Map(humans, func(u slack.User, _ int) Member {
		return Member{ID: u.ID, Name: u.Profile.RealName}
	})
	c.log.Debug("Members listed", "total", len(users), "humans", len(members))
	return members, nil
}

// SendPairMessage opens a group DM with both members and posts the pairing message.
func (c *SlackClient) SendPairMessage(ctx context.Context, firstID, secondID string) error {
	channel, _, _, err := c.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{firstID, secondID},
	})
	if err != nil {
		return fmt.Errorf("open conversation: %w", err)
	}
	text := fmt.Sprintf(c.messageText, mention(firstID), mention(secondID))
	if _, _, err = c.api.PostMessageContext(ctx, channel.ID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("post message: %w", err)
	}
	c.log.Debug("Pair notified", "channel", channel.ID)
	return nil
}

func mention(userID string) string {
	return "<@" + userID + ">"
}
