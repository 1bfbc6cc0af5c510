package messaging_test

import (
	"coffee-chat/errors"
	"coffee-chat/messaging"
	"coffee-chat/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func user(id, handle, realName string) slack.User {
	return slack.User{ID: id, Name: handle, Profile: slack.UserProfile{RealName: realName}}
}

func TestSlackClient_ListMembers_Keeps_Humans_Only(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockSlackAPI(ctrl)
	client := messaging.NewSlackClient(api, slog.Default(), "")

	bot := user("B1", "deploy-bot", "Deploy Bot")
	bot.IsBot = true
	deleted := user("U3", "gone", "Gone Member")
	deleted.Deleted = true

	// Given a workspace mixing humans, bots and deleted accounts
	api.EXPECT().GetUsersContext(gomock.Any()).Return([]slack.User{
		user("U1", "alice", "Alice Martin"),
		bot,
		user("USLACKBOT", "slackbot", "Slackbot"),
		deleted,
		user("U4", "noname", ""),
		user("U2", "bob", "Bob Durand"),
	}, nil).Times(1)

	// When members are listed
	members, err := client.ListMembers(context.Background())

	// Then only real humans remain, named by their real name
	req.NoError(err)
	req.Equal([]messaging.Member{
		{ID: "U1", Name: "Alice Martin"},
		{ID: "U2", Name: "Bob Durand"},
	}, members)
}

func TestSlackClient_ListMembers_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockSlackAPI(ctrl)
	client := messaging.NewSlackClient(api, slog.Default(), "")

	api.EXPECT().GetUsersContext(gomock.Any()).Return(nil, fmt.Errorf("invalid_auth")).Times(1)

	_, err := client.ListMembers(context.Background())

	req.ErrorIs(err, errors.ErrRosterUnavailable)
}

func TestSlackClient_SendPairMessage(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockSlackAPI(ctrl)
	client := messaging.NewSlackClient(api, slog.Default(), "%s meets %s")

	api.EXPECT().OpenConversationContext(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error) {
			req.Equal([]string{"U1", "U2"}, params.Users)
			channel := &slack.Channel{}
			channel.ID = "D42"
			return channel, false, false, nil
		}).Times(1)
	api.EXPECT().PostMessageContext(gomock.Any(), "D42", gomock.Any()).
		DoAndReturn(func(_ context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
			_, values, err := slack.UnsafeApplyMsgOptions("", channelID, "", options...)
			req.NoError(err)
			req.Equal("<@U1> meets <@U2>", values.Get("text"))
			return channelID, "1700000000.000100", nil
		}).Times(1)

	req.NoError(client.SendPairMessage(context.Background(), "U1", "U2"))
}

func TestSlackClient_SendPairMessage_Open_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mocks.NewMockSlackAPI(ctrl)
	client := messaging.NewSlackClient(api, slog.Default(), "")

	api.EXPECT().OpenConversationContext(gomock.Any(), gomock.Any()).
		Return(nil, false, false, fmt.Errorf("user_not_found")).Times(1)
	api.EXPECT().PostMessageContext(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := client.SendPairMessage(context.Background(), "U1", "U2")

	req.ErrorContains(err, "user_not_found")
}
