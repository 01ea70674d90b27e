package discord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DungeonBot_Go/internal/event"
)

type captureSender struct {
	channels []string
	messages []string
}

func (c *captureSender) ChannelMessageSend(channelID string, content string, _ ...interface{}) error {
	c.channels = append(c.channels, channelID)
	c.messages = append(c.messages, content)
	return nil
}

func TestNewNotifier_DisabledWithoutChannel(t *testing.T) {
	bus := event.NewMemoryBus()
	assert.Nil(t, NewNotifier(nil, bus, "", "🪙"))
}

func TestNotifier_DungeonResolved(t *testing.T) {
	sender := &captureSender{}
	n := &Notifier{session: sender, channelID: "chan-1", currency: "🪙"}

	t.Run("success", func(t *testing.T) {
		e := event.NewDungeonResolvedEvent("d1", "p1", 3, true, 450, 225, []int{7}, 0)
		require.NoError(t, n.handleDungeonResolved(context.Background(), e))

		require.Len(t, sender.messages, 1)
		assert.Equal(t, "chan-1", sender.channels[0])
		assert.Contains(t, sender.messages[0], "<@p1>")
		assert.Contains(t, sender.messages[0], "tier 3")
		assert.Contains(t, sender.messages[0], "450 XP")
		assert.Contains(t, sender.messages[0], "1 item(s) looted")
	})

	t.Run("failure with refund", func(t *testing.T) {
		e := event.NewDungeonResolvedEvent("d2", "p2", 5, false, 250, 200, nil, 2)
		require.NoError(t, n.handleDungeonResolved(context.Background(), e))

		require.Len(t, sender.messages, 2)
		assert.Contains(t, sender.messages[1], "driven out")
		assert.Contains(t, sender.messages[1], "⚡2 refunded")
	})
}

func TestNotifier_PlayerLeveledUp(t *testing.T) {
	sender := &captureSender{}
	n := &Notifier{session: sender, channelID: "chan-1", currency: "🪙"}

	e := event.NewPlayerLeveledUpEvent("p1", 2, 3, "beginner")
	require.NoError(t, n.handlePlayerLeveledUp(context.Background(), e))

	require.Len(t, sender.messages, 1)
	assert.Contains(t, sender.messages[0], "<@p1>")
	assert.Contains(t, sender.messages[0], "level 3")
}

func TestNotifier_IgnoresUnknownPayload(t *testing.T) {
	sender := &captureSender{}
	n := &Notifier{session: sender, channelID: "chan-1", currency: "🪙"}

	e := event.Event{Type: event.DungeonResolved, Payload: "not a struct"}
	require.NoError(t, n.handleDungeonResolved(context.Background(), e))
	assert.Empty(t, sender.messages)
}
