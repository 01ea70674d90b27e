package discord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"insufficient funds", domain.ErrMsgInsufficientFunds, MsgInsufficientFunds},
		{"insufficient stamina", domain.ErrMsgInsufficientStamina, MsgInsufficientStamina},
		{"not enough items", domain.ErrMsgInsufficientQuantity, MsgNotEnoughItems},
		{"dungeon active", domain.ErrMsgDungeonActive, MsgDungeonActive},
		{"item not found", domain.ErrMsgItemNotFound, MsgItemNotFound},
		{"not in shop", domain.ErrMsgNotInShop, MsgNotInShop},
		{"out of stock", domain.ErrMsgOutOfStock, MsgOutOfStock},
		{"listing not found", domain.ErrMsgListingNotFound, MsgListingNotFound},
		{"player not found", domain.ErrMsgPlayerNotFound, MsgPlayerNotFound},
		{"unknown error gets prefix", "the server caught fire", "❌ the server caught fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFriendlyError(tt.msg))
		})
	}
}

func TestFormatFriendlyError_WrappedErrors(t *testing.T) {
	// Services wrap sentinels with context; containment must still match
	wrapped := fmt.Errorf("%w: need 3, have 1", domain.ErrInsufficientStamina)
	assert.Equal(t, MsgInsufficientStamina, formatFriendlyError(wrapped.Error()))
}
