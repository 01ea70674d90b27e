package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	DungeonResolved Type = "dungeon.resolved"
	PlayerLeveledUp Type = "player.leveled_up"
	ShopPurchase    Type = "shop.purchase"
	ItemDropped     Type = "item.dropped"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// DungeonResolvedPayloadV1 is the typed payload for dungeon resolution events
type DungeonResolvedPayloadV1 struct {
	DungeonID       string `json:"dungeon_id"`
	PlayerID        string `json:"player_id"`
	Tier            int    `json:"tier"`
	Success         bool   `json:"success"`
	XPAwarded       int64  `json:"xp_awarded"`
	CoinsAwarded    int64  `json:"coins_awarded"`
	ItemsDropped    []int  `json:"items_dropped,omitempty"`
	StaminaRefunded int    `json:"stamina_refunded,omitempty"`
	Timestamp       int64  `json:"timestamp"`
}

// PlayerLeveledUpPayloadV1 is the typed payload for level-up events
type PlayerLeveledUpPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Tier      string `json:"tier"`
	Timestamp int64  `json:"timestamp"`
}

// ShopPurchasePayloadV1 is the typed payload for shop purchase events
type ShopPurchasePayloadV1 struct {
	PlayerID  string `json:"player_id"`
	ItemName  string `json:"item_name"`
	Price     int64  `json:"price"`
	Source    string `json:"source"` // "global" or "marketplace"
	Timestamp int64  `json:"timestamp"`
}

// ItemDroppedPayloadV1 is the typed payload for passive item drop events
type ItemDroppedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	ItemName  string `json:"item_name"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewDungeonResolvedEvent creates a new dungeon resolution event
func NewDungeonResolvedEvent(dungeonID, playerID string, tier int, success bool, xp, coins int64, items []int, staminaRefunded int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DungeonResolved,
		Payload: DungeonResolvedPayloadV1{
			DungeonID:       dungeonID,
			PlayerID:        playerID,
			Tier:            tier,
			Success:         success,
			XPAwarded:       xp,
			CoinsAwarded:    coins,
			ItemsDropped:    items,
			StaminaRefunded: staminaRefunded,
			Timestamp:       time.Now().Unix(),
		},
	}
}

// NewPlayerLeveledUpEvent creates a new level-up event
func NewPlayerLeveledUpEvent(playerID string, oldLevel, newLevel int, tier string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerLeveledUp,
		Payload: PlayerLeveledUpPayloadV1{
			PlayerID:  playerID,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			Tier:      tier,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewShopPurchaseEvent creates a new shop purchase event
func NewShopPurchaseEvent(playerID, itemName string, price int64, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ShopPurchase,
		Payload: ShopPurchasePayloadV1{
			PlayerID:  playerID,
			ItemName:  itemName,
			Price:     price,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemDroppedEvent creates a new passive item drop event
func NewItemDroppedEvent(playerID, itemName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemDropped,
		Payload: ItemDroppedPayloadV1{
			PlayerID:  playerID,
			ItemName:  itemName,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously; a failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
