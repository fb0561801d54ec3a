package realtime

import (
	"context"
	"encoding/json"
	"time"

	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the redis pub/sub channel shared by all instances.
const DefaultChannel = "swipe:realtime"

const publishTimeout = 2 * time.Second

// roomEvent is what travels over redis: a ready-made client frame and its room.
type roomEvent struct {
	Room  string          `json:"room"`
	Frame json.RawMessage `json:"frame"`
}

type newMessagePayload struct {
	MatchID string          `json:"matchId"`
	Message *domain.Message `json:"message"`
}

// Broadcaster implements domain.Notifier. With a redis client every event goes through
// pub/sub so members connected to other instances receive it too; without one it is
// delivered to the local hub only.
type Broadcaster struct {
	hub     *Hub
	rdb     *redis.Client
	channel string
}

func NewBroadcaster(hub *Hub, rdb *redis.Client) *Broadcaster {
	return &Broadcaster{hub: hub, rdb: rdb, channel: DefaultChannel}
}

func (b *Broadcaster) NewMessage(ctx context.Context, msg *domain.Message) {
	if msg == nil {
		return
	}
	b.publish(ctx, domain.MatchRoom(msg.MatchID), domain.EventNewMessage, newMessagePayload{MatchID: msg.MatchID, Message: msg})
}

func (b *Broadcaster) MessagesRead(ctx context.Context, receipt *domain.ReadReceipt) {
	if receipt == nil {
		return
	}
	b.publish(ctx, domain.MatchRoom(receipt.MatchID), domain.EventMessagesRead, receipt)
}

func (b *Broadcaster) publish(ctx context.Context, room, event string, data any) {
	frame, err := encodeFrame(event, data)
	if err != nil {
		logger.Log.Error("realtime encode failed", "event", event, "error", err)
		return
	}

	if b.rdb == nil {
		b.hub.Emit(room, frame, nil)
		return
	}

	payload, err := json.Marshal(roomEvent{Room: room, Frame: frame})
	if err != nil {
		logger.Log.Error("realtime encode failed", "event", event, "error", err)
		return
	}

	// the request may finish before redis answers
	ctx = context.WithoutCancel(ctx)
	go func() {
		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		if err := b.rdb.Publish(pubCtx, b.channel, payload).Err(); err != nil {
			logger.Log.Warn("realtime publish failed, delivering locally", "event", event, "error", err)
			b.hub.Emit(room, frame, nil)
		}
	}()
}

// Run relays events published by any instance to the local hub until ctx is done.
func (b *Broadcaster) Run(ctx context.Context) {
	if b.rdb == nil {
		return
	}

	sub := b.rdb.Subscribe(ctx, b.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			b.deliver([]byte(m.Payload))
		}
	}
}

func (b *Broadcaster) deliver(payload []byte) {
	var ev roomEvent
	if err := json.Unmarshal(payload, &ev); err != nil || ev.Room == "" {
		logger.Log.Warn("realtime dropped malformed event", "error", err)
		return
	}
	b.hub.Emit(ev.Room, ev.Frame, nil)
}
