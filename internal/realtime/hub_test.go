package realtime

import (
	"context"
	"encoding/json"
	"testing"

	"go-swipe-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, userID string, buffer int) *Client {
	return &Client{hub: hub, send: make(chan []byte, buffer), userID: userID}
}

func TestHubRoomsAndEmit(t *testing.T) {
	hub := NewHub()
	alice := newTestClient(hub, "alice", 4)
	bob := newTestClient(hub, "bob", 4)
	hub.Register(alice)
	hub.Register(bob)
	assert.Equal(t, 2, hub.ClientCount())
	assert.True(t, hub.InRoom(alice, domain.UserRoom("alice")))

	room := domain.MatchRoom("m-1")
	hub.Join(alice, room)
	hub.Join(bob, room)

	assert.Equal(t, 1, hub.Emit(room, []byte("hi"), alice))
	assert.Equal(t, []byte("hi"), <-bob.send)
	assert.Empty(t, alice.send)

	hub.Leave(bob, room)
	assert.False(t, hub.InRoom(bob, room))
	assert.Equal(t, 1, hub.Emit(room, []byte("again"), nil))
}

func TestHubDropsSlowClients(t *testing.T) {
	hub := NewHub()
	slow := newTestClient(hub, "slow", 1)
	hub.Register(slow)
	room := domain.UserRoom("slow")

	assert.Equal(t, 1, hub.Emit(room, []byte("one"), nil))
	assert.Equal(t, 0, hub.Emit(room, []byte("two"), nil))
	assert.Equal(t, 0, hub.ClientCount())

	<-slow.send
	_, open := <-slow.send
	assert.False(t, open)

	// unregistering twice must not close the channel again
	assert.NotPanics(t, func() { hub.Unregister(slow) })
}

func TestJoinOnUnregisteredClientIsIgnored(t *testing.T) {
	hub := NewHub()
	ghost := newTestClient(hub, "ghost", 1)
	hub.Join(ghost, domain.MatchRoom("m-1"))
	assert.False(t, hub.InRoom(ghost, domain.MatchRoom("m-1")))
}

func TestBroadcasterDeliversLocallyWithoutRedis(t *testing.T) {
	hub := NewHub()
	c := newTestClient(hub, "alice", 4)
	hub.Register(c)
	hub.Join(c, domain.MatchRoom("m-1"))

	b := NewBroadcaster(hub, nil)
	b.NewMessage(context.Background(), &domain.Message{ID: "msg-1", MatchID: "m-1", SenderID: "bob", Content: "Hello"})
	b.MessagesRead(context.Background(), &domain.ReadReceipt{MatchID: "m-1", UserID: "bob", Count: 2})

	var frame Frame
	require.NoError(t, json.Unmarshal(<-c.send, &frame))
	assert.Equal(t, domain.EventNewMessage, frame.Event)
	var payload newMessagePayload
	require.NoError(t, json.Unmarshal(frame.Data, &payload))
	assert.Equal(t, "m-1", payload.MatchID)
	assert.Equal(t, "Hello", payload.Message.Content)

	require.NoError(t, json.Unmarshal(<-c.send, &frame))
	assert.Equal(t, domain.EventMessagesRead, frame.Event)
	assert.JSONEq(t, `{"matchId":"m-1","userId":"bob","count":2}`, string(frame.Data))
}

func TestBroadcasterDeliverRelaysPublishedEvents(t *testing.T) {
	hub := NewHub()
	c := newTestClient(hub, "alice", 4)
	hub.Register(c)

	b := NewBroadcaster(hub, nil)
	b.deliver([]byte(`{"room":"user:alice","frame":{"event":"ping"}}`))
	b.deliver([]byte(`not json`))

	assert.JSONEq(t, `{"event":"ping"}`, string(<-c.send))
	assert.Empty(t, c.send)
}
