package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/apperror"
	"go-swipe-backend/pkg/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// MatchAccess is the slice of domain.MatchUsecase a socket needs to authorise room joins.
type MatchAccess interface {
	GetMatch(ctx context.Context, userID, matchID string) (*domain.Match, error)
}

// Client is one authenticated websocket connection.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	userID  string
	matches MatchAccess
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string, matches MatchAccess) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		userID:  userID,
		matches: matches,
	}
}

// ReadPump handles inbound frames until the connection fails; it owns the unregister.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.Debug("WS read error", "user_id", c.userID, "error", err)
			}
			return
		}
		c.handle(raw)
	}
}

// WritePump drains the send buffer and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handle(raw []byte) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		c.reply(EventError, errorPayload{Message: "malformed frame"})
		return
	}

	var ref typingPayload
	if len(frame.Data) > 0 {
		if err := json.Unmarshal(frame.Data, &ref); err != nil {
			c.reply(EventError, errorPayload{Event: frame.Event, Message: "malformed payload"})
			return
		}
	}
	ref.MatchID = strings.TrimSpace(ref.MatchID)
	if ref.MatchID == "" {
		c.reply(EventError, errorPayload{Event: frame.Event, Message: "matchId is required"})
		return
	}
	room := domain.MatchRoom(ref.MatchID)

	switch frame.Event {
	case EventJoinMatch:
		c.joinMatch(ref.MatchID)
	case EventLeaveMatch:
		c.hub.Leave(c, room)
	case EventTyping, EventStopTyping:
		// only members of the conversation may signal typing into it
		if !c.hub.InRoom(c, room) {
			c.reply(EventError, errorPayload{Event: frame.Event, Message: "join the match first"})
			return
		}
		event := EventUserTyping
		if frame.Event == EventStopTyping {
			event = EventUserStopTyping
			ref.UserName = ""
		}
		ref.UserID = c.userID
		out, err := encodeFrame(event, ref)
		if err != nil {
			return
		}
		c.hub.Emit(room, out, c)
	default:
		c.reply(EventError, errorPayload{Event: frame.Event, Message: "unknown event"})
	}
}

func (c *Client) joinMatch(matchID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := c.matches.GetMatch(ctx, c.userID, matchID); err != nil {
		msg := "could not join match"
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Reason != apperror.ReasonInternal {
			msg = appErr.Message
		}
		c.reply(EventError, errorPayload{Event: EventJoinMatch, Message: msg})
		return
	}
	c.hub.Join(c, domain.MatchRoom(matchID))
	c.reply(EventJoinedMatch, matchRef{MatchID: matchID})
}

// reply sends a frame to this client only; dropped when the buffer is full.
func (c *Client) reply(event string, data any) {
	out, err := encodeFrame(event, data)
	if err != nil {
		return
	}
	c.hub.mutex.RLock()
	defer c.hub.mutex.RUnlock()
	if _, ok := c.hub.clients[c]; !ok {
		return
	}
	select {
	case c.send <- out:
	default:
	}
}
