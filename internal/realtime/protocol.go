package realtime

import "encoding/json"

// Client to server events.
const (
	EventJoinMatch  = "join_match"
	EventLeaveMatch = "leave_match"
	EventTyping     = "typing"
	EventStopTyping = "stop_typing"
)

// Server to client events besides domain.EventNewMessage and domain.EventMessagesRead.
const (
	EventJoinedMatch    = "joined_match"
	EventUserTyping     = "user_typing"
	EventUserStopTyping = "user_stop_typing"
	EventError          = "error"
)

// Frame is the JSON envelope of every websocket message in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type matchRef struct {
	MatchID string `json:"matchId"`
}

type typingPayload struct {
	MatchID  string `json:"matchId"`
	UserID   string `json:"userId"`
	UserName string `json:"userName,omitempty"`
}

type errorPayload struct {
	Event   string `json:"event,omitempty"`
	Message string `json:"message"`
}

func encodeFrame(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Frame{Event: event, Data: raw})
}
