package domain

import "context"

// Realtime event names pushed to connected clients.
const (
	EventNewMessage   = "new_message"
	EventMessagesRead = "messages_read"
)

// Notifier pushes events to connected clients. Delivery is best effort: implementations
// must not block the caller and never report delivery failures back.
type Notifier interface {
	NewMessage(ctx context.Context, msg *Message)
	MessagesRead(ctx context.Context, receipt *ReadReceipt)
}

// MatchRoom is the realtime room shared by the two participants of a match.
func MatchRoom(matchID string) string {
	return "match:" + matchID
}

// UserRoom is the personal realtime room of a connected user.
func UserRoom(userID string) string {
	return "user:" + userID
}
