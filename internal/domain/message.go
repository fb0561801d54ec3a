package domain

import (
	"context"
	"time"
)

// MaxMessageLength is counted in characters (runes) after trimming.
const MaxMessageLength = 5000

type Message struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"matchId"`
	SenderID  string    `json:"senderId"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReadReceipt is the outcome of marking a conversation as read.
type ReadReceipt struct {
	MatchID string `json:"matchId"`
	UserID  string `json:"userId"`
	Count   int64  `json:"count"`
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	// ListByMatch returns the conversation oldest first.
	ListByMatch(ctx context.Context, matchID string) ([]Message, error)
	// MarkReadFor flags every unread message of the match not sent by readerID.
	MarkReadFor(ctx context.Context, matchID, readerID string) (int64, error)
}

type MessageUsecase interface {
	SendMessage(ctx context.Context, matchID, senderID, content string) (*Message, error)
	ListMessages(ctx context.Context, matchID, userID string) ([]Message, error)
	MarkAsRead(ctx context.Context, matchID, userID string) (*ReadReceipt, error)
}
