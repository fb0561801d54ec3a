package domain

import (
	"context"
	"time"
)

// Match is the mutual interest of a candidate and a recruiter on one job offer.
// User1ID is always the candidate and User2ID the recruiter.
type Match struct {
	ID         string    `json:"id"`
	User1ID    string    `json:"user1Id"`
	User2ID    string    `json:"user2Id"`
	JobOfferID string    `json:"jobOfferId"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// HasParticipant reports whether userID is one of the two matched users.
func (m *Match) HasParticipant(userID string) bool {
	return userID != "" && (m.User1ID == userID || m.User2ID == userID)
}

// Counterpart returns the other participant's id.
func (m *Match) Counterpart(userID string) string {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

// MatchParty is the other side of a match as seen by the viewer.
type MatchParty struct {
	UserID  string   `json:"userId"`
	Role    Role     `json:"userType"`
	Profile *Profile `json:"profile,omitempty"`
}

// MatchSummary is one entry of a user's match / conversation list.
type MatchSummary struct {
	Match
	JobOfferTitle string     `json:"jobOfferTitle"`
	Counterpart   MatchParty `json:"counterpart"`
	LastMessage   *Message   `json:"lastMessage,omitempty"`
	UnreadCount   int64      `json:"unreadCount"`
}

type MatchRepository interface {
	GetByID(ctx context.Context, id string) (*Match, error)
	// FindByTriangle looks the pair up in either user order; ErrNotFound when absent.
	FindByTriangle(ctx context.Context, candidateID, recruiterID, jobOfferID string) (*Match, error)
	// Create returns ErrConflict when the unordered pair + offer already has a match and
	// ErrReferenceMissing when a referenced user or offer no longer exists.
	Create(ctx context.Context, match *Match) error
	Deactivate(ctx context.Context, id string) (*Match, error)
	// ListActiveSummaries returns the viewer's active matches newest first with unread counts.
	ListActiveSummaries(ctx context.Context, userID string) ([]MatchSummary, error)
}

type MatchUsecase interface {
	CreateOrGetMatch(ctx context.Context, candidateID, recruiterID, jobOfferID string) (*Match, error)
	ListMatches(ctx context.Context, userID string) ([]MatchSummary, error)
	GetMatch(ctx context.Context, userID, matchID string) (*Match, error)
	Unmatch(ctx context.Context, userID, matchID string) (*Match, error)
}
