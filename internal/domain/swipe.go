package domain

import (
	"context"
	"encoding/json"
	"time"
)

// SwipeTarget is what a swipe points at: a job offer (candidate swiping) or a
// candidate (recruiter swiping). The interface is sealed; the only implementations
// are OfferTarget and CandidateTarget.
type SwipeTarget interface {
	swipeTarget()
	// ID returns the job offer id or the candidate user id.
	ID() string
}

// OfferTarget is a candidate's swipe on a job offer.
type OfferTarget struct {
	JobOfferID string
}

// CandidateTarget is a recruiter's swipe on a candidate.
type CandidateTarget struct {
	UserID string
}

func (OfferTarget) swipeTarget()     {}
func (t OfferTarget) ID() string     { return t.JobOfferID }
func (CandidateTarget) swipeTarget() {}
func (t CandidateTarget) ID() string { return t.UserID }

// RoleForTarget returns the only role allowed to swipe on the given target kind.
func RoleForTarget(t SwipeTarget) Role {
	if _, ok := t.(OfferTarget); ok {
		return RoleCandidate
	}
	return RoleRecruiter
}

type Swipe struct {
	ID        string
	SwiperID  string
	Target    SwipeTarget
	Liked     bool
	CreatedAt time.Time
}

type swipeJSON struct {
	ID           string    `json:"id"`
	SwiperID     string    `json:"swiperId"`
	JobOfferID   *string   `json:"jobOfferId"`
	TargetUserID *string   `json:"targetUserId"`
	Liked        bool      `json:"liked"`
	SwipeType    string    `json:"swipeType"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s Swipe) MarshalJSON() ([]byte, error) {
	out := swipeJSON{
		ID:        s.ID,
		SwiperID:  s.SwiperID,
		Liked:     s.Liked,
		SwipeType: "PASS",
		CreatedAt: s.CreatedAt,
	}
	if s.Liked {
		out.SwipeType = "LIKE"
	}
	switch t := s.Target.(type) {
	case OfferTarget:
		id := t.JobOfferID
		out.JobOfferID = &id
	case CandidateTarget:
		id := t.UserID
		out.TargetUserID = &id
	}
	return json.Marshal(out)
}

// SwipeResult is what recording a swipe yields; Match is nil unless the swipe
// completed a mutual like.
type SwipeResult struct {
	Swipe *Swipe `json:"swipe"`
	Match *Match `json:"match"`
}

type SwipeRepository interface {
	// FindByTarget returns ErrNotFound when swiperID has not swiped target.
	FindByTarget(ctx context.Context, swiperID string, target SwipeTarget) (*Swipe, error)
	// Create returns ErrConflict when the (swiper, target) key already exists.
	Create(ctx context.Context, swipe *Swipe) error
	// FindLike returns swiperID's LIKE on target, or ErrNotFound.
	FindLike(ctx context.Context, swiperID string, target SwipeTarget) (*Swipe, error)
	// FindEarliestOfferLike returns the candidate's oldest LIKE among offerIDs, or ErrNotFound.
	FindEarliestOfferLike(ctx context.Context, candidateID string, offerIDs []string) (*Swipe, error)
}

type SwipeUsecase interface {
	RecordSwipe(ctx context.Context, swiperID string, target SwipeTarget, liked bool) (*SwipeResult, error)
	ListPotentialOffers(ctx context.Context, candidateID string) ([]JobOfferCard, error)
	ListPotentialCandidates(ctx context.Context, recruiterID string) ([]CandidateCard, error)
}

// MatchDetector decides whether a fresh LIKE completes a mutual interest.
type MatchDetector interface {
	DetectReciprocal(ctx context.Context, swiperID string, target SwipeTarget) (*Match, error)
}
