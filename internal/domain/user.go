package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleRecruiter Role = "RECRUITER"
)

func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleRecruiter
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"userType"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile is the public part of a user shown on swipe cards and match lists.
type Profile struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Title       *string  `json:"title,omitempty"`
	Bio         *string  `json:"bio,omitempty"`
	CompanyName *string  `json:"companyName,omitempty"`
	PhotoURL    *string  `json:"photoUrl,omitempty"`
	Skills      []string `json:"skills"`
}

// CandidateCard is a candidate as shown to a recruiter in the swipe deck.
type CandidateCard struct {
	User
	Profile *Profile `json:"profile,omitempty"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	// ListUnswipedCandidates returns active candidates the recruiter has not swiped yet,
	// in insertion order.
	ListUnswipedCandidates(ctx context.Context, recruiterID string, limit int) ([]CandidateCard, error)
}

type UserUsecase interface {
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
