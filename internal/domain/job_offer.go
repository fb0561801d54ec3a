package domain

import (
	"context"
	"time"
)

type JobOffer struct {
	ID          string    `json:"id"`
	RecruiterID string    `json:"recruiterId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    *string   `json:"location,omitempty"`
	SalaryMin   *int64    `json:"salaryMin,omitempty"`
	SalaryMax   *int64    `json:"salaryMax,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// JobOfferCard is an offer as shown to a candidate in the swipe deck.
type JobOfferCard struct {
	JobOffer
	CompanyName *string `json:"companyName,omitempty"`
	Recruiter   string  `json:"recruiterName"`
}

type JobOfferRepository interface {
	GetByID(ctx context.Context, id string) (*JobOffer, error)
	ListIDsByRecruiter(ctx context.Context, recruiterID string) ([]string, error)
	// ListUnswipedActive returns active offers the candidate has not swiped yet, newest first.
	ListUnswipedActive(ctx context.Context, candidateID string, limit int) ([]JobOfferCard, error)
}
