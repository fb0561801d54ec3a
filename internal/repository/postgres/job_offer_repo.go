package postgres

import (
	"context"

	"go-swipe-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type jobOfferRepo struct {
	db *pgxpool.Pool
}

func NewJobOfferRepository(db *pgxpool.Pool) domain.JobOfferRepository {
	return &jobOfferRepo{db: db}
}

func (r *jobOfferRepo) GetByID(ctx context.Context, id string) (*domain.JobOffer, error) {
	query := `SELECT id, recruiter_id, title, description, location, salary_min, salary_max, active, created_at, updated_at
              FROM job_offers WHERE id = $1`
	var offer domain.JobOffer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&offer.ID, &offer.RecruiterID, &offer.Title, &offer.Description, &offer.Location,
		&offer.SalaryMin, &offer.SalaryMax, &offer.Active, &offer.CreatedAt, &offer.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &offer, nil
}

// ListIDsByRecruiter includes inactive offers: a like given before the offer was
// closed still counts towards a match.
func (r *jobOfferRepo) ListIDsByRecruiter(ctx context.Context, recruiterID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM job_offers WHERE recruiter_id = $1`, recruiterID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *jobOfferRepo) ListUnswipedActive(ctx context.Context, candidateID string, limit int) ([]domain.JobOfferCard, error) {
	query := `
		SELECT
			j.id, j.recruiter_id, j.title, j.description, j.location,
			j.salary_min, j.salary_max, j.active, j.created_at, j.updated_at,
			p.company_name,
			TRIM(COALESCE(p.first_name, '') || ' ' || COALESCE(p.last_name, '')) AS recruiter_name
		FROM job_offers j
		LEFT JOIN profiles p ON p.user_id = j.recruiter_id
		WHERE j.active
		  AND NOT EXISTS (
			SELECT 1 FROM swipes s
			WHERE s.swiper_id = $1 AND s.job_offer_id = j.id
		  )
		ORDER BY j.created_at DESC, j.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, candidateID, limit)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	cards := []domain.JobOfferCard{}
	for rows.Next() {
		var card domain.JobOfferCard
		if err := rows.Scan(
			&card.ID, &card.RecruiterID, &card.Title, &card.Description, &card.Location,
			&card.SalaryMin, &card.SalaryMax, &card.Active, &card.CreatedAt, &card.UpdatedAt,
			&card.CompanyName, &card.Recruiter,
		); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}
