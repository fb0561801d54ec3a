package postgres

import (
	"context"

	"go-swipe-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, user_type, active, created_at, updated_at FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Role, &user.Active, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) ListUnswipedCandidates(ctx context.Context, recruiterID string, limit int) ([]domain.CandidateCard, error) {
	query := `
		SELECT
			u.id, u.email, u.user_type, u.active, u.created_at, u.updated_at,
			p.user_id IS NOT NULL AS has_profile,
			COALESCE(p.first_name, ''), COALESCE(p.last_name, ''),
			p.title, p.bio, p.company_name, p.photo_url, p.skills
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE u.user_type = 'CANDIDATE'
		  AND u.active
		  AND NOT EXISTS (
			SELECT 1 FROM swipes s
			WHERE s.swiper_id = $1 AND s.target_user_id = u.id
		  )
		ORDER BY u.created_at ASC, u.id ASC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, recruiterID, limit)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	cards := []domain.CandidateCard{}
	for rows.Next() {
		var card domain.CandidateCard
		var hasProfile bool
		var p domain.Profile
		var skills []string
		err := rows.Scan(
			&card.ID, &card.Email, &card.Role, &card.Active, &card.CreatedAt, &card.UpdatedAt,
			&hasProfile,
			&p.FirstName, &p.LastName,
			&p.Title, &p.Bio, &p.CompanyName, &p.PhotoURL, pq.Array(&skills),
		)
		if err != nil {
			return nil, err
		}
		if hasProfile {
			p.Skills = skills
			if p.Skills == nil {
				p.Skills = []string{}
			}
			card.Profile = &p
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}
