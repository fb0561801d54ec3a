package postgres

import (
	"context"
	"time"

	"go-swipe-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type matchRepo struct {
	db *pgxpool.Pool
}

func NewMatchRepository(db *pgxpool.Pool) domain.MatchRepository {
	return &matchRepo{db: db}
}

const matchColumns = `id, user1_id, user2_id, job_offer_id, active, created_at, updated_at`

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var m domain.Match
	if err := row.Scan(&m.ID, &m.User1ID, &m.User2ID, &m.JobOfferID, &m.Active, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchRepo) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	m, err := scanMatch(r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id))
	if err != nil {
		return nil, translate(err)
	}
	return m, nil
}

// FindByTriangle uses the same LEAST/GREATEST expression as the unique index so the
// lookup is order independent and index backed.
func (r *matchRepo) FindByTriangle(ctx context.Context, candidateID, recruiterID, jobOfferID string) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches
              WHERE LEAST(user1_id, user2_id) = LEAST($1::uuid, $2::uuid)
                AND GREATEST(user1_id, user2_id) = GREATEST($1::uuid, $2::uuid)
                AND job_offer_id = $3`
	m, err := scanMatch(r.db.QueryRow(ctx, query, candidateID, recruiterID, jobOfferID))
	if err != nil {
		return nil, translate(err)
	}
	return m, nil
}

func (r *matchRepo) Create(ctx context.Context, match *domain.Match) error {
	query := `INSERT INTO matches (id, user1_id, user2_id, job_offer_id, active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		match.ID, match.User1ID, match.User2ID, match.JobOfferID, match.Active, match.CreatedAt, match.UpdatedAt,
	)
	return translate(err)
}

func (r *matchRepo) Deactivate(ctx context.Context, id string) (*domain.Match, error) {
	query := `UPDATE matches SET active = FALSE, updated_at = now() WHERE id = $1
              RETURNING ` + matchColumns
	m, err := scanMatch(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err)
	}
	return m, nil
}

func (r *matchRepo) ListActiveSummaries(ctx context.Context, userID string) ([]domain.MatchSummary, error) {
	query := `
		SELECT
			m.id, m.user1_id, m.user2_id, m.job_offer_id, m.active, m.created_at, m.updated_at,
			j.title,
			cu.id, cu.user_type,
			p.user_id IS NOT NULL AS has_profile,
			COALESCE(p.first_name, ''), COALESCE(p.last_name, ''),
			p.title, p.bio, p.company_name, p.photo_url, p.skills,
			lm.id, lm.sender_id, lm.content, lm.read, lm.created_at,
			(
				SELECT COUNT(*) FROM messages um
				WHERE um.match_id = m.id AND um.sender_id <> $1 AND NOT um.read
			) AS unread_count
		FROM matches m
		JOIN job_offers j ON j.id = m.job_offer_id
		JOIN users cu ON cu.id = CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END
		LEFT JOIN profiles p ON p.user_id = cu.id
		LEFT JOIN LATERAL (
			SELECT id, sender_id, content, read, created_at
			FROM messages
			WHERE match_id = m.id
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		) lm ON TRUE
		WHERE m.active AND (m.user1_id = $1 OR m.user2_id = $1)
		ORDER BY m.created_at DESC, m.id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	summaries := []domain.MatchSummary{}
	for rows.Next() {
		var s domain.MatchSummary
		var hasProfile bool
		var p domain.Profile
		var skills []string
		var msgID, msgSender, msgContent *string
		var msgRead *bool
		var msgAt *time.Time
		err := rows.Scan(
			&s.ID, &s.User1ID, &s.User2ID, &s.JobOfferID, &s.Active, &s.CreatedAt, &s.UpdatedAt,
			&s.JobOfferTitle,
			&s.Counterpart.UserID, &s.Counterpart.Role,
			&hasProfile,
			&p.FirstName, &p.LastName,
			&p.Title, &p.Bio, &p.CompanyName, &p.PhotoURL, pq.Array(&skills),
			&msgID, &msgSender, &msgContent, &msgRead, &msgAt,
			&s.UnreadCount,
		)
		if err != nil {
			return nil, err
		}
		if hasProfile {
			p.Skills = skills
			if p.Skills == nil {
				p.Skills = []string{}
			}
			s.Counterpart.Profile = &p
		}
		if msgID != nil {
			s.LastMessage = &domain.Message{
				ID:        *msgID,
				MatchID:   s.ID,
				SenderID:  *msgSender,
				Content:   *msgContent,
				Read:      *msgRead,
				CreatedAt: *msgAt,
			}
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
