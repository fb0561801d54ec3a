package postgres

import (
	"context"

	"go-swipe-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `INSERT INTO messages (id, match_id, sender_id, content, read, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, msg.ID, msg.MatchID, msg.SenderID, msg.Content, msg.Read, msg.CreatedAt)
	return translate(err)
}

func (r *messageRepo) ListByMatch(ctx context.Context, matchID string) ([]domain.Message, error) {
	query := `SELECT id, match_id, sender_id, content, read, created_at
              FROM messages WHERE match_id = $1
              ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, query, matchID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	msgs := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.MatchID, &m.SenderID, &m.Content, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *messageRepo) MarkReadFor(ctx context.Context, matchID, readerID string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE messages SET read = TRUE WHERE match_id = $1 AND sender_id <> $2 AND NOT read`,
		matchID, readerID,
	)
	if err != nil {
		return 0, translate(err)
	}
	return tag.RowsAffected(), nil
}
