package usecase

import (
	"context"
	"time"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthUsecase struct {
	db    Pinger
	redis func(ctx context.Context) error
}

// NewHealthUsecase reports database and redis reachability. redis may be nil when the
// service runs without it.
func NewHealthUsecase(db Pinger, redis func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{db: db, redis: redis}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{
		"status":   "ok",
		"database": "ok",
		"redis":    "disabled",
	}

	if u.db == nil || u.db.Ping(ctx) != nil {
		status["database"] = "unavailable"
		status["status"] = "degraded"
	}

	if u.redis != nil {
		if err := u.redis(ctx); err != nil {
			// redis only backs rate limiting and fan-out, both degrade to in-process
			status["redis"] = "unavailable"
		} else {
			status["redis"] = "ok"
		}
	}

	return status
}
