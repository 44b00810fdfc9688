package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/data"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/repository/weekend"
)

// ResultService stores and retrieves simulated race weekends.
type ResultService struct {
	pool  *pgxpool.Pool
	clock clockwork.Clock
}

type Option func(*ResultService)

func WithClock(c clockwork.Clock) Option {
	return func(s *ResultService) { s.clock = c }
}

func InitResultService(pool *pgxpool.Pool, opts ...Option) *ResultService {
	ret := &ResultService{pool: pool, clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

//nolint:whitespace // can't make both the linter and editor happy
func (s *ResultService) SaveWeekend(
	ctx context.Context,
	season int,
	result *model.WeekendResult,
) (*model.DbRaceWeekend, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	entry := &model.DbRaceWeekend{
		ID:       id,
		Season:   season,
		TrackKey: data.TrackKey(result.Track),
		Created:  s.clock.Now().UTC(),
		Data:     *result,
	}
	err = pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return weekend.Create(ctx, tx.Conn(), entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

//nolint:whitespace // can't make both the linter and editor happy
func (s *ResultService) LoadSeason(
	ctx context.Context,
	season int,
) ([]*model.DbRaceWeekend, error) {
	return weekend.LoadBySeason(ctx, s.pool, season)
}

func (s *ResultService) DeleteWeekend(ctx context.Context, id uuid.UUID) (int, error) {
	return weekend.DeleteByID(ctx, s.pool, id)
}
