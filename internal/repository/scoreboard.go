package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
)

const DefaultKeyPrefix = "scoreboard"

var ErrStandingNotFound = errors.New("standing not found")

// ScoreboardRepository - keeps aggregate win/loss/draw counters per robot name.
type ScoreboardRepository interface {
	Record(ctx context.Context, name string, tally entity.Tally) error
	GetByName(ctx context.Context, name string) (*entity.Standing, error)
	DeleteByName(ctx context.Context, name string) error
}

type dbStanding struct {
	Wins              int64 `redis:"wins"`
	Losses            int64 `redis:"losses"`
	Draws             int64 `redis:"draws"`
	Disqualifications int64 `redis:"disqualifications"`
}

type dbScoreboard struct {
	client *redis.Client
	prefix string
}

func NewScoreboardRepository(client *redis.Client, prefix string) ScoreboardRepository {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &dbScoreboard{
		client: client,
		prefix: prefix,
	}
}

func (that *dbScoreboard) Record(ctx context.Context, name string, tally entity.Tally) error {
	key := that.key(name)

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, "wins", tally.Wins)
		pipe.HIncrBy(ctx, key, "losses", tally.Losses)
		pipe.HIncrBy(ctx, key, "draws", tally.Draws)
		pipe.HIncrBy(ctx, key, "disqualifications", tally.Disqualifications)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record tally: %w", err)
	}

	return nil
}

func (that *dbScoreboard) GetByName(ctx context.Context, name string) (*entity.Standing, error) {
	cmd := that.client.HGetAll(ctx, that.key(name))

	response, err := cmd.Result()
	if err != nil {
		return &entity.Standing{}, fmt.Errorf("failed to get standing by name: %w", err)
	}

	if len(response) == 0 {
		return &entity.Standing{}, ErrStandingNotFound
	}

	var existing dbStanding
	if err = cmd.Scan(&existing); err != nil {
		return &entity.Standing{}, fmt.Errorf("failed to scan standing: %w", err)
	}

	return &entity.Standing{
		Name:              name,
		Wins:              existing.Wins,
		Losses:            existing.Losses,
		Draws:             existing.Draws,
		Disqualifications: existing.Disqualifications,
	}, nil
}

func (that *dbScoreboard) DeleteByName(ctx context.Context, name string) error {
	deleted, err := that.client.Del(ctx, that.key(name)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete standing by name: %w", err)
	}

	if deleted == 0 {
		return ErrStandingNotFound
	}

	return nil
}

func (that *dbScoreboard) key(name string) string {
	return that.prefix + ":" + name
}
