package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
)

type memoryScoreboard struct {
	mu        sync.RWMutex
	standings map[string]entity.Standing
}

// NewMemoryScoreboardRepository - a scoreboard that lives as long as the process.
func NewMemoryScoreboardRepository() ScoreboardRepository {
	return &memoryScoreboard{
		standings: make(map[string]entity.Standing),
	}
}

func (that *memoryScoreboard) Record(_ context.Context, name string, tally entity.Tally) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	standing := that.standings[name]
	standing.Name = name
	standing.Wins += tally.Wins
	standing.Losses += tally.Losses
	standing.Draws += tally.Draws
	standing.Disqualifications += tally.Disqualifications
	that.standings[name] = standing

	return nil
}

func (that *memoryScoreboard) GetByName(_ context.Context, name string) (*entity.Standing, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	standing, ok := that.standings[name]
	if !ok {
		return &entity.Standing{}, ErrStandingNotFound
	}

	return &standing, nil
}

func (that *memoryScoreboard) DeleteByName(_ context.Context, name string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.standings[name]; !ok {
		return ErrStandingNotFound
	}

	delete(that.standings, name)

	return nil
}
