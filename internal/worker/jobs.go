package worker

import (
	"context"
	"fmt"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/player"
)

// StaminaSweeper is the slice of the player service the stamina job needs
type StaminaSweeper interface {
	RunStaminaSweep(ctx context.Context) (*player.SweepResult, error)
}

// StaminaSweepJob credits regenerated stamina on each tick
type StaminaSweepJob struct {
	Sweeper StaminaSweeper
}

func (j *StaminaSweepJob) Process(ctx context.Context) error {
	if _, err := j.Sweeper.RunStaminaSweep(ctx); err != nil {
		return fmt.Errorf("%s: %w", LogMsgStaminaSweepFailed, err)
	}
	return nil
}

// DungeonSweeper is the slice of the dungeon service the resolution job needs.
// Outcomes are broadcast on the event bus; the job discards them.
type DungeonSweeper interface {
	RunResolutionSweep(ctx context.Context) ([]domain.ResolvedRun, error)
}

// DungeonSweepJob resolves due dungeon runs on each tick
type DungeonSweepJob struct {
	Sweeper DungeonSweeper
}

func (j *DungeonSweepJob) Process(ctx context.Context) error {
	if _, err := j.Sweeper.RunResolutionSweep(ctx); err != nil {
		return fmt.Errorf("%s: %w", LogMsgDungeonSweepFailed, err)
	}
	return nil
}

// RestockSweeper is the slice of the shop service the restock job needs
type RestockSweeper interface {
	RunRestockSweep(ctx context.Context) (int64, error)
}

// RestockSweepJob tops the global shop back up on each tick
type RestockSweepJob struct {
	Sweeper RestockSweeper
}

func (j *RestockSweepJob) Process(ctx context.Context) error {
	if _, err := j.Sweeper.RunRestockSweep(ctx); err != nil {
		return fmt.Errorf("%s: %w", LogMsgRestockSweepFailed, err)
	}
	return nil
}
