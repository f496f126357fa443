package solver

import (
	"time"

	"github.com/napolitain/fractaline-stonks/internal/models"
	"github.com/napolitain/fractaline-stonks/internal/schedule"
)

// Projection is the outcome of folding a state through the reset grid
type Projection struct {
	Initial models.ResourceState    `json:"initial"`
	Steps   []models.ProjectionStep `json:"steps"`

	// Final is the season-end (terminal) record
	Final models.ResourceState `json:"final"`
}

// DonatedGain is the fractaline donated between now and season end
func (p Projection) DonatedGain() int {
	return p.Final.DonatedFractalineTotal - p.Initial.DonatedFractalineTotal
}

// Actions returns the action taken at each step
func (p Projection) Actions() []models.Action {
	actions := make([]models.Action, len(p.Steps))
	for i, step := range p.Steps {
		actions[i] = step.Action
	}
	return actions
}

// Project applies the resolved action at every checkpoint in order. The
// weekly-bonus flag only counts for the first (soonest) checkpoint.
func Project(initial models.ResourceState, checkpoints []time.Time, overrides models.Overrides, window int) Projection {
	indexed := models.IndexCheckpoints(checkpoints)
	steps := make([]models.ProjectionStep, 0, len(indexed))

	state := initial
	for i, cp := range indexed {
		action := ResolveAction(cp.Index, overrides, window)
		_, overridden := overrides[cp.Index]

		next := Apply(action, state, i == 0)
		steps = append(steps, models.ProjectionStep{
			Checkpoint: cp,
			Before:     state,
			After:      next,
			Action:     action,
			Overridden: overridden,
		})
		state = next
	}

	return Projection{
		Initial: initial,
		Steps:   steps,
		Final:   state,
	}
}

// ProjectSeason projects from now until the season end under the standard
// donation window
func ProjectSeason(initial models.ResourceState, now time.Time, overrides models.Overrides) Projection {
	checkpoints := schedule.GenerateCheckpoints(now, schedule.SeasonEnd)
	return Project(initial, checkpoints, overrides, TrailingWindow)
}
