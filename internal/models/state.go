package models

import "time"

// ResourceState is a snapshot of the player's fractaline economy.
// It is a value type: transitions return a new ResourceState.
type ResourceState struct {
	ObeliskLevels              ObeliskLevels `json:"obeliskLevels"`
	ResonancePower             int           `json:"resonancePower"`
	DonatedFractalineTotal     int           `json:"donatedFractalineTotal"`
	FractalineInInventory      int           `json:"fractalineInInventory"`
	FusedFractalineInInventory int           `json:"fusedFractalineInInventory"`
	HasCollectedWeeklyBonus    bool          `json:"hasCollectedWeeklyBonus"`
}

// TotalObeliskLevel returns the sum of all obelisk levels
func (s ResourceState) TotalObeliskLevel() int {
	return s.ObeliskLevels.Total()
}

// Normalized returns a copy with every negative quantity clamped to zero
func (s ResourceState) Normalized() ResourceState {
	s.ObeliskLevels.Each(func(l Location, level int) {
		if level < 0 {
			s.ObeliskLevels = s.ObeliskLevels.Set(l, 0)
		}
	})
	s.ResonancePower = clampZero(s.ResonancePower)
	s.DonatedFractalineTotal = clampZero(s.DonatedFractalineTotal)
	s.FractalineInInventory = clampZero(s.FractalineInInventory)
	s.FusedFractalineInInventory = clampZero(s.FusedFractalineInInventory)
	return s
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// Checkpoint is a weekly reset together with its override key.
// The last checkpoint before season end has Index -1.
type Checkpoint struct {
	At    time.Time `json:"at"`
	Index int       `json:"index"`
}

// IndexCheckpoints assigns relative indexes to chronologically ordered reset times
func IndexCheckpoints(times []time.Time) []Checkpoint {
	n := len(times)
	checkpoints := make([]Checkpoint, n)
	for k, t := range times {
		checkpoints[k] = Checkpoint{At: t, Index: k - n}
	}
	return checkpoints
}

// ProjectionStep records the transition applied at one checkpoint
type ProjectionStep struct {
	Checkpoint Checkpoint    `json:"checkpoint"`
	Before     ResourceState `json:"before"`
	After      ResourceState `json:"after"`
	Action     Action        `json:"action"`
	Overridden bool          `json:"overridden"`
}

// DonatedDelta is the fractaline donated at this step
func (p ProjectionStep) DonatedDelta() int {
	return p.After.DonatedFractalineTotal - p.Before.DonatedFractalineTotal
}

// LevelDelta is the obelisk levels gained at this step
func (p ProjectionStep) LevelDelta() int {
	return p.After.TotalObeliskLevel() - p.Before.TotalObeliskLevel()
}
