// Package solver implements the reset-by-reset fractaline projection.
package solver

import "github.com/napolitain/fractaline-stonks/internal/models"

// Game conversion constants
const (
	FractalinePerRank = 200 // fractaline converted into one obelisk rank
	DonationUnit      = 100 // donations are accepted in multiples of this
	ResonancePerRank  = 100
	BaseResonance     = 200
)

// ResonanceFor returns the resonance power produced by a total obelisk level
func ResonanceFor(totalLevel int) int {
	return ResonancePerRank*totalLevel + BaseResonance
}

// weeklyIncomeClaimed reports whether this reset's passive resonance was already collected
func weeklyIncomeClaimed(s models.ResourceState, respectWeeklyBonusFlag bool) bool {
	return respectWeeklyBonusFlag && s.HasCollectedWeeklyBonus
}

// Invest converts fractaline (and the week's resonance, unless already claimed)
// into obelisk ranks. Fused fractaline adds one rank each.
func Invest(state models.ResourceState, respectWeeklyBonusFlag bool) models.ResourceState {
	s := state.Normalized()

	toConvert := s.FractalineInInventory
	if !weeklyIncomeClaimed(s, respectWeeklyBonusFlag) {
		toConvert += s.ResonancePower
	}

	ranks := toConvert / FractalinePerRank
	remainder := toConvert - ranks*FractalinePerRank

	total := s.TotalObeliskLevel() + ranks + s.FusedFractalineInInventory

	s.ObeliskLevels = models.SingleBucket(total)
	s.ResonancePower = ResonanceFor(total)
	s.FractalineInInventory = remainder
	s.FusedFractalineInInventory = 0
	s.HasCollectedWeeklyBonus = false
	return s
}

// Donate hands fractaline to the tower in whole donation units. Fused
// fractaline first raises the obelisks, which boosts this week's resonance
// unless the weekly income was already claimed.
func Donate(state models.ResourceState, respectWeeklyBonusFlag bool) models.ResourceState {
	s := state.Normalized()
	claimed := weeklyIncomeClaimed(s, respectWeeklyBonusFlag)

	usableResonance := s.ResonancePower
	if s.FusedFractalineInInventory > 0 {
		total := s.TotalObeliskLevel() + s.FusedFractalineInInventory
		boosted := ResonanceFor(total)
		if !claimed {
			usableResonance = boosted
		}
		s.ObeliskLevels = models.SingleBucket(total)
		s.ResonancePower = boosted
	}

	toConvert := s.FractalineInInventory
	if !claimed {
		toConvert += usableResonance
	}

	eligible := toConvert / DonationUnit * DonationUnit

	s.DonatedFractalineTotal += eligible
	s.FractalineInInventory = toConvert - eligible
	s.FusedFractalineInInventory = 0
	s.HasCollectedWeeklyBonus = false
	return s
}

// Apply runs the transition for action
func Apply(action models.Action, state models.ResourceState, respectWeeklyBonusFlag bool) models.ResourceState {
	if action == models.Invest {
		return Invest(state, respectWeeklyBonusFlag)
	}
	return Donate(state, respectWeeklyBonusFlag)
}
