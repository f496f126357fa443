package solver

import "github.com/napolitain/fractaline-stonks/internal/models"

// TrailingWindow is the number of final resets reserved for donating
const TrailingWindow = 3

// DefaultAction is the policy before any override: invest while index <= -window
func DefaultAction(index, window int) models.Action {
	if index <= -window {
		return models.Invest
	}
	return models.Donate
}

// ResolveAction returns the action in effect at index. An override always wins.
func ResolveAction(index int, overrides models.Overrides, window int) models.Action {
	if action, ok := overrides[index]; ok {
		return action
	}
	return DefaultAction(index, window)
}

// Toggle flips the effective action at index and returns the new overrides.
// Only that index changes; the input map is left untouched.
func Toggle(overrides models.Overrides, index, window int) models.Overrides {
	current := ResolveAction(index, overrides, window)
	return overrides.With(index, current.Opposite())
}
