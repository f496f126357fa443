package solver

import (
	"fmt"
	"time"

	"github.com/napolitain/fractaline-stonks/internal/models"
)

// Strategy names a reset-by-reset action plan
type Strategy struct {
	Name      string
	Overrides models.Overrides
}

func (s Strategy) String() string {
	return s.Name
}

// StrategyResult pairs a strategy with its projection
type StrategyResult struct {
	Strategy   Strategy
	Projection Projection
}

// Strategies enumerates the plans worth comparing for n checkpoints: the
// player's current plan first, then every "invest k resets, then donate" split.
// k = 0 is all-donate and k = n is all-invest.
func Strategies(n int, current models.Overrides) []Strategy {
	strategies := []Strategy{{Name: "current", Overrides: current.Clone()}}
	for k := n; k >= 0; k-- {
		overrides := make(models.Overrides, n)
		for i := 0; i < n; i++ {
			action := models.Donate
			if i < k {
				action = models.Invest
			}
			overrides[i-n] = action
		}
		strategies = append(strategies, Strategy{Name: splitName(k, n), Overrides: overrides})
	}
	return strategies
}

func splitName(k, n int) string {
	switch k {
	case 0:
		return "donate-all"
	case n:
		return "invest-all"
	}
	return fmt.Sprintf("invest-%d-donate-%d", k, n-k)
}

// CompareStrategies projects every strategy and returns the one with the
// highest season-end donation. Ties go to the earlier strategy.
func CompareStrategies(
	initial models.ResourceState,
	checkpoints []time.Time,
	current models.Overrides,
	window int,
) (StrategyResult, []StrategyResult) {
	var best StrategyResult
	var results []StrategyResult

	for i, strategy := range Strategies(len(checkpoints), current) {
		projection := Project(initial, checkpoints, strategy.Overrides, window)
		result := StrategyResult{Strategy: strategy, Projection: projection}
		results = append(results, result)

		if i == 0 || projection.Final.DonatedFractalineTotal > best.Projection.Final.DonatedFractalineTotal {
			best = result
		}
	}

	return best, results
}
