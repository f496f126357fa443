package solver

import (
	"testing"

	"github.com/napolitain/fractaline-stonks/internal/models"
)

func TestStrategiesEnumeration(t *testing.T) {
	strategies := Strategies(3, models.Overrides{-1: models.Invest})

	wantNames := []string{"current", "invest-all", "invest-2-donate-1", "invest-1-donate-2", "donate-all"}
	if len(strategies) != len(wantNames) {
		t.Fatalf("got %d strategies, want %d", len(strategies), len(wantNames))
	}
	for i, want := range wantNames {
		if strategies[i].Name != want {
			t.Errorf("strategy %d = %s, want %s", i, strategies[i].Name, want)
		}
	}

	split := strategies[2].Overrides
	if split[-3] != models.Invest || split[-2] != models.Invest || split[-1] != models.Donate {
		t.Errorf("invest-2-donate-1 overrides = %v", split)
	}
	if strategies[0].Overrides[-1] != models.Invest {
		t.Error("current strategy lost the player's overrides")
	}
}

func TestCompareStrategies(t *testing.T) {
	resets := fiveResets()
	best, results := CompareStrategies(baseState(), resets, nil, TrailingWindow)

	if len(results) != len(resets)+2 {
		t.Fatalf("got %d results, want %d", len(results), len(resets)+2)
	}

	byName := make(map[string]int)
	for _, r := range results {
		byName[r.Strategy.Name] = r.Projection.Final.DonatedFractalineTotal
		if r.Projection.Final.DonatedFractalineTotal > best.Projection.Final.DonatedFractalineTotal {
			t.Errorf("%s beats best %s", r.Strategy.Name, best.Strategy.Name)
		}
	}

	if byName["donate-all"] != 6000 {
		t.Errorf("donate-all = %d, want 6000", byName["donate-all"])
	}
	if byName["invest-4-donate-1"] != 6100 {
		t.Errorf("invest-4-donate-1 = %d, want 6100", byName["invest-4-donate-1"])
	}
	if byName["invest-all"] != 0 {
		t.Errorf("invest-all = %d, want 0", byName["invest-all"])
	}

	// The default plan ties with invest-2-donate-3; the earlier one wins.
	if best.Strategy.Name != "current" || best.Projection.Final.DonatedFractalineTotal != 8100 {
		t.Errorf("best = %s (%d), want current (8100)", best.Strategy.Name, best.Projection.Final.DonatedFractalineTotal)
	}
}

func TestCompareStrategiesNoResets(t *testing.T) {
	best, results := CompareStrategies(baseState(), nil, nil, TrailingWindow)
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
	if best.Projection.Final != baseState() {
		t.Errorf("best final = %+v, want initial state", best.Projection.Final)
	}
}
