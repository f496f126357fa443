package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/fractaline-stonks/internal/models"
	"github.com/napolitain/fractaline-stonks/internal/solver"
)

// ErrInvalidSnapshot is returned when a snapshot has impossible values
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// SnapshotJSON is the on-disk shape of a player snapshot
type SnapshotJSON struct {
	ObeliskLevels  models.ObeliskLevels `json:"obeliskLevels" yaml:"obeliskLevels"`
	ResonancePower *int                 `json:"resonancePower,omitempty" yaml:"resonancePower,omitempty"`
	Donated        int                  `json:"donatedFractaline" yaml:"donatedFractaline"`
	Inventory      int                  `json:"fractalineInInventory" yaml:"fractalineInInventory"`

	// Both spellings have shipped; either is accepted.
	LightFused     *int `json:"lightFusedFractalineInInventory,omitempty" yaml:"lightFusedFractalineInInventory,omitempty"`
	LightInfused   *int `json:"lightInfusedFractalineInInventory,omitempty" yaml:"lightInfusedFractalineInInventory,omitempty"`
	CollectedTower bool `json:"hasCollectedTowerFractaline" yaml:"hasCollectedTowerFractaline"`
}

// isYAML picks the decoder from the file extension
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func decode(path string, data []byte, target any) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, target)
	}
	return json.Unmarshal(data, target)
}

// LoadSnapshot loads a player snapshot from a JSON or YAML file
func LoadSnapshot(path string) (models.ResourceState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ResourceState{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return ParseSnapshot(path, data)
}

// ParseSnapshot decodes snapshot bytes; path only selects the format
func ParseSnapshot(path string, data []byte) (models.ResourceState, error) {
	var raw SnapshotJSON
	if err := decode(path, data, &raw); err != nil {
		return models.ResourceState{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if err := ValidateSnapshot(raw); err != nil {
		return models.ResourceState{}, err
	}
	return raw.ToState(), nil
}

// fused returns the fused fractaline count under whichever field name was used
func (s SnapshotJSON) fused() int {
	if s.LightFused != nil {
		return *s.LightFused
	}
	if s.LightInfused != nil {
		return *s.LightInfused
	}
	return 0
}

type namedQuantity struct {
	name  string
	value int
}

// ValidateSnapshot checks that every quantity is non-negative
func ValidateSnapshot(s SnapshotJSON) error {
	fields := []namedQuantity{
		{"donatedFractaline", s.Donated},
		{"fractalineInInventory", s.Inventory},
		{"lightFusedFractalineInInventory", s.fused()},
	}
	for _, l := range models.AllLocations() {
		fields = append(fields, namedQuantity{"obeliskLevels." + string(l), s.ObeliskLevels.Get(l)})
	}
	if s.ResonancePower != nil {
		fields = append(fields, namedQuantity{"resonancePower", *s.ResonancePower})
	}

	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s is negative (%d)", ErrInvalidSnapshot, f.name, f.value)
		}
	}
	return nil
}

// ToState converts the file shape into a ResourceState. A missing resonance
// power is derived from the obelisk levels.
func (s SnapshotJSON) ToState() models.ResourceState {
	resonance := solver.ResonanceFor(s.ObeliskLevels.Total())
	if s.ResonancePower != nil {
		resonance = *s.ResonancePower
	}
	return models.ResourceState{
		ObeliskLevels:              s.ObeliskLevels,
		ResonancePower:             resonance,
		DonatedFractalineTotal:     s.Donated,
		FractalineInInventory:      s.Inventory,
		FusedFractalineInInventory: s.fused(),
		HasCollectedWeeklyBonus:    s.CollectedTower,
	}
}

// LoadOverrides loads an index -> action mapping from a JSON or YAML file
func LoadOverrides(path string) (models.Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides: %w", err)
	}
	return ParseOverrides(path, data)
}

// ParseOverrides decodes override bytes; path only selects the format
func ParseOverrides(path string, data []byte) (models.Overrides, error) {
	var raw map[string]string
	if err := decode(path, data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return OverridesFromMap(raw)
}

// OverridesFromMap converts string-keyed overrides, as found in files and
// request bodies, into Overrides
func OverridesFromMap(raw map[string]string) (models.Overrides, error) {
	overrides := make(models.Overrides, len(raw))
	for key, value := range raw {
		index, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("invalid reset index %q: %w", key, err)
		}
		action, err := models.ParseAction(value)
		if err != nil {
			return nil, fmt.Errorf("reset %d: %w", index, err)
		}
		overrides[index] = action
	}
	return overrides, nil
}
