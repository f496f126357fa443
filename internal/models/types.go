package models

import (
	"errors"
	"fmt"
	"strings"
)

// Location represents one of the four obelisk locations
type Location string

const (
	EDZ          Location = "edz"
	Mars         Location = "mars"
	Nessus       Location = "nessus"
	TangledShore Location = "tangledShore"
)

// AllLocations returns all obelisk locations in deterministic order
func AllLocations() []Location {
	return []Location{EDZ, Mars, Nessus, TangledShore}
}

// DisplayName returns the in-game name of the location
func (l Location) DisplayName() string {
	switch l {
	case EDZ:
		return "EDZ"
	case Mars:
		return "Mars"
	case Nessus:
		return "Nessus"
	case TangledShore:
		return "Tangled Shore"
	}
	return string(l)
}

// ObeliskLevels is a deterministic struct for obelisk levels (replaces map[Location]int)
type ObeliskLevels struct {
	EDZ          int `json:"edz" yaml:"edz"`
	Mars         int `json:"mars" yaml:"mars"`
	Nessus       int `json:"nessus" yaml:"nessus"`
	TangledShore int `json:"tangledShore" yaml:"tangledShore"`
}

// Get returns the level for a location
func (o ObeliskLevels) Get(l Location) int {
	switch l {
	case EDZ:
		return o.EDZ
	case Mars:
		return o.Mars
	case Nessus:
		return o.Nessus
	case TangledShore:
		return o.TangledShore
	}
	return 0
}

// Set returns a copy with the level for a location replaced
func (o ObeliskLevels) Set(l Location, level int) ObeliskLevels {
	switch l {
	case EDZ:
		o.EDZ = level
	case Mars:
		o.Mars = level
	case Nessus:
		o.Nessus = level
	case TangledShore:
		o.TangledShore = level
	}
	return o
}

// Each iterates over all locations in deterministic order
func (o ObeliskLevels) Each(fn func(Location, int)) {
	fn(EDZ, o.EDZ)
	fn(Mars, o.Mars)
	fn(Nessus, o.Nessus)
	fn(TangledShore, o.TangledShore)
}

// Total returns the sum of all obelisk levels
func (o ObeliskLevels) Total() int {
	return o.EDZ + o.Mars + o.Nessus + o.TangledShore
}

// SingleBucket puts the whole total into the EDZ obelisk.
// Per-location attribution is not tracked once levels are gained.
func SingleBucket(total int) ObeliskLevels {
	return ObeliskLevels{EDZ: total}
}

// Action is the choice made at a reset
type Action string

const (
	Invest Action = "invest"
	Donate Action = "donate"
)

// ErrUnknownAction is returned when an action string is neither invest nor donate
var ErrUnknownAction = errors.New("unknown action")

// ParseAction parses an action name (case-insensitive)
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case Invest:
		return Invest, nil
	case Donate:
		return Donate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Opposite returns the other action
func (a Action) Opposite() Action {
	if a == Invest {
		return Donate
	}
	return Invest
}

// Label returns the shouted label used in reset listings
func (a Action) Label() string {
	return strings.ToUpper(string(a)) + "!"
}

func (a Action) String() string {
	return string(a)
}
