// Package countdown breaks the time left until a milestone into its largest whole unit.
package countdown

import (
	"fmt"
	"time"
)

// Unit is a countdown granularity
type Unit struct {
	Singular string
	Plural   string
	Size     time.Duration
}

// Units from largest to smallest
var Units = []Unit{
	{"Week", "Weeks", 7 * 24 * time.Hour},
	{"Day", "Days", 24 * time.Hour},
	{"Hour", "Hours", time.Hour},
	{"Minute", "Minutes", time.Minute},
	{"Second", "Seconds", time.Second},
}

// Result is a countdown expressed in a single unit
type Result struct {
	Value        int64  `json:"value"`
	UnitSingular string `json:"unitSingular"`
	UnitPlural   string `json:"unitPlural"`
}

// Unit returns the unit name matching Value
func (r Result) Unit() string {
	if r.Value == 1 {
		return r.UnitSingular
	}
	return r.UnitPlural
}

func (r Result) String() string {
	return fmt.Sprintf("%d %s", r.Value, r.Unit())
}

// Breakdown returns the time from "from" until "to" in the largest non-zero
// whole unit, floored. Anything at or past "to" is zero seconds.
func Breakdown(from, to time.Time) Result {
	remaining := to.Sub(from)
	if remaining < 0 {
		remaining = 0
	}
	// Whole seconds first so every unit floors from the same value.
	seconds := int64(remaining / time.Second)

	for _, u := range Units {
		if v := seconds / int64(u.Size/time.Second); v > 0 {
			return Result{Value: v, UnitSingular: u.Singular, UnitPlural: u.Plural}
		}
	}
	last := Units[len(Units)-1]
	return Result{Value: 0, UnitSingular: last.Singular, UnitPlural: last.Plural}
}
