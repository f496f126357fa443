package countdown

import (
	"testing"
	"time"
)

func TestBreakdown(t *testing.T) {
	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		offset   time.Duration
		want     Result
		wantText string
	}{
		{"same instant", 0, Result{0, "Second", "Seconds"}, "0 Seconds"},
		{"past target clamps", -48 * time.Hour, Result{0, "Second", "Seconds"}, "0 Seconds"},
		{"sub-second floors to zero", 900 * time.Millisecond, Result{0, "Second", "Seconds"}, "0 Seconds"},
		{"one second", time.Second, Result{1, "Second", "Seconds"}, "1 Second"},
		{"59 seconds", 59 * time.Second, Result{59, "Second", "Seconds"}, "59 Seconds"},
		{"one minute", time.Minute + 30*time.Second, Result{1, "Minute", "Minutes"}, "1 Minute"},
		{"hours", 5*time.Hour + 59*time.Minute, Result{5, "Hour", "Hours"}, "5 Hours"},
		{"days", 6*24*time.Hour + 23*time.Hour, Result{6, "Day", "Days"}, "6 Days"},
		{"one week", 7 * 24 * time.Hour, Result{1, "Week", "Weeks"}, "1 Week"},
		{"weeks", 69 * 24 * time.Hour, Result{9, "Week", "Weeks"}, "9 Weeks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Breakdown(base, base.Add(tt.offset))
			if got != tt.want {
				t.Errorf("Breakdown(+%s) = %+v, want %+v", tt.offset, got, tt.want)
			}
			if got.String() != tt.wantText {
				t.Errorf("String() = %q, want %q", got.String(), tt.wantText)
			}
		})
	}
}

func TestBreakdownUnitsOrdered(t *testing.T) {
	for i := 1; i < len(Units); i++ {
		if Units[i].Size >= Units[i-1].Size {
			t.Errorf("unit %s not smaller than %s", Units[i].Singular, Units[i-1].Singular)
		}
	}
}
