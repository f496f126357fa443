package schedule

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func TestNextReset(t *testing.T) {
	tests := []struct {
		name string
		from string
		want string
	}{
		{"Sunday rolls to Tuesday", "2020-01-05T08:00:00Z", "2020-01-07T17:00:00Z"},
		{"Monday rolls to Tuesday", "2020-01-06T23:59:59Z", "2020-01-07T17:00:00Z"},
		{"Tuesday before reset", "2020-01-07T10:00:00Z", "2020-01-07T17:00:00Z"},
		{"Tuesday exactly at reset", "2020-01-07T17:00:00Z", "2020-01-14T17:00:00Z"},
		{"Tuesday after reset", "2020-01-07T17:00:01Z", "2020-01-14T17:00:00Z"},
		{"Wednesday", "2020-01-08T00:00:00Z", "2020-01-14T17:00:00Z"},
		{"Saturday", "2020-01-11T12:00:00Z", "2020-01-14T17:00:00Z"},
		{"Across month", "2020-01-29T18:00:00Z", "2020-02-04T17:00:00Z"},
		{"Non-UTC input", "2020-01-07T18:30:00+02:00", "2020-01-07T17:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextReset(mustParse(t, tt.from))
			want := mustParse(t, tt.want)
			if !got.Equal(want) {
				t.Errorf("NextReset(%s) = %s, want %s", tt.from, got, want)
			}
		})
	}
}

func TestGenerateCheckpointsEmptyRange(t *testing.T) {
	for _, s := range []string{"2020-01-07T17:00:00Z", "2020-01-08T00:00:00Z", "2020-03-10T17:00:00Z"} {
		d := mustParse(t, s)
		if got := GenerateCheckpoints(d, d); len(got) != 0 {
			t.Errorf("GenerateCheckpoints(%s, %s) = %v, want empty", s, s, got)
		}
	}
}

func TestGenerateCheckpointsInverted(t *testing.T) {
	from := mustParse(t, "2020-03-01T00:00:00Z")
	to := mustParse(t, "2020-01-01T00:00:00Z")
	if got := GenerateCheckpoints(from, to); len(got) != 0 {
		t.Errorf("inverted range returned %d checkpoints", len(got))
	}
}

func TestGenerateCheckpointsSeason(t *testing.T) {
	from := mustParse(t, "2020-02-12T09:00:00Z") // Wednesday
	got := GenerateCheckpoints(from, SeasonEnd)

	want := []string{
		"2020-02-18T17:00:00Z",
		"2020-02-25T17:00:00Z",
		"2020-03-03T17:00:00Z",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d checkpoints %v, want %d", len(got), got, len(want))
	}
	for i, w := range want {
		if !got[i].Equal(mustParse(t, w)) {
			t.Errorf("checkpoint %d = %s, want %s", i, got[i], w)
		}
	}
}

func TestGenerateCheckpointsSpacing(t *testing.T) {
	from := mustParse(t, "2019-12-10T17:00:00Z")
	got := GenerateCheckpoints(from, SeasonEnd)
	if len(got) == 0 {
		t.Fatal("expected checkpoints")
	}
	if !got[0].Equal(NextReset(from)) {
		t.Errorf("first checkpoint %s, want %s", got[0], NextReset(from))
	}
	if got[0].Equal(from) {
		t.Error("from must not be yielded as a checkpoint")
	}
	for i := 1; i < len(got); i++ {
		if d := got[i].Sub(got[i-1]); d != ResetPeriod {
			t.Errorf("gap %d = %s, want %s", i, d, ResetPeriod)
		}
	}
	last := got[len(got)-1]
	if !last.Before(SeasonEnd) {
		t.Errorf("last checkpoint %s not before season end", last)
	}
	if last.Add(ResetPeriod).Before(SeasonEnd) {
		t.Errorf("checkpoint missing after %s", last)
	}
}

func TestGenerateCheckpointsDeterministic(t *testing.T) {
	from := mustParse(t, "2020-01-01T00:00:00Z")
	a := GenerateCheckpoints(from, SeasonEnd)
	b := GenerateCheckpoints(from, SeasonEnd)
	if len(a) != len(b) {
		t.Fatalf("length mismatch %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Errorf("checkpoint %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestResetWindow(t *testing.T) {
	start := mustParse(t, "2020-02-18T17:00:00Z")
	s, e := ResetWindow(start)
	if !s.Equal(start) || !e.Equal(mustParse(t, "2020-02-25T17:00:00Z")) {
		t.Errorf("ResetWindow(%s) = (%s, %s)", start, s, e)
	}
}

func FuzzGenerateCheckpoints(f *testing.F) {
	f.Add(int64(1578330000), int64(86400*60))
	f.Add(int64(1583859600), int64(0))
	f.Add(int64(0), int64(604800))

	f.Fuzz(func(t *testing.T, fromUnix, span int64) {
		if span < 0 || span > 86400*7*200 || fromUnix < 0 || fromUnix > 4102444800 {
			return
		}
		from := time.Unix(fromUnix, 0).UTC()
		to := from.Add(time.Duration(span) * time.Second)
		got := GenerateCheckpoints(from, to)

		for i, c := range got {
			if !c.After(from) || !c.Before(to) {
				t.Errorf("checkpoint %s outside (%s, %s)", c, from, to)
			}
			if c.Weekday() != ResetWeekday || c.Hour() != ResetHour || c.Minute() != 0 || c.Second() != 0 {
				t.Errorf("checkpoint %s not on anchor", c)
			}
			if i > 0 && c.Sub(got[i-1]) != ResetPeriod {
				t.Errorf("gap at %d = %s", i, c.Sub(got[i-1]))
			}
		}
	})
}
