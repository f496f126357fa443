package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, "0", Number(0))
	assert.Equal(t, "950", Number(950))
	assert.Equal(t, "8,100", Number(8100))
	assert.Equal(t, "1,234,567", Number(1234567))
}

func TestRelative(t *testing.T) {
	now := time.Date(2020, time.February, 3, 12, 0, 0, 0, time.UTC)

	assert.Contains(t, Relative(now.Add(15*24*time.Hour), now), "from now")
	assert.Contains(t, Relative(now.Add(-48*time.Hour), now), "ago")
}

func TestDate(t *testing.T) {
	ts := time.Date(2020, time.March, 10, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "2020-03-10", Date(ts))
}
