package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey_UTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-01", DateKey(ts))
}

func TestWordIndex_Deterministic(t *testing.T) {
	d := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	a := WordIndex(d, "salt", 100)
	b := WordIndex(d.Add(6*time.Hour), "salt", 100)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 100)
	assert.Equal(t, 0, WordIndex(d, "salt", 0))
}

func TestSource_SameWordAllDay(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 30, 0, 0, time.UTC)
	src := Source{
		Words: []string{"cat", "dog", "owl", "fox", "bee"},
		Salt:  "s",
		Now:   func() time.Time { return now },
	}
	first := src.PickWord()
	assert.Contains(t, src.Words, first)

	now = now.Add(20 * time.Hour)
	assert.Equal(t, first, src.PickWord())
}

func TestSource_Empty(t *testing.T) {
	assert.Equal(t, "", Source{}.PickWord())
}
