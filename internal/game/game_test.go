package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/input"
)

func TestGame_GuessPublishesToSubscribers(t *testing.T) {
	g := NewGame(fixed("cat"))
	require.NotEmpty(t, g.ID)

	var got []View
	unsub := g.Subscribe(func(v View) { got = append(got, v) })
	defer unsub()

	_, ok := g.Guess('c')
	assert.True(t, ok)
	_, ok = g.Guess('c')
	assert.False(t, ok)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"c"}, got[0].Guessed)
}

func TestGame_UnsubscribeIsIdempotent(t *testing.T) {
	g := NewGame(fixed("cat"))
	calls := 0
	unsub := g.Subscribe(func(View) { calls++ })
	assert.Equal(t, 1, g.Subscribers())

	unsub()
	unsub()
	assert.Equal(t, 0, g.Subscribers())

	g.Guess('c')
	assert.Equal(t, 0, calls)
}

func TestGame_KeyRoutesThroughAdapter(t *testing.T) {
	g := NewGame(fixed("cat", "dog"))

	res, v := g.Key("C")
	assert.Equal(t, input.ActionGuess, res.Action)
	assert.True(t, res.Handled)
	assert.True(t, res.Accepted)
	assert.Equal(t, []string{"c"}, v.Guessed)

	res, _ = g.Key("Shift")
	assert.False(t, res.Handled)
	assert.Equal(t, input.ActionNone, res.Action)

	res, v = g.Key(input.EnterKey)
	assert.Equal(t, input.ActionReset, res.Action)
	assert.Empty(t, v.Guessed)
	assert.Equal(t, "___", v.Masked())
}

func TestGame_ResetAfterRoundOver(t *testing.T) {
	g := NewGame(fixed("cat", "apple"))
	for _, r := range "cat" {
		g.Guess(r)
	}
	require.Equal(t, OutcomeWon, g.View().Outcome)

	v := g.Reset()
	assert.Equal(t, OutcomePlaying, v.Outcome)
	assert.Equal(t, "_____", v.Masked())
}

func TestGame_IdleSinceAdvances(t *testing.T) {
	g := NewGame(fixed("cat"))
	before := g.IdleSince()
	g.Guess('c')
	assert.False(t, g.IdleSince().Before(before))
}
