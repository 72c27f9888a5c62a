package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTarget struct {
	guesses []rune
	resets  int
	accept  bool
}

func (f *fakeTarget) SubmitGuess(r rune) bool {
	f.guesses = append(f.guesses, r)
	return f.accept
}

func (f *fakeTarget) Reset() { f.resets++ }

func TestNormalize(t *testing.T) {
	cases := []struct {
		key  string
		want rune
		ok   bool
	}{
		{"a", 'a', true},
		{"z", 'z', true},
		{"Q", 'q', true},
		{"", 0, false},
		{"ab", 0, false},
		{"1", 0, false},
		{" ", 0, false},
		{"Enter", 0, false},
		{"é", 0, false},
		{"[", 0, false},
	}
	for _, tc := range cases {
		got, ok := Normalize(tc.key)
		assert.Equal(t, tc.ok, ok, "Normalize(%q)", tc.key)
		assert.Equal(t, tc.want, got, "Normalize(%q)", tc.key)
	}
}

func TestHandleKey_Letter(t *testing.T) {
	tgt := &fakeTarget{accept: true}
	res := New(tgt).HandleKey("K")

	assert.Equal(t, Result{Handled: true, Action: ActionGuess, Letter: "k", Accepted: true}, res)
	assert.Equal(t, []rune{'k'}, tgt.guesses)
}

func TestHandleKey_RedundantGuessStillHandled(t *testing.T) {
	tgt := &fakeTarget{accept: false}
	res := New(tgt).HandleKey("k")

	assert.True(t, res.Handled)
	assert.False(t, res.Accepted)
}

func TestHandleKey_Enter(t *testing.T) {
	tgt := &fakeTarget{}
	res := New(tgt).HandleKey(EnterKey)

	assert.Equal(t, ActionReset, res.Action)
	assert.True(t, res.Handled)
	assert.Equal(t, 1, tgt.resets)
	assert.Empty(t, tgt.guesses)
}

func TestHandleKey_Ignored(t *testing.T) {
	tgt := &fakeTarget{}
	a := New(tgt)
	for _, k := range []string{"Shift", "1", "ArrowLeft", "enter", ""} {
		res := a.HandleKey(k)
		assert.False(t, res.Handled, k)
		assert.Equal(t, ActionNone, res.Action, k)
	}
	assert.Empty(t, tgt.guesses)
	assert.Zero(t, tgt.resets)
}
