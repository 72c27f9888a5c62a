package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
)

func newGame() *game.Game {
	return game.NewGame(game.WordSourceFunc(func() string { return "cat" }))
}

func TestMemory_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g := newGame()

	require.NoError(t, st.Save(ctx, g))
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)

	require.NoError(t, st.Delete(ctx, g.ID))
	_, err = st.Get(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, st.Delete(ctx, g.ID))
}

func TestMemory_SweepSkipsSubscribed(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	idle, watched := newGame(), newGame()
	require.NoError(t, st.Save(ctx, idle))
	require.NoError(t, st.Save(ctx, watched))

	unsub := watched.Subscribe(func(game.View) {})
	defer unsub()

	removed := st.Sweep(time.Now().Add(time.Minute))
	assert.Equal(t, 1, removed)

	_, err := st.Get(ctx, idle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Get(ctx, watched.ID)
	assert.NoError(t, err)
}

func TestMemory_SweepKeepsRecent(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.Save(context.Background(), newGame()))
	assert.Zero(t, st.Sweep(time.Now().Add(-time.Hour)))
	assert.Equal(t, 1, st.Len())
}

func TestRunJanitor(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.Save(context.Background(), newGame()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	removed := make(chan int, 1)
	go RunJanitor(ctx, st, 10*time.Millisecond, -time.Hour, func(n int) {
		select {
		case removed <- n:
		default:
		}
	})

	select {
	case n := <-removed:
		assert.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not sweep")
	}
	assert.Zero(t, st.Len())
}
