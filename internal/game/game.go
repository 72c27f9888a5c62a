// internal/game/game.go
//
// A hosted round: an Engine plus the bookkeeping a server needs around it.
//   - ID for lookup in the store.
//   - A mutex so key presses from several requests apply one at a time,
//     in arrival order.
//   - Subscribers that receive the new View after every state change.
//   - Last activity time for idle eviction.

package game

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/internal/input"
)

// Game wraps an Engine for concurrent callers.
type Game struct {
	ID string

	mu      sync.Mutex
	eng     *Engine
	adapter *input.Adapter
	subs    map[int]func(View)
	nextSub int
	touched time.Time
}

// NewGame starts a hosted round with a word from src.
func NewGame(src WordSource) *Game {
	eng := New(src)
	return &Game{
		ID:      uuid.NewString(),
		eng:     eng,
		adapter: input.New(eng),
		subs:    make(map[int]func(View)),
		touched: time.Now(),
	}
}

// View returns the current snapshot.
func (g *Game) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.eng.Snapshot()
}

// Guess submits one letter. accepted is false for redundant or post-round guesses.
func (g *Game) Guess(letter rune) (v View, accepted bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touched = time.Now()
	accepted = g.eng.SubmitGuess(letter)
	v = g.eng.Snapshot()
	if accepted {
		g.publish(v)
	}
	return v, accepted
}

// Reset starts a new round.
func (g *Game) Reset() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touched = time.Now()
	g.eng.Reset()
	v := g.eng.Snapshot()
	g.publish(v)
	return v
}

// Key routes a raw key press through the input adapter.
func (g *Game) Key(key string) (input.Result, View) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touched = time.Now()
	res := g.adapter.HandleKey(key)
	v := g.eng.Snapshot()
	if res.Accepted {
		g.publish(v)
	}
	return res, v
}

// Subscribe registers fn for state changes until the returned func is called.
// fn runs with the game locked and must not block or call back into g.
// Unsubscribing more than once is harmless.
func (g *Game) Subscribe(fn func(View)) (unsubscribe func()) {
	g.mu.Lock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = fn
	g.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.subs, id)
			g.mu.Unlock()
		})
	}
}

// Subscribers reports how many subscriptions are attached.
func (g *Game) Subscribers() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subs)
}

// IdleSince returns the time of the last key press, guess or reset.
func (g *Game) IdleSince() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.touched
}

func (g *Game) publish(v View) {
	for _, fn := range g.subs {
		fn(v)
	}
}
