// internal/input/adapter.go
//
// Input Adapter: turns raw key-press events into engine calls.
//   - A single a–z character (either case) becomes a lowercase guess.
//   - "Enter" resets the round, whatever its state.
//   - Everything else is ignored and the default action is left alone.
//
// Idempotence is the engine's job; the adapter only filters character class.

package input

import "unicode/utf8"

// EnterKey is the key name that starts a new round.
const EnterKey = "Enter"

// Target is the engine surface the adapter drives.
type Target interface {
	SubmitGuess(letter rune) bool
	Reset()
}

// Action names what a key press did.
type Action string

const (
	ActionNone  Action = "none"
	ActionGuess Action = "guess"
	ActionReset Action = "reset"
)

// Result describes one handled key press.
// Handled means the key was bound, so the caller should suppress the
// default browser action.
type Result struct {
	Handled  bool   `json:"handled"`
	Action   Action `json:"action"`
	Letter   string `json:"letter,omitempty"`
	Accepted bool   `json:"accepted"`
}

// Adapter dispatches keys to a Target.
type Adapter struct {
	target Target
}

// New binds an adapter to t.
func New(t Target) *Adapter { return &Adapter{target: t} }

// HandleKey applies one key press.
func (a *Adapter) HandleKey(key string) Result {
	if key == EnterKey {
		a.target.Reset()
		return Result{Handled: true, Action: ActionReset, Accepted: true}
	}
	letter, ok := Normalize(key)
	if !ok {
		return Result{Action: ActionNone}
	}
	accepted := a.target.SubmitGuess(letter)
	return Result{Handled: true, Action: ActionGuess, Letter: string(letter), Accepted: accepted}
}

// Normalize maps a single a–z or A–Z character to its lowercase rune.
func Normalize(key string) (rune, bool) {
	if utf8.RuneCountInString(key) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(key)
	switch {
	case r >= 'a' && r <= 'z':
		return r, true
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A'), true
	}
	return 0, false
}
