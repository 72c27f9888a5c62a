// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - Status: the two engine states (in progress / round over).
//   - Outcome: display-only split of a finished round (won / lost).
//   - KeyState: per-letter keyboard marking (active/inactive/neutral).
//   - WordSource: the capability that supplies target words.

package game

const (
	// MaxIncorrect is the number of wrong guesses that loses a round.
	MaxIncorrect = 6

	// DrawingStages is the number of stick-figure stages, indexed 0..MaxIncorrect.
	DrawingStages = MaxIncorrect + 1
)

// Status is the engine state. Winner and loser share RoundOver:
// both simply freeze further guesses.
type Status int

const (
	InProgress Status = iota
	RoundOver
)

func (s Status) String() string {
	if s == RoundOver {
		return "round_over"
	}
	return "in_progress"
}

// Outcome distinguishes a finished round for display text only.
type Outcome string

const (
	OutcomePlaying Outcome = "playing"
	OutcomeWon     Outcome = "won"
	OutcomeLost    Outcome = "lost"
)

// KeyState marks a keyboard letter.
//   - "active":   guessed and present in the word.
//   - "inactive": guessed and absent from the word.
//   - "neutral":  not guessed yet.
type KeyState string

const (
	KeyActive   KeyState = "active"
	KeyInactive KeyState = "inactive"
	KeyNeutral  KeyState = "neutral"
)

// WordSource supplies a lowercase target word for each new round.
type WordSource interface {
	PickWord() string
}

// WordSourceFunc adapts a plain function to WordSource.
type WordSourceFunc func() string

// PickWord calls f.
func (f WordSourceFunc) PickWord() string { return f() }
