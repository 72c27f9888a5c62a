// internal/game/view.go
//
// Presentation model derived from an Engine.
// A View carries everything the Presentation Layer needs to render a round:
// the status banner, the drawing stage, the masked word and the keyboard.
// The target word is only exposed through the masked slots, and only fully
// once the round is lost.

package game

const (
	BannerLost = "You lost :( Refresh to play again"
	BannerWon  = "Winner! Refresh to play again!"
)

// BodyParts are drawn one per incorrect guess, in order.
var BodyParts = [MaxIncorrect]string{"head", "body", "right-arm", "left-arm", "right-leg", "left-leg"}

// Alphabet is the fixed keyboard layout.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Slot is one position of the masked word.
type Slot struct {
	Letter   string `json:"letter"`             // "" while hidden
	Revealed bool   `json:"revealed,omitempty"` // shown only because the round was lost
}

// Key is one keyboard letter and its marking.
type Key struct {
	Letter string   `json:"letter"`
	State  KeyState `json:"state"`
}

// View is a read-only snapshot of a round.
// Status is "in_progress" or "round_over"; Stage runs 0..MaxIncorrect.
type View struct {
	Status    string   `json:"status"`
	Outcome   Outcome  `json:"outcome"`
	Banner    string   `json:"banner"`
	Stage     int      `json:"stage"`
	Parts     []string `json:"parts"`
	Word      []Slot   `json:"word"`
	Guessed   []string `json:"guessed"`
	Incorrect []string `json:"incorrect"`
	Keyboard  []Key    `json:"keyboard"`
	Disabled  bool     `json:"disabled"`
}

// Snapshot builds the View for the engine's current round.
func (e *Engine) Snapshot() View {
	incorrect := e.Incorrect()
	stage := len(incorrect)
	if stage > MaxIncorrect {
		stage = MaxIncorrect
	}
	lost := e.IsLoser()

	v := View{
		Status:    e.Status().String(),
		Outcome:   e.Outcome(),
		Stage:     stage,
		Parts:     append([]string{}, BodyParts[:stage]...),
		Word:      make([]Slot, 0, e.WordLength()),
		Guessed:   letters(e.guessed),
		Incorrect: letters(incorrect),
		Keyboard:  make([]Key, 0, len(Alphabet)),
		Disabled:  e.Status() == RoundOver,
	}
	switch v.Outcome {
	case OutcomeLost:
		v.Banner = BannerLost
	case OutcomeWon:
		v.Banner = BannerWon
	}

	for _, r := range e.word {
		switch {
		case containsRune(e.guessed, r):
			v.Word = append(v.Word, Slot{Letter: string(r)})
		case lost:
			v.Word = append(v.Word, Slot{Letter: string(r), Revealed: true})
		default:
			v.Word = append(v.Word, Slot{})
		}
	}

	for _, r := range Alphabet {
		st := KeyNeutral
		if containsRune(e.guessed, r) {
			st = KeyInactive
			if !containsRune(incorrect, r) {
				st = KeyActive
			}
		}
		v.Keyboard = append(v.Keyboard, Key{Letter: string(r), State: st})
	}
	return v
}

// Masked renders the word slots as text, "_" for hidden positions.
func (v View) Masked() string {
	b := make([]byte, 0, len(v.Word))
	for _, s := range v.Word {
		if s.Letter == "" {
			b = append(b, '_')
			continue
		}
		b = append(b, s.Letter...)
	}
	return string(b)
}

func letters(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}
