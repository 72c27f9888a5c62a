// internal/game/engine.go
//
// Core game engine for a single Hangman round.
// Responsibilities:
//   - Own the target word and the ordered, duplicate-free guessed letters.
//   - Accept letter guesses while the round is in progress.
//   - Derive incorrect/correct letters and the win/loss flags on demand.
//   - Start a new round from the WordSource on Reset.
//
// Notes:
//   - Only the two stored fields exist; everything else is computed by the
//     pure functions at the bottom of this file.
//   - Redundant, post-round and malformed guesses are absorbed as no-ops.
//   - Engine is not safe for concurrent use; Game serializes access.
package game

import "strings"

// Engine is the game state for one round at a time.
type Engine struct {
	src     WordSource
	word    string
	guessed []rune
}

// New constructs an engine and starts the first round with a word from src.
func New(src WordSource) *Engine {
	e := &Engine{src: src}
	e.Reset()
	return e
}

// SubmitGuess appends letter to the guessed letters and reports whether it did.
// It is a no-op when the round is over, the letter was already guessed, or the
// letter is not a lowercase a–z rune.
func (e *Engine) SubmitGuess(letter rune) bool {
	if !isLetter(letter) || containsRune(e.guessed, letter) || e.Status() == RoundOver {
		return false
	}
	e.guessed = append(e.guessed, letter)
	return true
}

// Reset replaces the target word and clears the guessed letters.
func (e *Engine) Reset() {
	e.word = strings.ToLower(e.src.PickWord())
	e.guessed = nil
}

// Answer returns the target word once the round is lost, and "" otherwise.
func (e *Engine) Answer() string {
	if e.IsLoser() {
		return e.word
	}
	return ""
}

// WordLength is the number of letter slots in the target word.
func (e *Engine) WordLength() int { return len([]rune(e.word)) }

// Guessed returns a copy of the guessed letters in guess order.
func (e *Engine) Guessed() []rune { return append([]rune(nil), e.guessed...) }

// Incorrect returns the guessed letters absent from the target word.
func (e *Engine) Incorrect() []rune { return incorrectLetters(e.word, e.guessed) }

// Correct returns the guessed letters present in the target word.
func (e *Engine) Correct() []rune { return correctLetters(e.word, e.guessed) }

// IsLoser reports MaxIncorrect or more wrong guesses.
func (e *Engine) IsLoser() bool { return isLoser(e.word, e.guessed) }

// IsWinner reports that every letter of the word has been guessed.
func (e *Engine) IsWinner() bool { return isWinner(e.word, e.guessed) }

// Status reports InProgress or RoundOver.
func (e *Engine) Status() Status {
	if e.IsWinner() || e.IsLoser() {
		return RoundOver
	}
	return InProgress
}

// Outcome reports playing, won or lost.
func (e *Engine) Outcome() Outcome {
	switch {
	case e.IsLoser():
		return OutcomeLost
	case e.IsWinner():
		return OutcomeWon
	default:
		return OutcomePlaying
	}
}

func incorrectLetters(word string, guessed []rune) []rune {
	var out []rune
	for _, r := range guessed {
		if !strings.ContainsRune(word, r) {
			out = append(out, r)
		}
	}
	return out
}

func correctLetters(word string, guessed []rune) []rune {
	var out []rune
	for _, r := range guessed {
		if strings.ContainsRune(word, r) {
			out = append(out, r)
		}
	}
	return out
}

func isLoser(word string, guessed []rune) bool {
	return len(incorrectLetters(word, guessed)) >= MaxIncorrect
}

// isWinner reports whether every letter of word has been guessed.
func isWinner(word string, guessed []rune) bool {
	for _, r := range word {
		if !containsRune(guessed, r) {
			return false
		}
	}
	return true
}

// isLetter checks for a lowercase ASCII letter.
func isLetter(r rune) bool { return r >= 'a' && r <= 'z' }

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}
