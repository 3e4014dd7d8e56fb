// Package core contains the pure ZType game logic: falling words, the word
// list and the game state machine. Nothing here touches the terminal, the
// clock or global state; every transition takes a value and returns a new one.
package core

import "unicode/utf8"

// FallStep is how far a word descends per tick, in canvas units.
const FallStep = 1

// WordID identifies a word for its whole lifetime. Zero is never assigned.
type WordID uint64

// WordState marks whether a word has been partially typed.
type WordState int

const (
	Untouched  WordState = iota // Not typed yet
	InProgress                  // At least one character consumed
)

// String returns a human-readable name for the state.
func (s WordState) String() string {
	switch s {
	case Untouched:
		return "untouched"
	case InProgress:
		return "in-progress"
	default:
		return "unknown"
	}
}

// Word is one falling word. Words are values: every method returns a copy.
type Word struct {
	ID    WordID
	Text  string
	X, Y  int // Canvas coordinates of the text centre
	State WordState
}

// NewWord creates an untouched word.
func NewWord(id WordID, text string, x, y int) Word {
	return Word{ID: id, Text: text, X: x, Y: y, State: Untouched}
}

// Move returns the word one step further down.
func (w Word) Move() Word {
	w.Y += FallStep
	return w
}

// MatchesPrefix reports whether key is the first remaining character.
func (w Word) MatchesPrefix(key rune) bool {
	if w.Text == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(w.Text)
	return first == key
}

// ConsumeFirstChar strips the first character and marks the word in progress.
// ok is false when the word had a single character left and is now complete;
// the caller must drop it from the list.
func (w Word) ConsumeFirstChar() (next Word, ok bool) {
	_, size := utf8.DecodeRuneInString(w.Text)
	if size >= len(w.Text) {
		return Word{}, false
	}
	w.Text = w.Text[size:]
	w.State = InProgress
	return w, true
}

// ReachedBottom reports whether the word has hit the bottom threshold.
func (w Word) ReachedBottom(threshold int) bool {
	return w.Y >= threshold
}

// Render places the word into the scene.
func (w Word) Render(scene Scene) Scene {
	kind := GlyphUntouched
	if w.State == InProgress {
		kind = GlyphInProgress
	}
	return scene.Place(Glyph{Text: w.Text, X: w.X, Y: w.Y, Kind: kind})
}
