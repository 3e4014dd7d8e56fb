package core

import (
	"fmt"
	"math/rand/v2"
)

// Params holds the tunables of a game. All sizes are canvas units.
type Params struct {
	CanvasWidth     int
	CanvasHeight    int
	BottomThreshold int    // A word at or below this y ends the game
	WordLength      int    // Characters per generated word
	SpawnInterval   int    // Ticks between spawns
	InitialWords    int    // Words on the canvas at start
	SpawnMargin     int    // Spawn x is drawn from [0, CanvasWidth-SpawnMargin)
	Alphabet        string // Characters used for generated words
}

// DefaultParams returns the classic 800x600 setup.
func DefaultParams() Params {
	return Params{
		CanvasWidth:     800,
		CanvasHeight:    600,
		BottomThreshold: 605,
		WordLength:      6,
		SpawnInterval:   20,
		InitialWords:    3,
		SpawnMargin:     100,
		Alphabet:        "abcdefghijklmnopqrstuvwxyz",
	}
}

// normalized replaces values that would make generation impossible.
func (p Params) normalized() Params {
	d := DefaultParams()
	if p.CanvasWidth <= 0 {
		p.CanvasWidth = d.CanvasWidth
	}
	if p.CanvasHeight <= 0 {
		p.CanvasHeight = d.CanvasHeight
	}
	if p.WordLength <= 0 {
		p.WordLength = d.WordLength
	}
	if p.InitialWords < 0 {
		p.InitialWords = 0
	}
	if p.SpawnMargin < 0 {
		p.SpawnMargin = 0
	}
	if p.Alphabet == "" {
		p.Alphabet = d.Alphabet
	}
	return p
}

// spawnRange is the number of distinct spawn x positions.
func (p Params) spawnRange() int {
	return max(p.CanvasWidth-p.SpawnMargin, 1)
}

// State is the whole game at one instant. It is a value: OnTick and OnKey
// return a new State and leave the receiver untouched, including the position
// of its random generator.
type State struct {
	params Params
	words  WordList
	pcg    rand.PCG // Held by value so copies advance independently
	tick   uint64
	focus  WordID // Zero means no focus
	nextID WordID
	score  int
	ended  bool
}

// New starts a game with InitialWords random words at the top of the canvas.
func New(p Params, seed int64) State {
	s := State{
		params: p.normalized(),
		pcg:    newPCG(seed),
		nextID: 1,
	}
	words := make(WordList, 0, s.params.InitialWords)
	for range s.params.InitialWords {
		words = append(words, s.spawn())
	}
	s.words = words
	return s.checkEnd()
}

// Initialize starts a game with the default parameters.
func Initialize(seed int64) State {
	return New(DefaultParams(), seed)
}

// WithWords starts a game from an explicit word list instead of random words.
// IDs already present in words are kept; zero IDs are assigned.
func WithWords(p Params, seed int64, words WordList) State {
	s := State{params: p.normalized(), pcg: newPCG(seed), nextID: 1}
	for _, w := range words {
		if w.ID >= s.nextID {
			s.nextID = w.ID + 1
		}
	}
	list := make(WordList, len(words))
	for i, w := range words {
		if w.ID == 0 {
			w.ID = s.nextID
			s.nextID++
		}
		list[i] = w
	}
	s.words = list
	return s.checkEnd()
}

func newPCG(seed int64) rand.PCG {
	return *rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
}

// spawn generates a fresh word at y=0 and advances the generator.
// Text is drawn before x.
func (s *State) spawn() Word {
	rng := rand.New(&s.pcg)
	alphabet := []rune(s.params.Alphabet)
	text := make([]rune, s.params.WordLength)
	for i := range text {
		text[i] = alphabet[rng.IntN(len(alphabet))]
	}
	x := rng.IntN(s.params.spawnRange())

	w := NewWord(s.nextID, string(text), x, 0)
	s.nextID++
	return w
}

// OnTick moves every word down and spawns a new one every SpawnInterval ticks.
func (s State) OnTick() State {
	if s.ended {
		return s
	}
	next := s
	next.words = s.words.MoveAll()
	next.tick++
	if next.params.SpawnInterval > 0 && next.tick%uint64(next.params.SpawnInterval) == 0 {
		next.words = next.words.Prepend(next.spawn())
	}
	return next.checkEnd()
}

// OnKey applies one keystroke.
//
// With a focused word, only that word can advance; a key that does not match
// its next character is ignored. Without focus, the first word in list order
// whose next character matches is consumed and becomes the focus. Completing
// a word scores a point and clears the focus.
func (s State) OnKey(key rune) State {
	if s.ended {
		return s
	}

	if s.focus != 0 {
		w, ok := s.words.Find(s.focus)
		if ok {
			if !w.MatchesPrefix(key) {
				return s
			}
			next := s
			nw, alive := w.ConsumeFirstChar()
			if alive {
				next.words = s.words.Replace(w.ID, nw)
			} else {
				next.words = s.words.Remove(w.ID)
				next.focus = 0
				next.score++
			}
			return next.checkEnd()
		}
		// Focus points at a word that no longer exists. Drop it and treat
		// the key as unfocused input.
		s.focus = 0
	}

	words, m := s.words.MatchAndConsume(key)
	if !m.Matched {
		return s
	}
	next := s
	next.words = words
	if m.Completed {
		next.score++
	} else {
		next.focus = m.ID
	}
	return next.checkEnd()
}

// checkEnd marks the state ended once any word reaches the threshold.
func (s State) checkEnd() State {
	if s.words.AnyReachedBottom(s.params.BottomThreshold) {
		s.ended = true
	}
	return s
}

// IsEnded reports whether the game is over.
func (s State) IsEnded() bool {
	return s.ended
}

// DanglingFocus reports whether the focus refers to a word that is not in
// the list. OnKey recovers from this, but it means an invariant was broken.
func (s State) DanglingFocus() bool {
	if s.focus == 0 {
		return false
	}
	_, ok := s.words.Find(s.focus)
	return !ok
}

// Focus returns the focused word, if any.
func (s State) Focus() (Word, bool) {
	if s.focus == 0 {
		return Word{}, false
	}
	return s.words.Find(s.focus)
}

// Words returns the current word list. Callers must not modify it.
func (s State) Words() WordList {
	return s.words
}

// Tick returns the number of ticks since the game started.
func (s State) Tick() uint64 {
	return s.tick
}

// Score returns the number of completed words.
func (s State) Score() int {
	return s.score
}

// Params returns the parameters the game runs with.
func (s State) Params() Params {
	return s.params
}

// Render produces the draw-list for the current state: every word while
// running, the game over banner once ended.
func (s State) Render() Scene {
	if s.ended {
		return s.finalScene()
	}
	return s.words.Render(NewScene(s.params.CanvasWidth, s.params.CanvasHeight))
}

// finalScene is the terminal scene. It depends only on canvas size and score.
func (s State) finalScene() Scene {
	w, h := s.params.CanvasWidth, s.params.CanvasHeight
	lineGap := max(h/20, 1)
	return NewScene(w, h).
		Place(Glyph{Text: "Game Over!", X: w / 2, Y: h / 2, Kind: GlyphBanner}).
		Place(Glyph{Text: fmt.Sprintf("Words typed: %d", s.score), X: w / 2, Y: h/2 + lineGap, Kind: GlyphBanner})
}
