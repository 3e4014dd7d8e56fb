package core

// WordList is an ordered, persistent list of words.
// Index 0 is the most recently spawned word; it is also render and scan order.
// Operations never modify the receiver's backing array.
type WordList []Word

// Match describes what a keystroke did to a list.
type Match struct {
	Matched   bool   // A word started with the key
	ID        WordID // The word that was consumed
	Completed bool   // The word ran out of characters and was removed
}

// MoveAll returns a list with every word one step lower.
func (l WordList) MoveAll() WordList {
	if len(l) == 0 {
		return l
	}
	moved := make(WordList, len(l))
	for i, w := range l {
		moved[i] = w.Move()
	}
	return moved
}

// MatchAndConsume consumes one character from the first word whose next
// character is key. Later words are left alone even if they also match.
func (l WordList) MatchAndConsume(key rune) (WordList, Match) {
	for i, w := range l {
		if !w.MatchesPrefix(key) {
			continue
		}
		next, ok := w.ConsumeFirstChar()
		if !ok {
			return l.removeAt(i), Match{Matched: true, ID: w.ID, Completed: true}
		}
		return l.replaceAt(i, next), Match{Matched: true, ID: w.ID}
	}
	return l, Match{}
}

// AnyReachedBottom reports whether some word has hit the threshold.
func (l WordList) AnyReachedBottom(threshold int) bool {
	for _, w := range l {
		if w.ReachedBottom(threshold) {
			return true
		}
	}
	return false
}

// Render folds every word into the scene, front to back.
func (l WordList) Render(scene Scene) Scene {
	for _, w := range l {
		scene = w.Render(scene)
	}
	return scene
}

// Find returns the word with the given ID.
func (l WordList) Find(id WordID) (Word, bool) {
	if i := l.index(id); i >= 0 {
		return l[i], true
	}
	return Word{}, false
}

// Replace returns a list with the word identified by id swapped for w.
// Unknown IDs leave the list as is.
func (l WordList) Replace(id WordID, w Word) WordList {
	if i := l.index(id); i >= 0 {
		return l.replaceAt(i, w)
	}
	return l
}

// Remove returns a list without the word identified by id.
func (l WordList) Remove(id WordID) WordList {
	if i := l.index(id); i >= 0 {
		return l.removeAt(i)
	}
	return l
}

// Prepend returns a list with w in front.
func (l WordList) Prepend(w Word) WordList {
	out := make(WordList, 0, len(l)+1)
	out = append(out, w)
	return append(out, l...)
}

// Texts returns the remaining text of every word, in list order.
func (l WordList) Texts() []string {
	texts := make([]string, len(l))
	for i, w := range l {
		texts[i] = w.Text
	}
	return texts
}

func (l WordList) index(id WordID) int {
	for i, w := range l {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (l WordList) replaceAt(i int, w Word) WordList {
	out := make(WordList, len(l))
	copy(out, l)
	out[i] = w
	return out
}

func (l WordList) removeAt(i int) WordList {
	out := make(WordList, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...)
}
