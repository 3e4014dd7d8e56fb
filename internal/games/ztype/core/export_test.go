package core

// WithFocus forces the focus, bypassing the invariant that it names a live word.
func (s State) WithFocus(id WordID) State {
	s.focus = id
	return s
}
