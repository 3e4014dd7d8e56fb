package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-ztype/internal/games/ztype/core"
)

func exampleList() (w1, w2 core.Word, list core.WordList) {
	w1 = core.NewWord(1, "test", 100, 100)
	w2 = core.NewWord(2, "abcd", 200, 200)
	return w1, w2, core.WordList{w2, w1}
}

func TestMoveAll(t *testing.T) {
	w1, w2, list := exampleList()

	moved := list.MoveAll()

	assert.Equal(t, core.WordList{w2.Move(), w1.Move()}, moved)
	assert.Equal(t, 200, list[0].Y, "MoveAll must not modify the receiver")
	assert.Empty(t, core.WordList{}.MoveAll())
}

func TestMatchAndConsume(t *testing.T) {
	w1, w2, list := exampleList()

	got, m := list.MatchAndConsume('t')

	expected := core.WordList{w2, {ID: 1, Text: "est", X: 100, Y: 100, State: core.InProgress}}
	assert.Equal(t, expected, got)
	assert.Equal(t, core.Match{Matched: true, ID: w1.ID}, m)
	assert.Equal(t, "test", list[1].Text, "MatchAndConsume must not modify the receiver")
}

func TestMatchAndConsumeOnlyFirstMatch(t *testing.T) {
	list := core.WordList{
		core.NewWord(1, "xyz", 0, 0),
		core.NewWord(2, "cat", 0, 0),
		core.NewWord(3, "cow", 0, 0),
	}

	got, m := list.MatchAndConsume('c')

	assert.Equal(t, []string{"xyz", "at", "cow"}, got.Texts())
	assert.Equal(t, core.WordID(2), m.ID)
	assert.Equal(t, core.Untouched, got[2].State)
}

func TestMatchAndConsumeNoMatch(t *testing.T) {
	_, _, list := exampleList()

	got, m := list.MatchAndConsume('z')

	assert.Equal(t, list, got)
	assert.False(t, m.Matched)
}

func TestMatchAndConsumeCompletion(t *testing.T) {
	list := core.WordList{core.NewWord(7, "a", 0, 0)}

	got, m := list.MatchAndConsume('a')

	assert.Empty(t, got)
	assert.Equal(t, core.Match{Matched: true, ID: 7, Completed: true}, m)
	assert.Len(t, list, 1)
}

func TestAnyReachedBottom(t *testing.T) {
	_, _, list := exampleList()
	assert.False(t, list.AnyReachedBottom(605))
	assert.False(t, core.WordList{}.AnyReachedBottom(605))

	withBottom := list.Prepend(core.NewWord(9, "end", 400, 605))
	assert.True(t, withBottom.AnyReachedBottom(605))
}

func TestListRender(t *testing.T) {
	_, _, list := exampleList()

	scene := list.Render(core.NewScene(800, 600))

	require.Equal(t, 2, scene.Len())
	assert.Equal(t, "abcd", scene.Glyphs[0].Text)
	assert.Equal(t, "test", scene.Glyphs[1].Text)
}

func TestReplaceAndRemove(t *testing.T) {
	w1, w2, list := exampleList()
	updated := core.NewWord(w1.ID, "est", 100, 100)

	assert.Equal(t, core.WordList{w2, updated}, list.Replace(w1.ID, updated))
	assert.Equal(t, core.WordList{w2}, list.Remove(w1.ID))
	assert.Equal(t, list, list.Replace(42, updated), "unknown ID leaves the list as is")
	assert.Equal(t, list, list.Remove(42))
	assert.Equal(t, core.WordList{w2, w1}, list, "receiver must be untouched")
}

func TestReplaceUsesIdentityNotText(t *testing.T) {
	a := core.NewWord(1, "same", 10, 10)
	b := core.NewWord(2, "same", 10, 10)
	list := core.WordList{a, b}

	got := list.Remove(b.ID)

	require.Len(t, got, 1)
	assert.Equal(t, core.WordID(1), got[0].ID)

	found, ok := list.Find(2)
	require.True(t, ok)
	assert.Equal(t, b, found)
	_, ok = list.Find(3)
	assert.False(t, ok)
}
