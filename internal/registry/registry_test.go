package registry

import (
	"testing"

	"github.com/vovakirdan/tui-ztype/internal/core"
)

type stubGame struct{ id, title string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return g.title }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func register(t *testing.T, id, title string) {
	t.Helper()
	Register(id, func() Game { return stubGame{id: id, title: title} })
	t.Cleanup(func() {
		mu.Lock()
		defer mu.Unlock()
		delete(factories, id)
		delete(titles, id)
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "stub_b", "Stub B")
	register(t, "stub_a", "Stub A")

	if !Exists("stub_a") {
		t.Error("stub_a should exist")
	}
	if Exists("missing") {
		t.Error("missing should not exist")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub B" {
		t.Errorf("Create returned %q", g.Title())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of unknown game should fail")
	}
}

func TestListSorted(t *testing.T) {
	register(t, "stub_z", "Z")
	register(t, "stub_m", "M")

	games := List()
	idx := map[string]int{}
	for i, g := range games {
		idx[g.ID] = i
	}
	if idx["stub_m"] > idx["stub_z"] {
		t.Errorf("List should be sorted by ID: %+v", games)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "stub_dup", "Dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
