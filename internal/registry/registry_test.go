package registry

import (
	"testing"

	"github.com/vovakirdan/rgbsweeper/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                              { return g.id }
func (g *stubGame) Title() string                           { return "Stub " + g.id }
func (g *stubGame) Reset(cfg core.RuntimeConfig)            {}
func (g *stubGame) Step(in core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(dst *core.Screen)                 {}
func (g *stubGame) State() core.GameState                   { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return &stubGame{id: "test_b"} })
	Register("test_a", func() Game { return &stubGame{id: "test_a"} })

	if !Exists("test_a") || Exists("test_missing") {
		t.Error("Exists() does not reflect registrations")
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("Create returned %q", g.ID())
	}

	// Each Create call returns a fresh instance.
	g2, _ := Create("test_a")
	if g == g2 {
		t.Error("Create should return a new instance each time")
	}

	if Title("test_b") != "Stub test_b" {
		t.Errorf("Title() = %q", Title("test_b"))
	}
	if Title("test_missing") != "test_missing" {
		t.Error("Title() should fall back to the ID")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create should fail for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })
}
