package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfarer/component"
	"github.com/lixenwraith/skyfarer/engine"
	"github.com/lixenwraith/skyfarer/event"
	"github.com/lixenwraith/skyfarer/sandbox"
	"github.com/lixenwraith/skyfarer/spawn"
	"github.com/lixenwraith/skyfarer/vmath"
)

func newFactory() (*spawn.Factory, *engine.World) {
	host := sandbox.New(event.NewContactQueue(), sandbox.DefaultConfig(), zerolog.Nop())
	w := engine.NewWorld(host, zerolog.Nop())
	return spawn.NewFactory(w, vmath.NewFastRand(3), spawn.DefaultConfig(), zerolog.Nop()), w
}

func TestDefaultLayoutBuild(t *testing.T) {
	f, w := newFactory()
	s, err := Default().Build(f)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Obstacles != 1000 || s.Bricks != 76 || s.Collectors != 10 || !s.Bank || !s.Ship {
		t.Errorf("summary = %+v", s)
	}
	// floor + field + bricks + bank + collectors + ship
	if want := 1 + 1000 + 76 + 1 + 10 + 1; w.Len() != want {
		t.Errorf("world has %d entities, want %d", w.Len(), want)
	}
	if _, state := w.Ship(); state != engine.ShipReady {
		t.Error("ship not ready after build")
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	l, err := Parse([]byte(`
fieldCount: 5
walls:
  - {x: 0, z: 0, width: 3, length: 4}
collectors: []
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if l.FieldCount != 5 || len(l.Walls) != 1 || l.Walls[0].Length != 4 {
		t.Errorf("layout = %+v", l)
	}
	if len(l.Collectors) != 0 {
		t.Errorf("collectors = %+v", l.Collectors)
	}
	if l.Bank == nil || l.Bank.Z != -30 || !l.Ship || !l.Floor {
		t.Errorf("defaults lost: %+v", l)
	}

	f, _ := newFactory()
	s, err := l.Build(f)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Bricks != 2*3+2*2 || s.Obstacles != 5 {
		t.Errorf("summary = %+v", s)
	}
}

func TestParseEmptyAndUnknown(t *testing.T) {
	l, err := Parse(nil)
	if err != nil || l.FieldCount != 1000 {
		t.Errorf("empty layout = %+v, %v", l, err)
	}
	if _, err := Parse([]byte("warp: 9\n")); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestBuildRejectsSmallWall(t *testing.T) {
	l := Default()
	l.FieldCount = 0
	l.Walls = []Wall{{Width: 1, Length: 5}}
	f, _ := newFactory()
	if _, err := l.Build(f); err == nil {
		t.Error("expected wall error")
	}
}

func TestParseRejectsInvalidCounts(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative field", "fieldCount: -1\n"},
		{"negative wall width", "walls:\n  - {x: 0, z: 0, width: -3, length: 4}\n"},
		{"thin wall", "walls:\n  - {x: 0, z: 0, width: 1, length: 4}\n"},
		{"negative collectors", "collectors:\n  - {x: 0, z: 0, count: -2}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("Parse error = %v, want ErrInvalidLayout", err)
			}
		})
	}
}

func TestBuildNegativeFieldCount(t *testing.T) {
	l := Default()
	l.FieldCount = -1
	f, w := newFactory()
	s, err := l.Build(f)
	if !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("Build error = %v, want ErrInvalidLayout", err)
	}
	if s != (Summary{}) || w.Len() != 0 {
		t.Errorf("spawned before failing: %+v, world %d", s, w.Len())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("ship: false\n"), 0644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path)
	if err != nil || l.Ship {
		t.Errorf("layout = %+v, %v", l, err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	model := `
parts:
  - kind: box
    width: 10
    height: 10
    length: 10
  - kind: sphere
    radius: 3
    offset: [0, -10, 0]
`
	if err := os.WriteFile(filepath.Join(dir, "ship.yaml"), []byte(model), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("parts:\n  - kind: blob\n"), 0644); err != nil {
		t.Fatal(err)
	}

	loader := FileLoader{Root: dir}
	parts, err := loader.LoadModel("ship.yaml")
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if len(parts) != 2 || parts[1].Geometry.Kind != component.GeometrySphere || parts[1].Offset.Position.Y != -10 {
		t.Errorf("parts = %+v", parts)
	}

	if _, err := loader.LoadModel("bad.yaml"); err == nil {
		t.Error("invalid kind accepted")
	}

	f, _ := newFactory()
	if e := f.Model("missing.yaml", loader); e.Geometry.Kind != component.GeometryEmpty || len(e.Attachments) != 0 {
		t.Errorf("missing model should yield placeholder, got %+v", e)
	}
	if e := f.Model("ship.yaml", loader); len(e.Attachments) != 2 {
		t.Errorf("model attachments = %d", len(e.Attachments))
	}
}
