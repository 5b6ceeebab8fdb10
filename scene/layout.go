package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/skyfarer/parameter"
	"github.com/lixenwraith/skyfarer/spawn"
)

// ErrInvalidLayout is wrapped by every layout validation failure
var ErrInvalidLayout = errors.New("invalid layout")

// Point is a horizontal placement
type Point struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// Wall is a rectangular brick outline
type Wall struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Width  int     `yaml:"width"`
	Length int     `yaml:"length"`
}

// CollectorGroup spawns Count collectors at one point
type CollectorGroup struct {
	X     float64 `yaml:"x"`
	Z     float64 `yaml:"z"`
	Count int     `yaml:"count"`
}

// Layout describes a scene in spawn order: floor, field, walls, bank, collectors, ship
type Layout struct {
	Floor      bool             `yaml:"floor"`
	FieldCount int              `yaml:"fieldCount"`
	Walls      []Wall           `yaml:"walls"`
	Bank       *Point           `yaml:"bank"`
	Collectors []CollectorGroup `yaml:"collectors"`
	Ship       bool             `yaml:"ship"`
}

// Default returns the stock scene
func Default() Layout {
	return Layout{
		Floor:      true,
		FieldCount: parameter.FieldCount,
		Walls: []Wall{{
			X:      parameter.DefaultWallX,
			Z:      parameter.DefaultWallZ,
			Width:  parameter.DefaultWallWidth,
			Length: parameter.DefaultWallLength,
		}},
		Bank: &Point{X: parameter.DefaultBankX, Z: parameter.DefaultBankZ},
		Collectors: []CollectorGroup{{
			X:     parameter.DefaultCollectorX,
			Z:     parameter.DefaultCollectorZ,
			Count: parameter.DefaultCollectorSize,
		}},
		Ship: true,
	}
}

// Parse decodes a YAML layout over the defaults; keys absent from data keep default values
// Unknown keys are rejected
func Parse(data []byte) (Layout, error) {
	l := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return Layout{}, fmt.Errorf("layout parse: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate rejects counts and wall sizes the factory cannot build
func (l Layout) Validate() error {
	if l.FieldCount < 0 {
		return fmt.Errorf("%w: fieldCount must not be negative, got %d", ErrInvalidLayout, l.FieldCount)
	}
	for i, w := range l.Walls {
		if w.Width < 2 || w.Length < 2 {
			return fmt.Errorf("%w: wall %d is %dx%d, need at least 2x2", ErrInvalidLayout, i, w.Width, w.Length)
		}
	}
	for i, g := range l.Collectors {
		if g.Count < 0 {
			return fmt.Errorf("%w: collector group %d count must not be negative, got %d", ErrInvalidLayout, i, g.Count)
		}
	}
	return nil
}

// Load reads and parses a layout file
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layout read: %w", err)
	}
	return Parse(data)
}

// Summary counts what Build spawned
type Summary struct {
	Obstacles  int
	Bricks     int
	Collectors int
	Bank       bool
	Ship       bool
}

// Build validates the layout and spawns it through f
// Stops at the first failure and returns what was spawned so far
func (l Layout) Build(f *spawn.Factory) (Summary, error) {
	var s Summary
	if err := l.Validate(); err != nil {
		return s, err
	}

	if l.Floor {
		if _, err := f.Floor(); err != nil {
			return s, fmt.Errorf("floor: %w", err)
		}
	}

	ids, err := f.PopulateField(l.FieldCount)
	s.Obstacles = len(ids)
	if err != nil {
		return s, err
	}

	for i, w := range l.Walls {
		ids, err := f.BuildWall(w.X, w.Z, w.Width, w.Length)
		s.Bricks += len(ids)
		if err != nil {
			return s, fmt.Errorf("wall %d: %w", i, err)
		}
	}

	if l.Bank != nil {
		if _, err := f.Bank(l.Bank.X, l.Bank.Z); err != nil {
			return s, fmt.Errorf("bank: %w", err)
		}
		s.Bank = true
	}

	for _, g := range l.Collectors {
		for i := 0; i < g.Count; i++ {
			if _, err := f.Collector(g.X, g.Z); err != nil {
				return s, fmt.Errorf("collector: %w", err)
			}
			s.Collectors++
		}
	}

	if l.Ship {
		if _, err := f.Ship(); err != nil {
			return s, fmt.Errorf("ship: %w", err)
		}
		s.Ship = true
	}
	return s, nil
}
