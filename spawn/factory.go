package spawn

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfarer/component"
	"github.com/lixenwraith/skyfarer/core"
	"github.com/lixenwraith/skyfarer/engine"
	"github.com/lixenwraith/skyfarer/parameter"
	"github.com/lixenwraith/skyfarer/vmath"
)

// ErrWallTooSmall is returned when a wall has fewer than two bricks per side
var ErrWallTooSmall = errors.New("wall width and length must be at least 2")

// ErrNegativeCount is returned when asked to spawn fewer than zero entities
var ErrNegativeCount = errors.New("entity count must not be negative")

// Config holds the randomization bounds and entity sizes
type Config struct {
	FieldHalfExtent    float64
	ShapeDimMax        float64
	ShapeHeightMax     float64
	BrickSide          float64
	CollectorInterval  time.Duration
	CollectorMagnitude float64
}

// DefaultConfig returns the stock scene sizes
func DefaultConfig() Config {
	return Config{
		FieldHalfExtent:    parameter.FieldHalfExtent,
		ShapeDimMax:        parameter.ShapeDimMax,
		ShapeHeightMax:     parameter.ShapeHeightMax,
		BrickSide:          parameter.BrickSide,
		CollectorInterval:  parameter.CollectorInterval,
		CollectorMagnitude: parameter.CollectorMagnitude,
	}
}

// Factory builds categorized entities and registers them with the injected world
type Factory struct {
	world *engine.World
	rng   *vmath.FastRand
	cfg   Config
	log   zerolog.Logger
}

// NewFactory creates a factory; the rng seeds every randomized attribute
func NewFactory(world *engine.World, rng *vmath.FastRand, cfg Config, logger zerolog.Logger) *Factory {
	return &Factory{
		world: world,
		rng:   rng,
		cfg:   cfg,
		log:   logger.With().Str("component", "spawn").Logger(),
	}
}

// RandomShape draws a palette geometry with randomized size and a full saturation hue
// All size parameters are drawn regardless of kind so the stream is kind-independent
func (f *Factory) RandomShape() component.Geometry {
	d := f.cfg.ShapeDimMax
	p0 := f.rng.Range(0, d)
	p1 := f.rng.Range(0, d)
	p2 := f.rng.Range(0, d)
	p3 := f.rng.Range(0, d)
	h := f.rng.Range(0, f.cfg.ShapeHeightMax)

	kind := component.ShapePalette[f.rng.Intn(len(component.ShapePalette))]
	color := core.RGBFromHue(f.rng.Float64())

	g := component.Geometry{Kind: kind, Color: color}
	switch kind {
	case component.GeometrySphere:
		g.Radius = p0
	case component.GeometryPlane:
		g.Width, g.Height = p0, h
	case component.GeometryBox:
		g.Width, g.Height, g.Length, g.Chamfer = p0, h, p2, p3
	case component.GeometryPyramid:
		g.Width, g.Height, g.Length = p0, h, p2
	case component.GeometryCylinder:
		g.Radius, g.Height = p0, h
	case component.GeometryCone:
		g.Radius, g.Radius2, g.Height = p0, p1, p2
	case component.GeometryTorus:
		g.Radius, g.Radius2 = p0, p1
	case component.GeometryTube:
		g.Radius, g.Radius2, g.Height = p0, p1, p2
	case component.GeometryCapsule:
		g.Radius, g.Height = p0, h/2
	}
	return g
}

// PopulateField spawns n random obstacles uniformly over the square field at y=0
func (f *Factory) PopulateField(n int) ([]core.Entity, error) {
	if n < 0 {
		return nil, fmt.Errorf("field of %d: %w", n, ErrNegativeCount)
	}
	ext := f.cfg.FieldHalfExtent
	ids := make([]core.Entity, 0, n)
	for i := 0; i < n; i++ {
		g := f.RandomShape()
		x := f.rng.Range(-ext, ext)
		z := f.rng.Range(-ext, ext)
		id, err := f.world.Spawn(&component.Entity{
			Name:      "shape",
			Geometry:  g,
			Transform: component.At(x, 0, z),
			Body:      component.NewBody(component.BodyDynamic, core.CategoryShape),
		})
		if err != nil {
			return ids, fmt.Errorf("field obstacle %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	f.log.Info().Int("count", n).Msg("field populated")
	return ids, nil
}

// BuildWall places bricks along the four edges of a width x length rectangle at origin (x,z)
// Row z is red, row z+length-1 blue, column x green, column x+width-1 white
func (f *Factory) BuildWall(x, z float64, width, length int) ([]core.Entity, error) {
	if width < 2 || length < 2 {
		return nil, fmt.Errorf("wall %dx%d: %w", width, length, ErrWallTooSmall)
	}
	side := f.cfg.BrickSide
	ids := make([]core.Entity, 0, 2*width+2*(length-2))

	far := side * float64(length-1)
	for i := 0; i < width; i++ {
		dx := side * float64(i)
		for _, b := range []struct {
			z     float64
			color component.Color
		}{
			{z, core.RGBRed},
			{z + far, core.RGBBlue},
		} {
			id, err := f.brick(x+dx, b.z, b.color)
			if err != nil {
				return ids, err
			}
			ids = append(ids, id)
		}
	}

	right := side * float64(width-1)
	for j := 1; j <= length-2; j++ {
		dz := side * float64(j)
		for _, b := range []struct {
			x     float64
			color component.Color
		}{
			{x, core.RGBGreen},
			{x + right, core.RGBWhite},
		} {
			id, err := f.brick(b.x, z+dz, b.color)
			if err != nil {
				return ids, err
			}
			ids = append(ids, id)
		}
	}

	f.log.Debug().Int("bricks", len(ids)).Float64("x", x).Float64("z", z).Msg("wall built")
	return ids, nil
}

func (f *Factory) brick(x, z float64, color component.Color) (core.Entity, error) {
	side := f.cfg.BrickSide
	body := component.NewBody(component.BodyDynamic, core.CategoryShape)
	body.Mass = parameter.BrickMass
	body.Friction = parameter.BrickFriction
	return f.world.Spawn(&component.Entity{
		Name: "brick",
		Geometry: component.Geometry{
			Kind:    component.GeometryBox,
			Width:   side,
			Height:  side,
			Length:  side,
			Chamfer: parameter.BrickChamfer,
			Color:   color,
		},
		Transform: component.At(x, 0, z),
		Body:      body,
	})
}

// Bank spawns the static credit target
func (f *Factory) Bank(x, z float64) (core.Entity, error) {
	side := f.cfg.BrickSide * parameter.BankSideMul
	return f.world.Spawn(&component.Entity{
		Name: "bank",
		Geometry: component.Geometry{
			Kind:    component.GeometryBox,
			Width:   side,
			Height:  side,
			Length:  side,
			Chamfer: parameter.BankChamfer,
			Color:   core.RGBYellow,
		},
		Transform: component.At(x, 0, z),
		Body:      component.NewBody(component.BodyStatic, core.CategoryBank),
	})
}

// Collector spawns a random-walking collector
func (f *Factory) Collector(x, z float64) (core.Entity, error) {
	return f.world.Spawn(&component.Entity{
		Name: "collector",
		Geometry: component.Geometry{
			Kind:   component.GeometryCylinder,
			Radius: parameter.CollectorRadius,
			Height: parameter.CollectorHeight,
			Color:  core.RGBGreen,
		},
		Transform: component.At(x, 0, z),
		Body:      component.NewBody(component.BodyDynamic, core.CategoryCollector),
		Periodic: &component.Periodic{
			Behavior:  component.BehaviorRandomWalk,
			Interval:  f.cfg.CollectorInterval,
			Magnitude: f.cfg.CollectorMagnitude,
		},
	})
}

// Ship spawns the player ship, replacing any existing one
// Rotation is restricted to the vertical axis
func (f *Factory) Ship() (core.Entity, error) {
	body := component.NewBody(component.BodyDynamic, core.CategoryShip)
	body.AngularDamping = parameter.ShipAngularDamping
	body.AngularFactor = vmath.V3F(0, 1, 0)

	return f.world.Spawn(&component.Entity{
		Name: "ship",
		Geometry: component.Geometry{
			Kind:    component.GeometryBox,
			Width:   parameter.ShipSide,
			Height:  parameter.ShipSide,
			Length:  parameter.ShipSide,
			Chamfer: parameter.ShipChamfer,
			Color:   core.RGBWhite,
		},
		Transform: component.At(0, parameter.ShipSpawnHeight, 0),
		Body:      body,
		Attachments: []component.Attachment{{
			Geometry: component.Geometry{Kind: component.GeometrySphere, Radius: parameter.ShipBallRadius},
			Offset:   component.At(0, parameter.ShipBallOffset, 0),
		}},
	})
}

// Floor spawns the infinite ground plane; it reports no contacts
func (f *Factory) Floor() (core.Entity, error) {
	return f.world.Spawn(&component.Entity{
		Name:     "floor",
		Geometry: component.Geometry{Kind: component.GeometryFloor, Color: core.RGBBlue},
		Body:     component.NewBody(component.BodyKinematic, core.CategoryFloor),
	})
}
