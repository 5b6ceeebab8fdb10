package render

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyfarer/component"
	"github.com/lixenwraith/skyfarer/core"
	"github.com/lixenwraith/skyfarer/engine"
	"github.com/lixenwraith/skyfarer/parameter"
	"github.com/lixenwraith/skyfarer/status"
	"github.com/lixenwraith/skyfarer/system"
	"github.com/lixenwraith/skyfarer/vmath"
)

// headingArrows indexed by yaw in 45 degree steps, counter-clockwise from -z
var headingArrows = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

type flash struct {
	pos       vmath.Vec3F
	remaining time.Duration
}

// Radar draws a top-down view centered on the ship plus a status line
// Implements system.EffectSpawner and system.CameraRig
type Radar struct {
	mu     sync.Mutex
	screen tcell.Screen
	world  *engine.World
	reg    *status.Registry
	scale  float64

	flashes []flash
	view    string
	muted   bool
}

// NewRadar creates a radar; scale is world units per column
func NewRadar(screen tcell.Screen, world *engine.World, reg *status.Registry, scale float64) *Radar {
	if scale <= 0 {
		scale = parameter.RadarScale
	}
	return &Radar{
		screen: screen,
		world:  world,
		reg:    reg,
		scale:  scale,
		view:   core.DirFront.String(),
	}
}

// SpawnEffect flashes a marker at pos for a short time
func (r *Radar) SpawnEffect(kind system.EffectKind, pos vmath.Vec3F) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flashes = append(r.flashes, flash{pos: pos, remaining: parameter.EffectLifetime})
}

// SetPose records the camera view for the status line
func (r *Radar) SetPose(t component.Transform) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view = viewName(t)
}

// SetMuted updates the mute indicator
func (r *Radar) SetMuted(m bool) {
	r.mu.Lock()
	r.muted = m
	r.mu.Unlock()
}

// Effects returns the number of live flashes
func (r *Radar) Effects() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.flashes)
}

// Update ages flashes and drops expired ones
func (r *Radar) Update(dt time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	live := r.flashes[:0]
	for _, f := range r.flashes {
		f.remaining -= dt
		if f.remaining > 0 {
			live = append(live, f)
		}
	}
	r.flashes = live
}

// Draw renders one frame and shows it
func (r *Radar) Draw() {
	r.screen.Clear()
	width, height := r.screen.Size()
	base := tcell.StyleDefault.Background(RgbBackground)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, base)
		}
	}

	var center vmath.Vec3F
	var yaw float64
	shipID, state := r.world.Ship()
	if state == engine.ShipReady {
		if pose, ok := r.world.Pose(shipID); ok {
			center = pose.Position
			yaw = pose.Orientation.Yaw
		}
	}

	top := parameter.RadarStatusRows
	cx, cy := width/2, top+(height-top)/2
	project := func(p vmath.Vec3F) (int, int, bool) {
		col := cx + int(math.Round((p.X-center.X)/r.scale))
		row := cy + int(math.Round((p.Z-center.Z)/(r.scale*parameter.RadarRowAspect)))
		return col, row, col >= 0 && col < width && row >= top && row < height
	}

	r.world.Each(func(e *component.Entity) {
		if e.ID == shipID {
			return
		}
		glyph, ok := glyphFor(e)
		if !ok {
			return
		}
		pose, ok := r.world.Pose(e.ID)
		if !ok {
			return
		}
		if x, y, in := project(pose.Position); in {
			r.screen.SetContent(x, y, glyph, nil, base.Foreground(RGBToTcell(e.Geometry.Color)))
		}
	})

	r.mu.Lock()
	for _, f := range r.flashes {
		if x, y, in := project(f.pos); in {
			life := float64(f.remaining) / float64(parameter.EffectLifetime)
			r.screen.SetContent(x, y, '✶', nil, base.Foreground(flashColor(life)).Bold(true))
		}
	}
	view, muted := r.view, r.muted
	r.mu.Unlock()

	if state == engine.ShipReady {
		r.screen.SetContent(cx, cy, headingArrow(yaw), nil, base.Foreground(tcell.ColorWhite).Bold(true))
	}

	r.drawStatus(width, state, view, muted)
	r.screen.Show()
}

func (r *Radar) drawStatus(width int, state engine.ShipState, view string, muted bool) {
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusDim)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	text := fmt.Sprintf(" credits %d  destroyed %d  speed %.1f  heading %03.0f  view %s  ship %s",
		r.reg.Score.Value(),
		r.reg.Int(status.MetricObstaclesDestroyed).Load(),
		r.reg.Float(status.MetricShipSpeed).Get(),
		r.reg.Float(status.MetricShipHeading).Get(),
		view,
		state,
	)
	if muted {
		text += "  muted"
	}
	x := 0
	for _, ch := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, 0, ch, nil, style)
		x++
	}
}

// glyphFor picks the radar symbol for an entity; floor and placeholders are not drawn
func glyphFor(e *component.Entity) (rune, bool) {
	switch e.Category() {
	case core.CategoryBank:
		return '$', true
	case core.CategoryCollector:
		return 'o', true
	case core.CategoryShape:
		if e.Geometry.Kind == component.GeometryEmpty {
			return 0, false
		}
		if e.Name == "brick" {
			return '#', true
		}
		return '*', true
	}
	return 0, false
}

func headingArrow(yaw float64) rune {
	idx := int(math.Round(vmath.WrapAngle(yaw)/(math.Pi/4))) % 8
	if idx < 0 {
		idx += 8
	}
	return headingArrows[idx]
}

// viewName maps a camera pose back to its direction label
func viewName(t component.Transform) string {
	for _, d := range core.Directions {
		if system.CameraPose(d) == t {
			return d.String()
		}
	}
	return "free"
}
