package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/skyfarer/engine"
	"github.com/lixenwraith/skyfarer/parameter"
	"github.com/lixenwraith/skyfarer/status"
	"github.com/lixenwraith/skyfarer/vmath"
)

// StatusSystem publishes per-tick telemetry to the status registry
type StatusSystem struct {
	world *engine.World

	ticks   *atomic.Int64
	live    *atomic.Int64
	speed   *status.Gauge
	heading *status.Gauge

	lastPos vmath.Vec3F
	hasLast bool
}

func NewStatusSystem(world *engine.World, reg *status.Registry) *StatusSystem {
	return &StatusSystem{
		world:   world,
		ticks:   reg.Int(status.MetricTicks),
		live:    reg.Int(status.MetricEntitiesLive),
		speed:   reg.Float(status.MetricShipSpeed),
		heading: reg.Float(status.MetricShipHeading),
	}
}

func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

func (s *StatusSystem) Update(dt time.Duration) {
	s.ticks.Add(1)
	s.live.Store(int64(s.world.Len()))

	id, state := s.world.Ship()
	if state != engine.ShipReady {
		s.hasLast = false
		s.speed.Set(0)
		return
	}
	pose, ok := s.world.Pose(id)
	if !ok {
		return
	}

	// Heading in degrees, 0 facing -z, increasing counter-clockwise
	s.heading.Set(math.Mod(vmath.WrapAngle(pose.Orientation.Yaw)*180/math.Pi+360, 360))

	if s.hasLast && dt > 0 {
		d := vmath.V3FMag(vmath.V3FSub(pose.Position, s.lastPos))
		s.speed.Set(d / dt.Seconds())
	}
	s.lastPos = pose.Position
	s.hasLast = true
}
