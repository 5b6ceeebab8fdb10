package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfarer/engine"
	"github.com/lixenwraith/skyfarer/input"
	"github.com/lixenwraith/skyfarer/physics"
)

// ControlSystem turns dispatched actions into ship impulses, torques and camera moves
// Every ship operation is a no-op until a ship is spawned
type ControlSystem struct {
	world  *engine.World
	camera *CameraSystem
	cfg    physics.ThrustConfig
	log    zerolog.Logger
}

// NewControlSystem creates the action handler; camera may be nil
func NewControlSystem(world *engine.World, camera *CameraSystem, cfg physics.ThrustConfig, logger zerolog.Logger) *ControlSystem {
	return &ControlSystem{
		world:  world,
		camera: camera,
		cfg:    cfg,
		log:    logger.With().Str("component", "control").Logger(),
	}
}

// HandleAction implements input.ActionHandler
func (s *ControlSystem) HandleAction(a input.Action) {
	s.Apply(a)
}

// Apply executes one action and reports whether it reached a collaborator
func (s *ControlSystem) Apply(a input.Action) bool {
	dir, ok := a.Direction()
	if !ok {
		return false
	}

	switch a.Kind() {
	case input.KindThrust:
		// Thrust follows the simulated orientation, not a commanded one
		o, ok := s.world.ShipOrientation()
		if !ok {
			s.log.Debug().Str("action", a.String()).Msg("ship not ready")
			return false
		}
		impulse := physics.Thrust(o, dir, s.cfg)
		if impulse.IsZero() {
			return false
		}
		return s.world.ApplyShipImpulse(impulse) == nil

	case input.KindTurn:
		torque, ok := physics.Turn(dir, s.cfg)
		if !ok {
			return false
		}
		if err := s.world.ApplyShipTorque(torque); err != nil {
			s.log.Debug().Err(err).Str("action", a.String()).Msg("turn dropped")
			return false
		}
		return true

	case input.KindCamera:
		if s.camera == nil {
			return false
		}
		s.camera.Select(dir)
		return true
	}
	return false
}
