package system

import (
	"math"
	"time"

	"github.com/lixenwraith/skyfarer/component"
	"github.com/lixenwraith/skyfarer/core"
	"github.com/lixenwraith/skyfarer/parameter"
	"github.com/lixenwraith/skyfarer/vmath"
)

// CameraRig is the host camera attached to the ship
type CameraRig interface {
	SetPose(t component.Transform)
}

// CameraPose returns the fixed ship-relative camera pose for a view direction
func CameraPose(d core.Direction) component.Transform {
	h, r := parameter.CameraHeight, parameter.CameraDistance
	switch d {
	case core.DirBack:
		return component.Transform{Position: vmath.V3F(0, h, -r), Orientation: vmath.Euler{Yaw: math.Pi}}
	case core.DirRight:
		return component.Transform{Position: vmath.V3F(r, h, 0), Orientation: vmath.Euler{Yaw: math.Pi / 2}}
	case core.DirLeft:
		return component.Transform{Position: vmath.V3F(-r, h, 0), Orientation: vmath.Euler{Yaw: -math.Pi / 2}}
	case core.DirUp:
		return component.Transform{Position: vmath.V3F(0, -r, 0), Orientation: vmath.Euler{Pitch: math.Pi / 2}}
	case core.DirDown:
		return component.Transform{Position: vmath.V3F(0, r, 0), Orientation: vmath.Euler{Pitch: -math.Pi / 2}}
	}
	return component.Transform{Position: vmath.V3F(0, h, r)}
}

// CameraSystem selects one of the six fixed camera poses
type CameraSystem struct {
	rig     CameraRig
	current core.Direction
}

// NewCameraSystem creates the camera selector facing front; rig may be nil
func NewCameraSystem(rig CameraRig) *CameraSystem {
	s := &CameraSystem{rig: rig}
	s.Select(core.DirFront)
	return s
}

// Select moves the rig to the pose for d
func (s *CameraSystem) Select(d core.Direction) {
	s.current = d
	if s.rig != nil {
		s.rig.SetPose(CameraPose(d))
	}
}

// Current returns the selected view direction
func (s *CameraSystem) Current() core.Direction {
	return s.current
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update(time.Duration) {
	// No-op: camera moves via Select
}
