package parameter

// Camera rig offsets relative to the ship
const (
	CameraHeight   = 20.0
	CameraDistance = 50.0
)
