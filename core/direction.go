package core

// Direction is a body-relative heading used by thrust and camera presets
type Direction uint8

const (
	DirFront Direction = iota
	DirBack
	DirUp
	DirDown
	DirLeft
	DirRight
	directionCount
)

// Directions lists every relative direction in declaration order
var Directions = [directionCount]Direction{DirFront, DirBack, DirUp, DirDown, DirLeft, DirRight}

func (d Direction) String() string {
	switch d {
	case DirFront:
		return "front"
	case DirBack:
		return "back"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}
