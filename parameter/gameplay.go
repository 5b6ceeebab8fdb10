package parameter

import "time"

// Random obstacle field
const (
	FieldCount      = 1000
	FieldHalfExtent = 2500.0 // x,z sampled in [-extent, extent)
	ShapeDimMax     = 100.0  // Primary dimensions in [0, max)
	ShapeHeightMax  = 500.0  // Height in [0, max)
)

// Wall and bank geometry
const (
	BrickSide    = 10.0
	BrickChamfer = 1.0
	BankSideMul  = 2.0 // Bank cube side = BrickSide * mul
	BankChamfer  = 1.0
)

// Collector random walk
const (
	CollectorRadius    = 10.0
	CollectorHeight    = 5.0
	CollectorInterval  = 1 * time.Second
	CollectorMagnitude = 10.0 // Per-axis impulse in [M/2, 3M/2)
)

// Ship body
const (
	ShipSide        = 10.0
	ShipChamfer     = 2.0
	ShipBallRadius  = 3.0
	ShipSpawnHeight = 15.0
	ShipBallOffset  = -10.0 // Ball sits below the box center
)

// Default scene placement
const (
	DefaultWallX         = -100.0
	DefaultWallZ         = -100.0
	DefaultWallWidth     = 20
	DefaultWallLength    = 20
	DefaultBankX         = 0.0
	DefaultBankZ         = -30.0
	DefaultCollectorX    = 30.0
	DefaultCollectorZ    = 30.0
	DefaultCollectorSize = 10
)

// Effect lifetime for radar flashes spawned by obstacle destruction
const EffectLifetime = 400 * time.Millisecond
