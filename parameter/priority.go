package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityInput    = 10 // Held-key repeat dispatch before anything reads ship state
	PriorityPeriodic = 20 // Collector random walk impulses
	PriorityPhysics  = 50 // Host engine integration, produces contact events
	PriorityContact  = 60 // Drains contacts produced by this tick's step
	PriorityStatus   = 90 // Telemetry after all mutation
)

// PriorityCamera orders the camera system; camera work is action-driven so Update is a no-op
const PriorityCamera = 80
