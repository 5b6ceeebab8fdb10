package engine

import (
	"time"

	"github.com/lixenwraith/skyfarer/parameter"
)

// StepSystem advances the host simulation once per tick
// Runs after input and periodic impulses, before contacts are resolved
type StepSystem struct {
	host Host
}

func NewStepSystem(host Host) *StepSystem {
	return &StepSystem{host: host}
}

func (s *StepSystem) Priority() int { return parameter.PriorityPhysics }

func (s *StepSystem) Update(dt time.Duration) {
	s.host.Step(dt)
}
