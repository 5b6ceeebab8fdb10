package system

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/skyfarer/core"
	"github.com/lixenwraith/skyfarer/engine"
	"github.com/lixenwraith/skyfarer/event"
	"github.com/lixenwraith/skyfarer/parameter"
	"github.com/lixenwraith/skyfarer/status"
	"github.com/lixenwraith/skyfarer/vmath"
)

// SoundPlayer plays one sound from a fixed pool
// Returns false when nothing was played
type SoundPlayer interface {
	Play() bool
}

// EffectKind selects a one-shot visual effect
type EffectKind uint8

const (
	EffectExplosion EffectKind = iota
)

// EffectSpawner places one-shot visual effects in the scene
type EffectSpawner interface {
	SpawnEffect(kind EffectKind, pos vmath.Vec3F)
}

// Feedback groups the optional feedback sinks; nil members are skipped
type Feedback struct {
	Sound   SoundPlayer
	Effects EffectSpawner
}

// Outcome is the result of resolving one contact
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeObstacleDestroyed
	OutcomeCredit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeObstacleDestroyed:
		return "destroyed"
	case OutcomeCredit:
		return "credit"
	}
	return "none"
}

const (
	pairShipShape      = core.CategoryShip | core.CategoryShape
	pairBankCollector  = core.CategoryBank | core.CategoryCollector
	contactMeterScope  = "github.com/lixenwraith/skyfarer/system"
	contactCounterName = "skyfarer.contacts"
)

// ContactSystem drains the contact queue once per tick and applies per-pair policy
// Pairs are deduplicated within a tick; obstacle removal is idempotent across ticks
type ContactSystem struct {
	world    *engine.World
	queue    *event.ContactQueue
	score    *status.Score
	feedback Feedback
	log      zerolog.Logger

	seen map[core.Pair]struct{}

	// Cached metric pointers
	destroyed *atomic.Int64
	resolved  *atomic.Int64
	duplicate *atomic.Int64
	counter   metric.Int64Counter
}

// NewContactSystem creates the resolver; counters are registered on reg and the global otel meter
func NewContactSystem(world *engine.World, queue *event.ContactQueue, reg *status.Registry, fb Feedback, logger zerolog.Logger) *ContactSystem {
	s := &ContactSystem{
		world:     world,
		queue:     queue,
		score:     reg.Score,
		feedback:  fb,
		log:       logger.With().Str("component", "contact").Logger(),
		seen:      make(map[core.Pair]struct{}),
		destroyed: reg.Int(status.MetricObstaclesDestroyed),
		resolved:  reg.Int(status.MetricContactsResolved),
		duplicate: reg.Int(status.MetricContactsDuplicate),
	}

	counter, err := otel.Meter(contactMeterScope).Int64Counter(contactCounterName,
		metric.WithDescription("Resolved contact-begin events by outcome"))
	if err != nil {
		s.log.Warn().Err(err).Msg("contact counter unavailable")
	}
	s.counter = counter
	return s
}

func (s *ContactSystem) Priority() int {
	return parameter.PriorityContact
}

// Update resolves every contact produced since the previous tick in arrival order
func (s *ContactSystem) Update(time.Duration) {
	events := s.queue.Drain()
	if len(events) == 0 {
		return
	}
	clear(s.seen)

	for _, ev := range events {
		p := ev.Pair()
		if _, dup := s.seen[p]; dup {
			s.duplicate.Add(1)
			s.log.Debug().Uint64("a", uint64(p.A)).Uint64("b", uint64(p.B)).Msg("duplicate contact dropped")
			continue
		}
		s.seen[p] = struct{}{}
		s.Resolve(p)
	}
}

// Resolve applies the policy for one unordered pair
// Pairs with a missing participant resolve to OutcomeNone
func (s *ContactSystem) Resolve(p core.Pair) Outcome {
	ea, okA := s.world.Entity(p.A)
	eb, okB := s.world.Entity(p.B)
	if !okA || !okB {
		s.log.Debug().Uint64("a", uint64(p.A)).Uint64("b", uint64(p.B)).Msg("contact with removed entity")
		return OutcomeNone
	}

	var out Outcome
	switch ea.Category() | eb.Category() {
	case pairShipShape:
		obstacle := p.A
		if eb.Category() == core.CategoryShape {
			obstacle = p.B
		}
		if s.destroyObstacle(obstacle) {
			out = OutcomeObstacleDestroyed
		}
	case pairBankCollector:
		total := s.score.Credit()
		s.log.Debug().Int64("score", total).Msg("credit")
		out = OutcomeCredit
	}

	if out != OutcomeNone {
		s.resolved.Add(1)
		if s.counter != nil {
			s.counter.Add(context.Background(), 1, metric.WithAttributes(attribute.String("outcome", out.String())))
		}
	}
	return out
}

// destroyObstacle plays feedback at the obstacle's pre-removal position and removes it
func (s *ContactSystem) destroyObstacle(id core.Entity) bool {
	pose, ok := s.world.Pose(id)
	if !ok {
		return false
	}
	if !s.world.Remove(id) {
		return false
	}

	if s.feedback.Sound != nil {
		s.feedback.Sound.Play()
	}
	if s.feedback.Effects != nil {
		s.feedback.Effects.SpawnEffect(EffectExplosion, pose.Position)
	}
	s.destroyed.Add(1)
	s.log.Debug().Uint64("entity", uint64(id)).Msg("obstacle destroyed")
	return true
}
