package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfarer/vmath"
)

// Output accepts finished streamers for playback
type Output interface {
	Play(s beep.Streamer)
}

// Pool holds pre-rendered sound variants and plays one uniformly at random
// A pool of size 0 skips playback
type Pool struct {
	mu      sync.Mutex
	buffers []*beep.Buffer
	out     Output
	rng     *vmath.FastRand
	volume  float64
	muted   bool
	last    int
	log     zerolog.Logger
}

// NewExplosionPool renders size explosion variants at rate
// volume is a beep log2 gain step; 0 leaves the level unchanged
func NewExplosionPool(size int, rate beep.SampleRate, volume float64, out Output, rng *vmath.FastRand, logger zerolog.Logger) *Pool {
	p := &Pool{
		out:    out,
		rng:    rng,
		volume: volume,
		last:   -1,
		log:    logger.With().Str("component", "audio").Logger(),
	}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	for i := 0; i < size; i++ {
		buf := beep.NewBuffer(format)
		buf.Append(CreateExplosionSound(i, rate))
		p.buffers = append(p.buffers, buf)
	}
	p.log.Debug().Int("variants", size).Msg("explosion pool rendered")
	return p
}

// Play starts one randomly chosen variant
// Returns false when the pool is empty, muted or has no output
func (p *Pool) Play() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.buffers) == 0 || p.muted || p.out == nil {
		return false
	}
	idx := p.rng.Intn(len(p.buffers))
	p.last = idx

	buf := p.buffers[idx]
	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if p.volume != 0 {
		s = &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}
	}
	p.out.Play(s)
	return true
}

// Size returns the number of variants
func (p *Pool) Size() int {
	return len(p.buffers)
}

// Last returns the index of the most recently played variant, -1 if none
func (p *Pool) Last() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// ToggleMute flips the mute state and returns the new state
func (p *Pool) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}
