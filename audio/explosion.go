package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/skyfarer/parameter"
)

// CreateExplosionSound synthesizes explosion variant i: a noise burst over a low saw rumble
// Each variant shifts the rumble pitch and reseeds the noise
func CreateExplosionSound(variant int, rate beep.SampleRate) beep.Streamer {
	dur := parameter.ExplosionDuration
	freq := parameter.ExplosionBaseFreq + float64(variant)*parameter.ExplosionFreqStep

	noise := NewOscillator(0, dur, WaveNoise, rate, uint64(variant)+1)
	rumble := NewOscillator(freq, dur, WaveSaw, rate, 0)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.4),
	)
	return NewDecay(mixed, dur, parameter.ExplosionAttack, rate)
}
