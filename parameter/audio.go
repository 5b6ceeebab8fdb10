package parameter

import "time"

// Feedback sound pool
const (
	AudioSampleRate    = 44100
	AudioBufferLatency = 100 * time.Millisecond
	ExplosionPoolSize  = 10
	ExplosionDuration  = 600 * time.Millisecond
	ExplosionBaseFreq  = 55.0 // Rumble frequency of variant 0
	ExplosionFreqStep  = 9.0  // Rumble step between variants
	ExplosionAttack    = 5 * time.Millisecond
)
