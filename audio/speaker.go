package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays streamers on the system audio device through a shared mixer
type Speaker struct {
	mixer *beep.Mixer
}

// NewSpeaker initializes the audio device
// Callers treat an error as "run silent", not as fatal
func NewSpeaker(rate beep.SampleRate, latency time.Duration) (*Speaker, error) {
	if err := speaker.Init(rate, rate.N(latency)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play adds s to the mixer
func (s *Speaker) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// MixerOutput collects streamers into a mixer without a device
// The owner pulls samples from Mixer directly
type MixerOutput struct {
	Mixer beep.Mixer
}

func (m *MixerOutput) Play(st beep.Streamer) {
	m.Mixer.Add(st)
}
