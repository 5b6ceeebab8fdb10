package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfarer/vmath"
)

const testRate = beep.SampleRate(8000)

type countingOutput struct {
	streams []beep.Streamer
}

func (c *countingOutput) Play(s beep.Streamer) { c.streams = append(c.streams, s) }

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorRangeAndLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, testRate, 3)
		samples := make([][2]float64, 1000)
		n, _ := osc.Stream(samples)
		if n != 800 {
			t.Errorf("wave %d streamed %d samples, want 800", wave, n)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Fatalf("wave %d sample %d out of range: %f", wave, i, samples[i][0])
			}
		}
		if osc.Err() != nil {
			t.Errorf("unexpected error: %v", osc.Err())
		}
	}
}

func TestExplosionSoundFinite(t *testing.T) {
	n := drain(CreateExplosionSound(0, testRate))
	if want := testRate.N(600 * time.Millisecond); n != want {
		t.Errorf("explosion length = %d samples, want %d", n, want)
	}
}

func TestPoolEmptySkips(t *testing.T) {
	out := &countingOutput{}
	p := NewExplosionPool(0, testRate, 0, out, vmath.NewFastRand(1), zerolog.Nop())
	if p.Play() {
		t.Error("empty pool reported playback")
	}
	if len(out.streams) != 0 || p.Last() != -1 {
		t.Error("empty pool produced output")
	}
}

func TestPoolUniformSelection(t *testing.T) {
	out := &countingOutput{}
	p := NewExplosionPool(10, testRate, 0, out, vmath.NewFastRand(9), zerolog.Nop())
	if p.Size() != 10 {
		t.Fatalf("size = %d", p.Size())
	}

	counts := make([]int, 10)
	for i := 0; i < 5000; i++ {
		if !p.Play() {
			t.Fatal("play failed")
		}
		counts[p.Last()]++
	}
	for i, c := range counts {
		if c < 350 || c > 650 {
			t.Errorf("variant %d played %d times, expected ~500", i, c)
		}
	}
	if len(out.streams) != 5000 {
		t.Errorf("output received %d streams", len(out.streams))
	}
}

func TestPoolSingleVariant(t *testing.T) {
	out := &countingOutput{}
	p := NewExplosionPool(1, testRate, -1, out, vmath.NewFastRand(1), zerolog.Nop())
	for i := 0; i < 3; i++ {
		if !p.Play() || p.Last() != 0 {
			t.Fatalf("single-variant pool play %d failed", i)
		}
	}
	if n := drain(out.streams[0]); n == 0 {
		t.Error("played stream is empty")
	}
}

func TestPoolMute(t *testing.T) {
	out := &countingOutput{}
	p := NewExplosionPool(2, testRate, 0, out, vmath.NewFastRand(1), zerolog.Nop())
	if !p.ToggleMute() {
		t.Fatal("first toggle should mute")
	}
	if p.Play() {
		t.Error("muted pool played")
	}
	p.ToggleMute()
	if !p.Play() {
		t.Error("unmuted pool should play")
	}
}

func TestMixerOutput(t *testing.T) {
	m := &MixerOutput{}
	p := NewExplosionPool(1, testRate, 0, m, vmath.NewFastRand(1), zerolog.Nop())
	p.Play()
	if m.Mixer.Len() != 1 {
		t.Errorf("mixer streamers = %d", m.Mixer.Len())
	}
}
