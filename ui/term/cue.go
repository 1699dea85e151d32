package term

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	cueLength  = 40 * time.Millisecond
)

// Cue plays a short sound when a grip is grabbed.
type Cue interface {
	Play()
}

// NopCue is silent.
type NopCue struct{}

func (NopCue) Play() {}

// ToneCue plays a sine blip through the default audio device.
type ToneCue struct {
	mu   sync.Mutex
	freq float64
	init bool
}

// NewToneCue initialises the speaker. On failure the caller should fall back
// to NopCue.
func NewToneCue(freq float64) (*ToneCue, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &ToneCue{freq: freq, init: true}, nil
}

func (c *ToneCue) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.init {
		return
	}
	sine, err := generators.SineTone(sampleRate, c.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(cueLength), sine))
}

// Close stops playback.
func (c *ToneCue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.init {
		speaker.Clear()
		c.init = false
	}
}
