// Package audio plays the terminal bell. Audio is best-effort: a machine
// without a sound device still gets the visual bell flash, so every
// failure here is logged and swallowed.
package audio

import (
	"log"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	bellFreq   = 880.0
	bellLength = 50 * time.Millisecond
)

// Bell owns the speaker. Construct once; Ring is cheap.
type Bell struct {
	enabled bool
	ready   bool
}

// NewBell initializes the speaker when enabled. Initialization failure
// leaves the bell silent but the program running.
func NewBell(enabled bool) *Bell {
	b := &Bell{enabled: enabled}
	if !enabled || os.Getenv("PUFFER_NO_AUDIO") != "" {
		b.enabled = false
		return b
	}
	if err := speaker.Init(sampleRate, sampleRate.N(20*time.Millisecond)); err != nil {
		log.Printf("audio: speaker init: %v", err)
		return b
	}
	b.ready = true
	return b
}

// SetEnabled toggles the bell at runtime (config reload). Enabling after
// a failed init stays silent.
func (b *Bell) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// Ring plays a short sine beep.
func (b *Bell) Ring() {
	if !b.enabled || !b.ready {
		return
	}
	tone, err := generators.SineTone(sampleRate, bellFreq)
	if err != nil {
		log.Printf("audio: bell tone: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(bellLength), tone))
}
