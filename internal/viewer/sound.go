package viewer

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type blip struct {
	ready bool
}

func newBlip() (*blip, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &blip{}, err
	}
	return &blip{ready: true}, nil
}

func (b *blip) play() {
	if b == nil || !b.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(30*time.Millisecond), sine))
}
