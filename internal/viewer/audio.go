package viewer

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"foobar/internal/viewer/blip"
)

type blipper struct {
	ctx *audio.Context
	pcm []byte
}

func newBlipper(cfg Config) *blipper {
	return &blipper{
		ctx: audio.NewContext(cfg.SampleRate),
		pcm: blip.PCM(cfg.SampleRate, cfg.Blip),
	}
}

// play starts a fresh player per call so blips can overlap. Finished players
// are stopped by ebiten and collected.
func (b *blipper) play() {
	if len(b.pcm) == 0 {
		return
	}
	b.ctx.NewPlayerFromBytes(b.pcm).Play()
}
