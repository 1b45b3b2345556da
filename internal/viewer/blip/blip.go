// Package blip synthesises the short tone the viewer plays per revealed line.
package blip

import (
	"bytes"
	"math"
)

// BytesPerFrame is the size of one 16-bit stereo frame.
const BytesPerFrame = 4

// Shape describes one blip. Frequencies glide from FreqHz*GlideFrom to
// FreqHz*GlideTo along a log curve.
type Shape struct {
	Seconds float64
	FreqHz  float64
	Amp     float64 // peak before the harmonic and pan are applied

	Attack float64 // cosine fade-in, seconds
	Decay  float64 // e-folds over the whole blip; 6.9 ends near -60dB

	GlideFrom, GlideTo float64
	Harmonic           float64 // level of the second harmonic

	PanL, PanR float64
	PhaseR     float64 // right-channel phase lead, radians
}

// DefaultShape is a soft 60ms, 880Hz percussive tick.
func DefaultShape() Shape {
	return Shape{
		Seconds:   0.06,
		FreqHz:    880,
		Amp:       0.22,
		Attack:    0.005,
		Decay:     6.9,
		GlideFrom: 1.03,
		GlideTo:   0.92,
		Harmonic:  0.18,
		PanL:      0.55,
		PanR:      0.45,
		PhaseR:    0.015,
	}
}

// frames returns the number of frames s lasts at sampleRate.
func (s Shape) frames(sampleRate int) int {
	return int(float64(sampleRate) * s.Seconds)
}

// envelope is the amplitude of frame i of n.
func (s Shape) envelope(i, n, attackN int) float64 {
	env := s.Amp * math.Exp(-s.Decay*float64(i)/float64(n-1))
	if i < attackN {
		env *= 0.5 - 0.5*math.Cos(math.Pi*float64(i)/float64(attackN))
	}
	return env
}

// PCM renders s as 16-bit little-endian stereo PCM. Blips shorter than two
// frames render as nil.
func PCM(sampleRate int, s Shape) []byte {
	n := s.frames(sampleRate)
	if n <= 1 {
		return nil
	}
	var b bytes.Buffer
	b.Grow(n * BytesPerFrame)

	// the attack never takes more than a fifth of the blip
	attackN := int(math.Min(s.Attack, s.Seconds*0.2) * float64(sampleRate))
	f0, f1 := s.FreqHz*s.GlideFrom, s.FreqHz*s.GlideTo
	step := 2 * math.Pi / float64(sampleRate)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		env := s.envelope(i, n, attackN)
		phase += step * f0 * math.Pow(f1/f0, t)

		h := math.Sin(2*phase) * s.Harmonic
		writeSample(&b, (math.Sin(phase)+h)*env*s.PanL)
		writeSample(&b, (math.Sin(phase+s.PhaseR)+h*s.Harmonic)*env*s.PanR)
	}
	return b.Bytes()
}

func writeSample(b *bytes.Buffer, s float64) {
	v := int16(max(-1, min(1, s)) * 32767)
	b.WriteByte(byte(v))
	b.WriteByte(byte(v >> 8))
}
