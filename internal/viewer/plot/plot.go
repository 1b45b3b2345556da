// Package plot maps integer vectors onto the viewer's screen grid.
package plot

import (
	"math"

	"foobar/internal/vec"
)

// Pt is a screen-space point.
type Pt struct{ X, Y float64 }

func (a Pt) Add(b Pt) Pt      { return Pt{a.X + b.X, a.Y + b.Y} }
func (a Pt) Sub(b Pt) Pt      { return Pt{a.X - b.X, a.Y - b.Y} }
func (a Pt) Mul(s float64) Pt { return Pt{a.X * s, a.Y * s} }
func (a Pt) Len() float64     { return math.Hypot(a.X, a.Y) }
func (a Pt) Perp() Pt         { return Pt{-a.Y, a.X} }
func (a Pt) Norm() Pt {
	l := a.Len()
	if l == 0 {
		return Pt{0, 0}
	}
	return Pt{a.X / l, a.Y / l}
}

func (a Pt) F32() (float32, float32) { return float32(a.X), float32(a.Y) }

// Frame is a W x H screen with the world origin at its centre and Cell
// pixels per world unit. World y points up.
type Frame struct {
	W, H int
	Cell int
}

func (f Frame) Center() Pt { return Pt{float64(f.W) / 2, float64(f.H) / 2} }

// ToScreen returns the pixel position of v.
func (f Frame) ToScreen(v vec.Vec2) Pt {
	c := f.Center()
	cell := float64(f.Cell)
	return Pt{c.X + float64(v.X)*cell, c.Y - float64(v.Y)*cell}
}

// ToWorld returns the grid point nearest to p.
func (f Frame) ToWorld(p Pt) vec.Vec2 {
	c := f.Center()
	cell := float64(f.Cell)
	return vec.Vec2{
		X: int(math.Round((p.X - c.X) / cell)),
		Y: int(math.Round((c.Y - p.Y) / cell)),
	}
}

// Span is the inclusive range of world coordinates visible along one axis.
type Span struct{ Min, Max int }

// Visible returns the world spans covered by the frame on x and y.
func (f Frame) Visible() (x, y Span) {
	if f.Cell <= 0 {
		return Span{}, Span{}
	}
	hx := (f.W / 2) / f.Cell
	hy := (f.H / 2) / f.Cell
	return Span{-hx, hx}, Span{-hy, hy}
}

// Contains reports whether v falls inside the visible spans.
func (f Frame) Contains(v vec.Vec2) bool {
	x, y := f.Visible()
	return v.X >= x.Min && v.X <= x.Max && v.Y >= y.Min && v.Y <= y.Max
}

// ArrowHead returns the two barb ends of an arrow from 'from' to 'to'.
// Both are zero-length (equal to 'to') when the arrow has no direction.
func ArrowHead(from, to Pt, size float64) (left, right Pt) {
	d := to.Sub(from).Norm()
	if d == (Pt{}) {
		return to, to
	}
	back := to.Sub(d.Mul(size))
	side := d.Perp().Mul(size / 2)
	return back.Add(side), back.Sub(side)
}
