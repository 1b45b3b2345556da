package vec

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrOverflow is returned by CheckedAdd when a component does not fit in an int.
var ErrOverflow = errors.New("integer overflow")

// Vec2 is a 2D integer vector. The zero value is the origin.
type Vec2 struct{ X, Y int }

// Add returns the component-wise sum. Overflow wraps like any Go int.
func (a Vec2) Add(b Vec2) Vec2  { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2  { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(k int) Vec2 { return Vec2{a.X * k, a.Y * k} }
func (a Vec2) Dot(b Vec2) int   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Neg() Vec2        { return Vec2{-a.X, -a.Y} }
func (a Vec2) IsZero() bool     { return a == Vec2{} }

// Perp rotates a by +90 degrees.
func (a Vec2) Perp() Vec2 { return Vec2{-a.Y, a.X} }

func (a Vec2) String() string {
	return "(" + strconv.Itoa(a.X) + ", " + strconv.Itoa(a.Y) + ")"
}

// Add is the free-function form of Vec2.Add.
func Add(a, b Vec2) Vec2 { return a.Add(b) }

// Sum folds vs with Add. Sum() is the zero vector.
func Sum(vs ...Vec2) Vec2 {
	var s Vec2
	for _, v := range vs {
		s = s.Add(v)
	}
	return s
}

// CheckedAdd is Add that fails instead of wrapping.
func CheckedAdd(a, b Vec2) (Vec2, error) {
	x, ok := addInt(a.X, b.X)
	if !ok {
		return Vec2{}, errors.Wrapf(ErrOverflow, "x: %d + %d", a.X, b.X)
	}
	y, ok := addInt(a.Y, b.Y)
	if !ok {
		return Vec2{}, errors.Wrapf(ErrOverflow, "y: %d + %d", a.Y, b.Y)
	}
	return Vec2{x, y}, nil
}

// addInt reports whether a+b fits: signed overflow happened iff both operands
// share a sign that the result does not.
func addInt(a, b int) (int, bool) {
	s := a + b
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return s, false
	}
	return s, true
}

// Parse reads "x,y", optionally wrapped in parentheses, with optional spaces.
func Parse(s string) (Vec2, error) {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")") {
		t = t[1 : len(t)-1]
	}
	xs, ys, ok := strings.Cut(t, ",")
	if !ok {
		return Vec2{}, errors.Errorf("parse vector %q: want x,y", s)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, bits.UintSize)
	if err != nil {
		return Vec2{}, errors.Wrapf(err, "parse vector %q: x", s)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, bits.UintSize)
	if err != nil {
		return Vec2{}, errors.Wrapf(err, "parse vector %q: y", s)
	}
	return Vec2{int(x), int(y)}, nil
}
