// Package scene holds the viewer state that does not need a display: the
// steered vector and the transcript being revealed line by line.
package scene

import "foobar/internal/vec"

// Dir is an arrow direction.
type Dir int

const (
	Left Dir = iota
	Right
	Up
	Down
)

// Unit maps a direction to its unit vector. World y points up.
var Unit = [...]vec.Vec2{
	Left:  {X: -1},
	Right: {X: 1},
	Up:    {Y: 1},
	Down:  {Y: -1},
}

// Scene is the steered vector and the transcript reveal queue. It is driven
// once per tick by the viewer.
type Scene struct {
	V, Prev vec.Vec2

	interval int
	pending  []string
	shown    []string
	ticks    int
}

// New returns a scene at v revealing one line every interval ticks. An
// interval below 1 reveals a line every tick.
func New(v vec.Vec2, interval int) *Scene {
	return &Scene{V: v, Prev: v, interval: max(interval, 1)}
}

// Move adds the unit vector of d to V and remembers the old value in Prev.
func (s *Scene) Move(d Dir) {
	s.Prev = s.V
	s.V = s.V.Add(Unit[d])
}

// Push queues lines behind whatever is still pending.
func (s *Scene) Push(lines ...string) {
	s.pending = append(s.pending, lines...)
}

// Restart drops every shown and pending line and restarts the reveal clock.
// Lines pushed afterwards are revealed from a clean transcript.
func (s *Scene) Restart() {
	s.shown = s.shown[:0]
	s.pending = s.pending[:0]
	s.ticks = 0
}

// Tick advances the reveal clock and returns the line revealed on this tick,
// if any.
func (s *Scene) Tick() (string, bool) {
	if len(s.pending) == 0 {
		return "", false
	}
	s.ticks++
	if s.ticks < s.interval {
		return "", false
	}
	s.ticks = 0
	line := s.pending[0]
	s.pending = s.pending[1:]
	s.shown = append(s.shown, line)
	return line, true
}

// Shown returns the revealed lines in order.
func (s *Scene) Shown() []string { return s.shown }

// Pending reports how many lines are still queued.
func (s *Scene) Pending() int { return len(s.pending) }
