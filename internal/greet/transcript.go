package greet

// Transcript records emitted lines. Attach it with Emitter.OnLine(t.Record).
type Transcript struct {
	lines []string
}

// Record appends line. Its signature fits Emitter.OnLine.
func (t *Transcript) Record(line string) { t.lines = append(t.lines, line) }

// Lines returns a copy of the recorded lines.
func (t *Transcript) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Len reports how many lines were recorded.
func (t *Transcript) Len() int { return len(t.lines) }

// Reset forgets every recorded line.
func (t *Transcript) Reset() { t.lines = t.lines[:0] }
