// Package greet writes the fixed foo/bar lines and the FooBar report to a
// console stream.
package greet

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"foobar/internal/vec"
)

const (
	LineFoo    = "foo"
	LineBar    = "bar"
	LineBanner = "calling foo & bar..."
)

// CoordLine formats the coordinate report for v.
func CoordLine(v vec.Vec2) string {
	return fmt.Sprintf("v.x = %d, v.y = %d", v.X, v.Y)
}

// Emitter writes lines to w, one Write per line. It is not safe for
// concurrent use.
type Emitter struct {
	w         io.Writer
	log       logrus.FieldLogger
	observers []func(string)
}

// NewEmitter returns an emitter writing to w. A nil logger discards.
func NewEmitter(w io.Writer, log logrus.FieldLogger) *Emitter {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Emitter{w: w, log: log}
}

// OnLine registers fn to be called with every line after it was written.
func (e *Emitter) OnLine(fn func(string)) {
	e.observers = append(e.observers, fn)
}

func (e *Emitter) emit(line string) error {
	if _, err := io.WriteString(e.w, line+"\n"); err != nil {
		e.log.WithError(err).WithField("line", line).Error("emit failed")
		return errors.Wrapf(err, "emit %q", line)
	}
	e.log.WithField("line", line).Debug("emitted")
	for _, fn := range e.observers {
		fn(line)
	}
	return nil
}

// Foo writes the line "foo".
func (e *Emitter) Foo() error { return e.emit(LineFoo) }

// Bar writes the line "bar".
func (e *Emitter) Bar() error { return e.emit(LineBar) }

// FooBar writes the banner and the coordinates of v, then runs Foo and Bar.
// The first failing write stops the sequence.
func (e *Emitter) FooBar(v vec.Vec2) error {
	if err := e.emit(LineBanner); err != nil {
		return err
	}
	if err := e.emit(CoordLine(v)); err != nil {
		return err
	}
	if err := e.Foo(); err != nil {
		return err
	}
	return e.Bar()
}

// stdout is resolved per call so a redirected os.Stdout is honoured.
func stdout() *Emitter { return NewEmitter(os.Stdout, nil) }

// Foo writes "foo" to stdout.
func Foo() error { return stdout().Foo() }

// Bar writes "bar" to stdout.
func Bar() error { return stdout().Bar() }

// FooBar runs Emitter.FooBar against stdout.
func FooBar(v vec.Vec2) error { return stdout().FooBar(v) }
