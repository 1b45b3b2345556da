// Package cli builds the foobar command tree.
package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"foobar/internal/greet"
	"foobar/internal/vec"
)

// WindowFunc opens an interactive view of v. lines holds what was already
// printed; e keeps printing while the window is open.
type WindowFunc func(v vec.Vec2, e *greet.Emitter, lines []string, log logrus.FieldLogger) error

// RootOptions holds the flags shared by every command and the root's own.
type RootOptions struct {
	Out    io.Writer
	ErrOut io.Writer

	X, Y     int
	Window   bool
	LogLevel string

	OpenWindow WindowFunc

	log *logrus.Logger
}

// NewCommand returns the root command. A nil openWindow makes --window an
// error.
func NewCommand(out, errOut io.Writer, openWindow WindowFunc) *cobra.Command {
	o := &RootOptions{Out: out, ErrOut: errOut, OpenWindow: openWindow}

	cmd := &cobra.Command{
		Use:   "foobar",
		Short: "Print a vector, then foo and bar",
		Long: "Prints a banner and the coordinates of the vector given by --x and --y,\n" +
			"then runs foo and bar.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.Complete()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.Flags().IntVar(&o.X, "x", 0, "x coordinate of the vector")
	cmd.Flags().IntVar(&o.Y, "y", 0, "y coordinate of the vector")
	cmd.Flags().BoolVar(&o.Window, "window", false, "open an interactive window after printing")
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "warn", "diagnostic log level, written to stderr")

	cmd.AddCommand(
		newEmitCommand(o, "foo", "Print foo", (*greet.Emitter).Foo),
		newEmitCommand(o, "bar", "Print bar", (*greet.Emitter).Bar),
		newAddCommand(o),
	)
	return cmd
}

// Complete sets up logging from --log-level. It runs before every command.
func (o *RootOptions) Complete() error {
	lvl, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return errors.Wrap(err, "--log-level")
	}
	o.log = logrus.New()
	o.log.SetOutput(o.ErrOut)
	o.log.SetLevel(lvl)
	return nil
}

// Validate rejects --window when no window opener was supplied.
func (o *RootOptions) Validate() error {
	if o.Window && o.OpenWindow == nil {
		return errors.New("--window is not supported by this build")
	}
	return nil
}

// Run prints the FooBar report for (--x, --y), then opens the window if asked.
func (o *RootOptions) Run() error {
	v := vec.Vec2{X: o.X, Y: o.Y}
	e := o.emitter()
	var tr greet.Transcript
	e.OnLine(tr.Record)

	o.log.WithField("v", v).Debug("foobar")
	if err := e.FooBar(v); err != nil {
		return err
	}
	if !o.Window {
		return nil
	}
	return o.OpenWindow(v, e, tr.Lines(), o.log)
}

func (o *RootOptions) emitter() *greet.Emitter {
	return greet.NewEmitter(o.Out, o.log)
}

func newEmitCommand(o *RootOptions, name, short string, emit func(*greet.Emitter) error) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(o.emitter())
		},
	}
}
