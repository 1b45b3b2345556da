package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"foobar/internal/cli"
	"foobar/internal/greet"
	"foobar/internal/vec"
	"foobar/internal/viewer"
)

func openWindow(v vec.Vec2, e *greet.Emitter, lines []string, log logrus.FieldLogger) error {
	g := viewer.New(viewer.DefaultConfig(), v, e, log)
	g.Replay(lines)
	return viewer.Run(g)
}

func main() {
	cmd := cli.NewCommand(os.Stdout, os.Stderr, openWindow)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
