// Package viewer shows a vector on an integer grid and replays the FooBar
// transcript in an ebiten window.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"foobar/internal/greet"
	"foobar/internal/vec"
	"foobar/internal/viewer/blip"
	"foobar/internal/viewer/plot"
	"foobar/internal/viewer/scene"
)

// Config sizes the window and tunes the transcript reveal and its blips.
type Config struct {
	Width, Height int
	Cell          int // pixels per world unit
	LineInterval  int // ticks between revealed transcript lines
	SampleRate    int
	Blip          blip.Shape
	Mute          bool
}

// DefaultConfig returns a 960x640 window with 40px cells.
func DefaultConfig() Config {
	return Config{
		Width:        960,
		Height:       640,
		Cell:         40,
		LineInterval: 20,
		SampleRate:   48000,
		Blip:         blip.DefaultShape(),
	}
}

var (
	colBackground = color.RGBA{0x0D, 0x0D, 0x10, 0xFF}
	colGrid       = color.RGBA{0x22, 0x22, 0x2A, 0xFF}
	colAxis       = color.RGBA{0x66, 0x66, 0xFF, 0xFF}
	colVec        = color.RGBA{0xFF, 0xEE, 0xAA, 0xFF}
	colPrev       = color.RGBA{0x55, 0x50, 0x40, 0xFF}
	colText       = color.RGBA{0xDD, 0xDD, 0xDD, 0xFF}
)

// arrowKeys is checked in order, so simultaneous presses always apply the
// same way.
var arrowKeys = []struct {
	key ebiten.Key
	dir scene.Dir
}{
	{ebiten.KeyArrowLeft, scene.Left},
	{ebiten.KeyArrowRight, scene.Right},
	{ebiten.KeyArrowUp, scene.Up},
	{ebiten.KeyArrowDown, scene.Down},
}

// Game holds the viewer state.
type Game struct {
	cfg   Config
	frame plot.Frame
	log   logrus.FieldLogger

	emitter *greet.Emitter
	scene   *scene.Scene

	face  text.Face
	sound *blipper
}

// New returns a viewer for v. Lines written through e are replayed in the
// window; Enter calls e.FooBar with the current vector.
func New(cfg Config, v vec.Vec2, e *greet.Emitter, log logrus.FieldLogger) *Game {
	if log == nil {
		log = logrus.StandardLogger()
	}
	g := &Game{
		cfg:     cfg,
		frame:   plot.Frame{W: cfg.Width, H: cfg.Height, Cell: cfg.Cell},
		log:     log,
		emitter: e,
		scene:   scene.New(v, cfg.LineInterval),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	if !cfg.Mute {
		g.sound = newBlipper(cfg)
	}
	e.OnLine(func(line string) { g.scene.Push(line) })
	return g
}

// Replay queues lines emitted before the viewer was attached.
func (g *Game) Replay(lines []string) { g.scene.Push(lines...) }

// Update handles input and reveals at most one transcript line.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, a := range arrowKeys {
		if inpututil.IsKeyJustPressed(a.key) {
			g.scene.Move(a.dir)
			g.log.WithField("v", g.scene.V).Debug("moved")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		// a fresh report replaces whatever is still being revealed
		g.scene.Restart()
		if err := g.emitter.FooBar(g.scene.V); err != nil {
			return errors.Wrap(err, "viewer")
		}
	}

	if _, ok := g.scene.Tick(); ok && g.sound != nil {
		g.sound.play()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	g.drawGrid(screen)
	v, prev := g.scene.V, g.scene.Prev
	if prev != v {
		g.drawArrow(screen, prev, colPrev)
	}
	g.drawArrow(screen, v, colVec)

	hud := "Arrows: add unit vector  Enter: foobar  ESC: quit\n"
	hud += fmt.Sprintf("v = %s", v)
	if !g.frame.Contains(v) {
		hud += "  (off screen)"
	}
	g.drawText(screen, hud, 8, 8)

	shown := g.scene.Shown()
	for i, line := range shown {
		g.drawText(screen, line, 8, float64(g.cfg.Height-16*(len(shown)-i)-8))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) drawGrid(dst *ebiten.Image) {
	xs, ys := g.frame.Visible()
	top, bottom := float32(0), float32(g.cfg.Height)
	left, right := float32(0), float32(g.cfg.Width)
	for k := xs.Min; k <= xs.Max; k++ {
		x, _ := g.frame.ToScreen(vec.Vec2{X: k}).F32()
		col := colGrid
		if k == 0 {
			col = colAxis
		}
		vector.StrokeLine(dst, x, top, x, bottom, 1, col, false)
	}
	for k := ys.Min; k <= ys.Max; k++ {
		_, y := g.frame.ToScreen(vec.Vec2{Y: k}).F32()
		col := colGrid
		if k == 0 {
			col = colAxis
		}
		vector.StrokeLine(dst, left, y, right, y, 1, col, false)
	}
}

func (g *Game) drawArrow(dst *ebiten.Image, v vec.Vec2, col color.Color) {
	from := g.frame.ToScreen(vec.Vec2{})
	to := g.frame.ToScreen(v)
	l, r := plot.ArrowHead(from, to, float64(g.cfg.Cell)/3)

	x0, y0 := from.F32()
	x1, y1 := to.F32()
	vector.StrokeLine(dst, x0, y0, x1, y1, 2, col, true)
	lx, ly := l.F32()
	rx, ry := r.F32()
	vector.StrokeLine(dst, x1, y1, lx, ly, 2, col, true)
	vector.StrokeLine(dst, x1, y1, rx, ry, 2, col, true)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colText)
	op.LineSpacing = 16
	text.Draw(dst, s, g.face, op)
}

// Run opens the window and blocks until it is closed. Escape is a clean exit.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle("foobar")
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
