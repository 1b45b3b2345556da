package cli_test

import (
	"bytes"
	"math"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"foobar/internal/cli"
	"foobar/internal/greet"
	"foobar/internal/vec"
)

var _ = Describe("foobar", func() {
	var (
		out, errOut *bytes.Buffer
		opened      []vec.Vec2
		openedLines []string
		openWindow  cli.WindowFunc
	)

	BeforeEach(func() {
		out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
		opened, openedLines = nil, nil
		openWindow = func(v vec.Vec2, e *greet.Emitter, lines []string, log logrus.FieldLogger) error {
			opened = append(opened, v)
			openedLines = lines
			return e.Foo()
		}
	})

	run := func(args ...string) error {
		cmd := cli.NewCommand(out, errOut, openWindow)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	It("prints the report for --x and --y", func() {
		Expect(run("--x", "3", "--y", "4")).To(Succeed())
		Expect(out.String()).To(Equal("calling foo & bar...\nv.x = 3, v.y = 4\nfoo\nbar\n"))
		Expect(errOut.String()).To(BeEmpty())
		Expect(opened).To(BeEmpty())
	})

	It("accepts negative coordinates", func() {
		Expect(run("--x=-1", "--y=0")).To(Succeed())
		Expect(out.String()).To(Equal("calling foo & bar...\nv.x = -1, v.y = 0\nfoo\nbar\n"))
	})

	It("defaults to the origin", func() {
		Expect(run()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("v.x = 0, v.y = 0\n"))
	})

	It("rejects positional arguments", func() {
		Expect(run("3")).NotTo(Succeed())
		Expect(out.String()).To(BeEmpty())
	})

	It("runs foo alone", func() {
		Expect(run("foo")).To(Succeed())
		Expect(out.String()).To(Equal("foo\n"))
	})

	It("runs bar alone", func() {
		Expect(run("bar")).To(Succeed())
		Expect(out.String()).To(Equal("bar\n"))
	})

	Describe("--window", func() {
		It("opens after printing, with the printed lines", func() {
			Expect(run("--x", "2", "--y", "-5", "--window")).To(Succeed())
			Expect(opened).To(Equal([]vec.Vec2{{X: 2, Y: -5}}))
			Expect(openedLines).To(Equal([]string{greet.LineBanner, "v.x = 2, v.y = -5", greet.LineFoo, greet.LineBar}))
			// the window keeps writing through the same emitter
			Expect(out.String()).To(HaveSuffix("bar\nfoo\n"))
		})

		It("fails when no window is available", func() {
			openWindow = nil
			Expect(run("--window")).To(MatchError(ContainSubstring("--window")))
			Expect(out.String()).To(BeEmpty())
		})
	})

	Describe("--log-level", func() {
		It("writes diagnostics to stderr only", func() {
			Expect(run("--log-level", "debug", "--x", "1")).To(Succeed())
			Expect(out.String()).To(Equal("calling foo & bar...\nv.x = 1, v.y = 0\nfoo\nbar\n"))
			Expect(errOut.String()).To(ContainSubstring(`line=foo`))
		})

		It("rejects unknown levels", func() {
			Expect(run("--log-level", "loud")).To(MatchError(ContainSubstring("--log-level")))
		})
	})

	Describe("add", func() {
		It("prints the sum", func() {
			Expect(run("add", "1,2", "(3, 4)", "(-10,0)")).To(Succeed())
			Expect(out.String()).To(Equal("(-6, 6)\n"))
		})

		It("prints a single vector unchanged", func() {
			Expect(run("add", "0,0")).To(Succeed())
			Expect(out.String()).To(Equal("(0, 0)\n"))
		})

		It("starts from --start", func() {
			Expect(run("add", "--start=-1,-1", "1,2")).To(Succeed())
			Expect(out.String()).To(Equal("(0, 1)\n"))
		})

		It("rejects a malformed --start", func() {
			Expect(run("add", "--start", "x", "1,2")).NotTo(Succeed())
		})

		It("requires an argument", func() {
			Expect(run("add")).NotTo(Succeed())
		})

		It("reports malformed vectors", func() {
			Expect(run("add", "1;2")).To(MatchError(ContainSubstring(`"1;2"`)))
			Expect(out.String()).To(BeEmpty())
		})

		It("leaves printing the error to the caller", func() {
			Expect(run("add", "1;2")).NotTo(Succeed())
			Expect(errOut.String()).To(BeEmpty())
		})

		maxInt := strconv.Itoa(math.MaxInt)

		It("wraps on overflow by default", func() {
			Expect(run("add", maxInt+",0", "1,0")).To(Succeed())
			Expect(out.String()).To(Equal("(" + strconv.Itoa(math.MinInt) + ", 0)\n"))
		})

		It("fails on overflow with --checked", func() {
			err := run("add", "--checked", maxInt+",0", "1,0")
			Expect(errors.Cause(err)).To(Equal(vec.ErrOverflow))
			Expect(out.String()).To(BeEmpty())
		})
	})
})
