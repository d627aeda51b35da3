// Command pixpath finds the shortest 4-connected path between two pixels of
// an image with BFS and A*, and saves both searches painted onto copies of
// the image: explored pixels green, the path red and the start blue.
//
// Usage:
//
//	pixpath -in maze.bmp -from 0,0 -to 40,63 -out-bfs bfs -out-astar astar
//
// Missing -in, -from, -to and output names are asked for on stdin when it is
// a terminal; otherwise they are an error.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/katalvlaran/pixpath/internal/config"
	"github.com/katalvlaran/pixpath/pathfind"
	"github.com/katalvlaran/pixpath/raster"
	"github.com/katalvlaran/pixpath/route"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if err := run(ctx, os.Args[1:], os.Stdin, interactive, os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

type flags struct {
	in, from, to      string
	outBFS, outAStar  string
	configPath        string
	logLevel          string
	report            string
	parallel          bool
	parallelSpecified bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{}
	fs := flag.NewFlagSet("pixpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.in, "in", "", "input image (BMP or PNG)")
	fs.StringVar(&f.from, "from", "", "start point as row,col")
	fs.StringVar(&f.to, "to", "", "destination point as row,col")
	fs.StringVar(&f.outBFS, "out-bfs", "", "output image for the BFS result (.bmp appended when no extension)")
	fs.StringVar(&f.outAStar, "out-astar", "", "output image for the A* result (.bmp appended when no extension)")
	fs.StringVar(&f.configPath, "config", "", "JSON configuration file")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&f.report, "report", "", "write a JSON report to this file (- for stdout)")
	fs.BoolVar(&f.parallel, "parallel", false, "run both searches concurrently")
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: pixpath [options]")
		_, _ = fmt.Fprintln(stderr, "\nOptions:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "parallel" {
			f.parallelSpecified = true
		}
	})

	return f, nil
}

// run executes one invocation. Values missing from args are prompted for on
// stdin only when interactive is set; otherwise they are reported as missing.
func run(ctx context.Context, args []string, stdin io.Reader, interactive bool, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg := config.Empty()
	if f.configPath != "" {
		if cfg, err = config.Load(f.configPath); err != nil {
			return err
		}
	}
	level := cfg.GetLogLevel()
	if f.logLevel != "" {
		if level, err = config.ParseLevel(f.logLevel); err != nil {
			return err
		}
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	palette, err := cfg.GetPalette()
	if err != nil {
		return err
	}
	parallel := cfg.GetParallel()
	if f.parallelSpecified {
		parallel = f.parallel
	}

	p := newPrompter(stdin, stdout, interactive)
	if f.in == "" {
		if f.in, err = p.line("Enter input image name (BMP file): ", "in"); err != nil {
			return err
		}
	}
	img, err := raster.Load(f.in)
	if err != nil {
		return fmt.Errorf("could not open image file %q: %w", f.in, err)
	}
	_, _ = fmt.Fprintf(stdout, "Image dimensions: %d x %d\n", img.Width, img.Height)
	_, _ = fmt.Fprintf(stdout, "Valid row range: 0 to %d\n", img.Height-1)
	_, _ = fmt.Fprintf(stdout, "Valid column range: 0 to %d\n", img.Width-1)

	from, err := p.point(f.from, "from", "start")
	if err != nil {
		return err
	}
	to, err := p.point(f.to, "to", "destination")
	if err != nil {
		return err
	}

	logger.Debug("comparing searches", "in", f.in, "parallel", parallel, "threshold", cfg.GetThreshold())
	c, err := pathfind.Compare(ctx, img, from, to,
		pathfind.WithThreshold(cfg.GetThreshold()),
		pathfind.WithPalette(palette),
		pathfind.WithLogger(logger),
		pathfind.WithParallel(parallel),
	)
	if err != nil {
		return describe(err)
	}
	_, _ = fmt.Fprintf(stdout, "Shortest path length: %d\n", c.Length)
	_, _ = fmt.Fprintf(stdout, "Visited: bfs=%d astar=%d\n", c.BFS.Result.Visited, c.AStar.Result.Visited)

	if f.report != "" {
		if err := writeReport(f.report, pathfind.NewReport(c), stdout); err != nil {
			return err
		}
	}

	if f.outBFS == "" {
		if f.outBFS, err = p.line("Enter output file name for BFS result: ", "out-bfs"); err != nil {
			return err
		}
	}
	if f.outAStar == "" {
		if f.outAStar, err = p.line("Enter output file name for A* result: ", "out-astar"); err != nil {
			return err
		}
	}

	var saveErrs []error
	for _, out := range []struct {
		label string
		path  string
		img   *raster.Grid
	}{
		{"BFS", raster.WithDefaultExt(f.outBFS), c.BFS.Image},
		{"A*", raster.WithDefaultExt(f.outAStar), c.AStar.Image},
	} {
		if err := raster.Save(out.path, out.img); err != nil {
			logger.Error("save failed", "result", out.label, "path", out.path, "err", err)
			saveErrs = append(saveErrs, fmt.Errorf("could not save %s result: %w", out.label, err))
			continue
		}
		_, _ = fmt.Fprintf(stdout, "%s result saved to %s\n", out.label, out.path)
	}

	return errors.Join(saveErrs...)
}

// userError carries a message for the terminal while keeping the wrapped
// chain available to errors.Is and errors.As.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

// describe rewrites search failures in the row,col terms the user typed.
func describe(err error) error {
	var pe *pathfind.PointError
	if errors.As(err, &pe) {
		name, what := "start", "out of bounds"
		if pe.Endpoint == route.DestPoint {
			name = "destination"
		}
		if errors.Is(err, route.ErrInvalidVertex) {
			what = "not a valid vertex (pixel too dark)"
		}
		return &userError{msg: fmt.Sprintf("%s point %s is %s", name, pe.Point, what), err: err}
	}
	if errors.Is(err, route.ErrUnreachable) {
		return &userError{msg: "destination is unreachable", err: err}
	}

	return err
}

func writeReport(path string, r pathfind.Report, stdout io.Writer) (err error) {
	if path == "-" {
		return r.WriteJSON(stdout)
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create report: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return r.WriteJSON(fh)
}

// errMissing is returned for a value that is neither flagged nor promptable.
var errMissing = errors.New("missing required flag (stdin is not a terminal)")

// prompter asks for values missing from the command line.
type prompter struct {
	sc          *bufio.Scanner
	out         io.Writer
	interactive bool
}

func newPrompter(in io.Reader, out io.Writer, interactive bool) *prompter {
	return &prompter{sc: bufio.NewScanner(in), out: out, interactive: interactive}
}

// line prompts for one value; flagName names the flag that would supply it.
func (p *prompter) line(prompt, flagName string) (string, error) {
	if !p.interactive {
		return "", fmt.Errorf("%w: -%s", errMissing, flagName)
	}
	_, _ = fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no input for %q", strings.TrimSpace(prompt))
	}
	v := strings.TrimSpace(p.sc.Text())
	if v == "" {
		return "", fmt.Errorf("empty input for %q", strings.TrimSpace(prompt))
	}

	return v, nil
}

func (p *prompter) number(prompt, flagName string) (int, error) {
	s, err := p.line(prompt, flagName)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}

	return n, nil
}

// point parses flagValue, or asks for the row and column when it is empty.
func (p *prompter) point(flagValue, flagName, name string) (pathfind.Point, error) {
	if flagValue != "" {
		return pathfind.ParsePoint(flagValue)
	}
	row, err := p.number("Enter "+name+" row: ", flagName)
	if err != nil {
		return pathfind.Point{}, err
	}
	col, err := p.number("Enter "+name+" column: ", flagName)
	if err != nil {
		return pathfind.Point{}, err
	}

	return pathfind.Point{Row: row, Col: col}, nil
}
