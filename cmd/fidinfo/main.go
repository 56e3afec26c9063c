// Command fidinfo designs filters from spec strings and prints their
// coefficients and frequency response.
//
// Usage:
//
//	fidinfo [flags] [filter ...]
//
// Each argument is a filter element as accepted by fid.Parse: a named spec
// such as LpBu4/1000, literal coefficients, or a combination joined with
// 'x' and '/'.
//
// Examples:
//
//	fidinfo -rate 48000 LpBu4/1000
//	fidinfo -rate 8000 -f 300 -exact HpBe3
//	fidinfo -rate 44100 -coef -n 4 LpBu4/1000
//	fidinfo -rate 100 -flat -delay "BpCh2/-0.5/10-20"
//	fidinfo -rate 48000 -ir lp.wav -irlen 1024 LpBe6/2000
//	fidinfo -list
//	fidinfo -i
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/chzyer/readline"
	"golang.org/x/term"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-fid/dsp/filter/chain"
	"github.com/cwbudde/algo-fid/dsp/filter/fid"
)

type config struct {
	rate   float64
	f0, f1 float64
	exact  bool
	coef   bool
	ncoef  int
	flat   bool
	points int
	delay  bool
	fft    int
	irPath string
	irLen  int
}

func (c config) options() []fid.Option {
	opts := []fid.Option{fid.WithExact(c.exact)}
	if c.f1 >= 0 {
		return append(opts, fid.WithDefaultRange(c.f0, c.f1))
	}
	return append(opts, fid.WithDefaultFrequency(c.f0))
}

func main() {
	var cfg config
	var rangeFlag string
	flag.Float64Var(&cfg.rate, "rate", 44100, "sampling rate in Hz")
	flag.Float64Var(&cfg.f0, "f", -1, "default frequency in Hz for specs that omit it")
	flag.StringVar(&rangeFlag, "range", "", "default frequency range `f0-f1` in Hz for band specs that omit it")
	flag.BoolVar(&cfg.exact, "exact", false, "calibrate -3.01dB points when the frequency comes from -f or -range")
	list := flag.Bool("list", false, "list the known filter specs")
	version := flag.Bool("version", false, "print the library version")
	flag.BoolVar(&cfg.coef, "coef", false, "print the reduced coefficients and gain of a named spec")
	flag.IntVar(&cfg.ncoef, "n", -1, "expected coefficient count for -coef (negative accepts any)")
	flag.BoolVar(&cfg.flat, "flat", false, "flatten each chain into one IIR/FIR pair")
	flag.IntVar(&cfg.points, "points", 11, "number of response points from 0 to rate/2")
	flag.BoolVar(&cfg.delay, "delay", false, "estimate the group delay in samples")
	flag.IntVar(&cfg.fft, "fft", 0, "also print an FFT magnitude spectrum of this size (power of two)")
	interactive := flag.Bool("i", false, "read filters from the terminal, one per line")
	flag.StringVar(&cfg.irPath, "ir", "", "write the impulse response to this WAV `file`")
	flag.IntVar(&cfg.irLen, "irlen", 4096, "impulse response length in samples for -ir")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fidinfo [flags] [filter ...]\n\n")
		fmt.Fprintf(os.Stderr, "Designs filters from spec strings and prints coefficients and response.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fidinfo -rate 48000 LpBu4/1000\n")
		fmt.Fprintf(os.Stderr, "  fidinfo -rate 8000 -f 300 -exact HpBe3\n")
		fmt.Fprintf(os.Stderr, "  fidinfo -rate 44100 -coef -n 4 LpBu4/1000\n")
		fmt.Fprintf(os.Stderr, "  fidinfo -list\n")
	}
	flag.Parse()

	if rangeFlag != "" {
		f0, f1, err := parseRange(rangeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		cfg.f0, cfg.f1 = f0, f1
	} else {
		cfg.f1 = -1
	}

	switch {
	case *version:
		fmt.Println(fid.Version())
		return
	case *list:
		fmt.Print(fid.ListFilters())
		return
	case *interactive:
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, arg := range args {
		if err := describe(os.Stdout, cfg, arg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", arg, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// parseRange reads "f0-f1".
func parseRange(s string) (float64, float64, error) {
	var f0, f1 float64
	if _, err := fmt.Sscanf(s, "%g-%g", &f0, &f1); err != nil {
		return 0, 0, fmt.Errorf("bad -range %q, want f0-f1: %w", s, err)
	}
	if f0 < 0 || f1 < f0 {
		return 0, 0, fmt.Errorf("bad -range %q, want 0 <= f0 <= f1", s)
	}
	return f0, f1, nil
}

// describe prints everything requested for one filter argument.
func describe(w io.Writer, cfg config, arg string) error {
	fmt.Fprintf(w, "== %s\n", arg)

	if cfg.coef {
		return printCoefficients(w, cfg, arg)
	}

	c, err := build(cfg, arg)
	if err != nil {
		return err
	}
	if cfg.flat {
		if c, err = c.Flatten(); err != nil {
			return err
		}
	}

	if err := printChain(w, c); err != nil {
		return err
	}
	if err := printResponse(w, c, cfg.rate, cfg.points); err != nil {
		return err
	}
	if cfg.delay {
		d, err := c.Delay()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "delay: %d samples (%.6g s)\n", d, float64(d)/cfg.rate)
	}
	if cfg.fft > 0 {
		if err := printSpectrum(w, c, cfg.rate, cfg.fft); err != nil {
			return err
		}
	}
	if cfg.irPath != "" {
		if err := writeImpulseWAV(cfg.irPath, c, int(math.Round(cfg.rate)), cfg.irLen); err != nil {
			return err
		}
		fmt.Fprintf(w, "impulse response: %s\n", cfg.irPath)
	}
	return nil
}

// build designs arg as a single named spec, honouring the default
// frequency flags, or otherwise parses it as a filter element.
func build(cfg config, arg string) (chain.Chain, error) {
	res, err := fid.Design(arg, cfg.rate, cfg.options()...)
	if err == nil {
		return res.Filter, nil
	}

	c, rest, perr := fid.Parse(cfg.rate, arg)
	if perr != nil {
		// Report the named-spec error for things that look like one word.
		if !strings.ContainsAny(strings.TrimSpace(arg), " \t") {
			return nil, err
		}
		return nil, perr
	}
	if strings.TrimSpace(rest) != "" {
		return nil, fmt.Errorf("%w: trailing %q after filter", fid.ErrSpec, rest)
	}
	return c, nil
}

func printCoefficients(w io.Writer, cfg config, spec string) error {
	n := cfg.ncoef
	if n < 0 {
		res, err := fid.Design(spec, cfg.rate, cfg.options()...)
		if err != nil {
			return err
		}
		n = countCoefficients(res.Filter)
	}

	coef, gain, err := fid.DesignCoefficients(spec, cfg.rate, n, cfg.options()...)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "gain\t%.15g\n", gain)
	for i, v := range coef {
		fmt.Fprintf(tw, "coef[%d]\t%.15g\n", i, v)
	}
	return tw.Flush()
}

// countCoefficients counts the non-constant coefficients the way
// fid.DesignCoefficients lists them.
func countCoefficients(c chain.Chain) int {
	n := 0
	for _, s := range c {
		if s.Kind == chain.FIR && len(s.Coeffs) == 1 {
			continue
		}
		for a := range s.Coeffs {
			if s.Kind == chain.IIR && a == 0 {
				continue
			}
			if !s.IsConst(a) {
				n++
			}
		}
	}
	return n
}

func printChain(w io.Writer, c chain.Chain) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tType\tConst\tCoefficients\n")
	fmt.Fprintf(tw, "-\t----\t-----\t------------\n")
	for i, s := range c {
		parts := make([]string, len(s.Coeffs))
		for k, v := range s.Coeffs {
			parts[k] = fmt.Sprintf("%.10g", v)
		}
		fmt.Fprintf(tw, "%d\t%s\t%#x\t%s\n", i, s.Kind, s.ConstMask, strings.Join(parts, " "))
	}
	return tw.Flush()
}

func printResponse(w io.Writer, c chain.Chain, rate float64, points int) error {
	if points < 2 {
		return nil
	}
	grid := floats.Span(make([]float64, points), 0, 0.5)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tMagnitude\tdB\tPhase [turns]\n")
	fmt.Fprintf(tw, "---------\t---------\t--\t-------------\n")
	for _, f := range grid {
		mag, phase := c.ResponsePhase(f)
		fmt.Fprintf(tw, "%.6g\t%.6f\t%.2f\t%.4f\n", f*rate, mag, 20*math.Log10(mag), phase)
	}
	return tw.Flush()
}

func printSpectrum(w io.Writer, c chain.Chain, rate float64, n int) error {
	mag, err := c.Spectrum(n)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tFreq [Hz]\tMagnitude\n")
	for k, m := range mag {
		fmt.Fprintf(tw, "%d\t%.6g\t%.6f\n", k, float64(k)*rate/float64(n), m)
	}
	return tw.Flush()
}

// runInteractive reads filter lists line by line. Each list element is
// described in turn. On a terminal it uses a line editor with history;
// otherwise it reads stdin plainly so that scripts can pipe input.
func runInteractive(cfg config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			handleLine(os.Stdout, cfg, sc.Text())
		}
		return sc.Err()
	}

	rl, err := readline.New("fid> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		if strings.TrimSpace(line) == "quit" {
			return nil
		}
		handleLine(rl.Stdout(), cfg, line)
	}
}

func handleLine(w io.Writer, cfg config, line string) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return
	case "list":
		fmt.Fprint(w, fid.ListFilters())
		return
	}

	list, err := fid.ParseList(cfg.rate, line)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	for _, c := range list {
		if cfg.flat {
			if c, err = c.Flatten(); err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
				return
			}
		}
		if err := printChain(w, c); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			return
		}
		if err := printResponse(w, c, cfg.rate, cfg.points); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			return
		}
	}
}
