// Command filtinfo inspects a direct-form filter and optionally applies it
// forward and backward to an audio file.
//
// Usage:
//
//	filtinfo [flags]
//
// The filter is given as comma-separated feed-forward (-b) and feedback
// (-a) coefficients; a[0] is implied to be 1. The command prints the
// impulse response and the magnitude/phase response at the requested
// frequencies. With -in and -out it reads a WAV or AIFF file, filters
// every channel with zero phase and writes the result at the source bit
// depth.
//
// Examples:
//
//	filtinfo -b 0.2 -a 1,-0.8
//	filtinfo -b 0.0675,0.1349,0.0675 -a 1,-1.143,0.4128 -freqs 100,1000,5000
//	filtinfo -b 0.2 -a 1,-0.8 -in dry.wav -out smooth.wav
//	filtinfo -cpu
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-sigkit/dsp/filter/direct"
)

type options struct {
	b, a    string
	rate    float64
	n       int
	freqs   string
	ringOut int
	in, out string
	cpu     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("filtinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.b, "b", "1", "feed-forward coefficients b0,b1,...")
	fs.StringVar(&opts.a, "a", "", "feedback coefficients 1,a1,a2,... (a0 is ignored)")
	fs.Float64Var(&opts.rate, "rate", 48000, "sample rate in Hz for the response table")
	fs.IntVar(&opts.n, "n", 16, "number of impulse-response samples to print")
	fs.StringVar(&opts.freqs, "freqs", "50,100,500,1000,5000,10000", "frequencies in Hz for the response table")
	fs.IntVar(&opts.ringOut, "ringout", direct.DefaultRingOut, "ring-out length for zero-phase file filtering")
	fs.StringVar(&opts.in, "in", "", "input WAV/AIFF file")
	fs.StringVar(&opts.out, "out", "", "output WAV/AIFF file (requires -in)")
	fs.BoolVar(&opts.cpu, "cpu", false, "print detected SIMD features and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: filtinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Prints the impulse and frequency response of a direct-form filter\n")
		fmt.Fprintf(stderr, "and applies it with zero phase to audio files.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  filtinfo -b 0.2 -a 1,-0.8\n")
		fmt.Fprintf(stderr, "  filtinfo -b 0.2 -a 1,-0.8 -in dry.wav -out smooth.wav\n")
		fmt.Fprintf(stderr, "  filtinfo -cpu\n")
	}
	return fs
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if opts.cpu {
		return printCPU(stdout)
	}

	c, err := parseCoefficients(opts.b, opts.a)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		if !errors.Is(err, direct.ErrDenominatorNotNormalized) {
			return err
		}
		fmt.Fprintf(stderr, "warning: a[0] = %g is ignored and treated as 1\n", c.A[0])
	}

	freqs, err := parseList(opts.freqs)
	if err != nil {
		return fmt.Errorf("-freqs: %w", err)
	}
	if opts.rate <= 0 {
		return fmt.Errorf("-rate must be positive, got %g", opts.rate)
	}

	if err := printImpulse(stdout, c, opts.n); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	if err := printResponse(stdout, c, freqs, opts.rate); err != nil {
		return err
	}

	switch {
	case opts.in == "" && opts.out == "":
		return nil
	case opts.in == "" || opts.out == "":
		return errors.New("-in and -out must be given together")
	}

	info, err := filterFile(opts.in, opts.out, c, direct.WithRingOut(opts.ringOut))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nwrote %s: %d channel(s), %d frames, %d Hz, %d bit\n",
		opts.out, info.channels, info.frames, info.sampleRate, info.bitDepth)
	return nil
}
