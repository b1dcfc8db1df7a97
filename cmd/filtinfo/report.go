package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"text/tabwriter"

	"github.com/cwbudde/algo-sigkit/dsp/filter/direct"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func printImpulse(w io.Writer, c direct.Coefficients[float64], n int) error {
	if n <= 0 {
		return nil
	}
	h := make([]float64, n)
	direct.ImpulseResponse(h, c)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "n\th[n]\n")
	fmt.Fprintf(tw, "-\t----\n")
	for i, v := range h {
		fmt.Fprintf(tw, "%d\t%.9g\n", i, v)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printResponse(w io.Writer, c direct.Coefficients[float64], freqs []float64, rate float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tMag [dB]\tPhase [deg]\tZero-phase [dB]\n")
	fmt.Fprintf(tw, "---------\t--------\t-----------\t---------------\n")
	for _, f := range freqs {
		db := direct.MagnitudeDB(c, f, rate)
		fmt.Fprintf(tw, "%.2f\t%.4f\t%.4f\t%.4f\n",
			f,
			db,
			cmplx.Phase(direct.Response(c, f, rate))*180/math.Pi,
			2*db,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printCPU(w io.Writer) error {
	f := cpu.DetectFeatures()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Architecture\t%s\n", f.Architecture)
	fmt.Fprintf(tw, "SSE2\t%t\n", f.HasSSE2)
	fmt.Fprintf(tw, "AVX2\t%t\n", f.HasAVX2)
	fmt.Fprintf(tw, "NEON\t%t\n", f.HasNEON)
	fmt.Fprintf(tw, "Forced generic\t%t\n", f.ForceGeneric)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
