package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-sigkit/dsp/filter/direct"
)

var errEmptyList = errors.New("empty list")

// parseList parses comma- or whitespace-separated floats.
func parseList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errEmptyList
	}

	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseCoefficients(b, a string) (direct.Coefficients[float64], error) {
	var c direct.Coefficients[float64]

	bs, err := parseList(b)
	if err != nil {
		return c, fmt.Errorf("-b: %w", err)
	}
	c.B = bs

	if strings.TrimSpace(a) != "" {
		as, err := parseList(a)
		if err != nil {
			return c, fmt.Errorf("-a: %w", err)
		}
		c.A = as
	}
	return c, nil
}
