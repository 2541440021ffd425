// Package growthref defines the growth-reference lookup capability consumed
// by the charting pipeline, plus an HTTP client implementation of it.
package growthref

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Metric identifies which reference curve set a lookup or chart uses.
type Metric string

const (
	Height Metric = "height"
	Weight Metric = "weight"
	BMI    Metric = "bmi"
)

// ParseMetric validates a user-supplied chart kind.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case Height, Weight, BMI:
		return Metric(s), nil
	}
	return "", fmt.Errorf("unknown chart kind %q (want height, weight or bmi)", s)
}

// Request carries one observation to the reference lookup. Either DOB and
// Observed are set (date-based input) or AgeSeconds carries the elapsed age.
// Height and Weight are included only when present and needed by the caller's
// chart kind.
type Request struct {
	Gender     string
	DOB        time.Time
	Observed   time.Time
	AgeSeconds float64
	Height     *float64
	Weight     *float64
}

// Bands holds the seven SD-band values for one metric at one age.
type Bands struct {
	SD3neg float64
	SD2neg float64
	SD1neg float64
	SD0    float64
	SD1    float64
	SD2    float64
	SD3    float64
}

// Result is a successful lookup response. Values holds the per-metric SD-band
// fields keyed exactly as the service names them ({metric}_SD0, {metric}_SD1,
// {metric}_SD1neg, ...). Age is the service's age string, whose leading
// numeric token encodes the subject's age at the observation.
type Result struct {
	Age    string
	Values map[string]float64
}

var leadingNumberRe = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+`)

// AgeMonths converts the result's age string into the month-axis value
// plotted: the leading numeric token divided by 12.
func (r *Result) AgeMonths() (float64, error) {
	tok := leadingNumberRe.FindString(strings.TrimSpace(r.Age))
	if tok == "" {
		return 0, fmt.Errorf("no numeric age in %q", r.Age)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("parse age %q: %w", r.Age, err)
	}
	return v / 12, nil
}

// Bands extracts the seven SD-band values for the given metric.
func (r *Result) Bands(m Metric) (Bands, error) {
	get := func(suffix string) (float64, error) {
		key := string(m) + "_" + suffix
		v, ok := r.Values[key]
		if !ok {
			return 0, fmt.Errorf("response missing field %q", key)
		}
		return v, nil
	}
	var b Bands
	var err error
	if b.SD0, err = get("SD0"); err != nil {
		return b, err
	}
	if b.SD1, err = get("SD1"); err != nil {
		return b, err
	}
	if b.SD1neg, err = get("SD1neg"); err != nil {
		return b, err
	}
	if b.SD2, err = get("SD2"); err != nil {
		return b, err
	}
	if b.SD2neg, err = get("SD2neg"); err != nil {
		return b, err
	}
	if b.SD3, err = get("SD3"); err != nil {
		return b, err
	}
	if b.SD3neg, err = get("SD3neg"); err != nil {
		return b, err
	}
	return b, nil
}

// Lookup resolves WHO growth-reference SD bands for one observation. A failed
// lookup is a data error, not a transient fault: implementations do not retry.
type Lookup interface {
	Lookup(ctx context.Context, req Request) (*Result, error)
}
