// Package series folds normalized observations through the reference lookup
// into the parallel value sequences a growth chart plots.
package series

import (
	"context"
	"math"
	"time"

	"github.com/pediametrics/growthchart-cli/internal/growthref"
	"github.com/pediametrics/growthchart-cli/internal/table"
	"go.uber.org/zap"
)

// SeriesSet holds eight ordered sequences aligned by row index: the measured
// value plus the seven SD-band envelopes, in input row order. Absent measured
// values are marked NaN so the slot (and x-axis alignment) is preserved.
type SeriesSet struct {
	Metric    growthref.Metric
	AgeMonths []float64
	Measured  []float64
	ZNeg3     []float64
	ZNeg2     []float64
	ZNeg1     []float64
	Z0        []float64
	Z1        []float64
	Z2        []float64
	Z3        []float64
}

// Len reports the number of rows folded into the set.
func (s *SeriesSet) Len() int { return len(s.Measured) }

// Absent marks a measured or BMI slot with no value for that row.
func Absent() float64 { return math.NaN() }

// IsAbsent reports whether a slot holds the absent marker.
func IsAbsent(v float64) bool { return math.IsNaN(v) }

// Build runs the enrichment fold: one lookup per observation, strictly
// sequential and in input order, which is assumed age-ascending and is never
// re-sorted. The first failing row aborts the whole fold.
func Build(ctx context.Context, lk growthref.Lookup, gender string, dob time.Time, metric growthref.Metric, obs []table.Observation, log *zap.Logger) (*SeriesSet, error) {
	if log == nil {
		log = zap.NewNop()
	}
	set := &SeriesSet{
		Metric:    metric,
		AgeMonths: make([]float64, 0, len(obs)),
		Measured:  make([]float64, 0, len(obs)),
		ZNeg3:     make([]float64, 0, len(obs)),
		ZNeg2:     make([]float64, 0, len(obs)),
		ZNeg1:     make([]float64, 0, len(obs)),
		Z0:        make([]float64, 0, len(obs)),
		Z1:        make([]float64, 0, len(obs)),
		Z2:        make([]float64, 0, len(obs)),
		Z3:        make([]float64, 0, len(obs)),
	}

	for i, o := range obs {
		req := growthref.Request{Gender: gender}
		if !o.Observed.IsZero() {
			req.DOB = dob
			req.Observed = o.Observed
		} else {
			req.AgeSeconds = o.AgeSeconds
		}
		if (metric == growthref.Height || metric == growthref.BMI) && o.HasHeight {
			h := o.Height
			req.Height = &h
		}
		if (metric == growthref.Weight || metric == growthref.BMI) && o.HasWeight {
			w := o.Weight
			req.Weight = &w
		}

		res, err := lk.Lookup(ctx, req)
		if err != nil {
			return nil, &RowError{Row: i, Err: err}
		}
		months, err := res.AgeMonths()
		if err != nil {
			return nil, &RowError{Row: i, Err: err}
		}
		bands, err := res.Bands(metric)
		if err != nil {
			return nil, &RowError{Row: i, Err: err}
		}

		measured := measuredValue(metric, o)
		log.Debug("row enriched",
			zap.Int("row", i),
			zap.Float64("age_months", months),
			zap.Float64("measured", measured))

		set.AgeMonths = append(set.AgeMonths, months)
		set.Measured = append(set.Measured, measured)
		set.ZNeg3 = append(set.ZNeg3, bands.SD3neg)
		set.ZNeg2 = append(set.ZNeg2, bands.SD2neg)
		set.ZNeg1 = append(set.ZNeg1, bands.SD1neg)
		set.Z0 = append(set.Z0, bands.SD0)
		set.Z1 = append(set.Z1, bands.SD1)
		set.Z2 = append(set.Z2, bands.SD2)
		set.Z3 = append(set.Z3, bands.SD3)
	}
	return set, nil
}

// measuredValue picks the plotted value for a row, computing BMI locally when
// both height and weight are present and marking the slot absent otherwise.
func measuredValue(metric growthref.Metric, o table.Observation) float64 {
	switch metric {
	case growthref.Height:
		if !o.HasHeight {
			return Absent()
		}
		return o.Height
	case growthref.Weight:
		if !o.HasWeight {
			return Absent()
		}
		return o.Weight
	case growthref.BMI:
		if !o.HasHeight || !o.HasWeight {
			return Absent()
		}
		m := o.Height / 100
		return o.Weight / (m * m)
	}
	return Absent()
}
