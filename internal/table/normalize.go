package table

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// secondsPerYear converts a fractional-years age into elapsed seconds using
// the 365.25 days/year convention of the reference dataset's epoch math.
const secondsPerYear = 365.25 * 86400

var datePrefixRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)

// Observation is one normalized input row, ready for a reference lookup.
// Either Observed is set (date column present) or AgeSeconds carries the
// elapsed time derived from a fractional-years age column.
type Observation struct {
	Observed   time.Time
	AgeSeconds float64

	Height    float64
	HasHeight bool
	Weight    float64
	HasWeight bool
}

// Normalize converts one raw row into an Observation using the resolved role
// map. index is the zero-based data-row position and is reported in errors.
func Normalize(row Row, roles RoleMap, index int) (Observation, error) {
	var obs Observation

	if col, ok := roles[RoleDate]; ok {
		raw := row[col]
		m := datePrefixRe.FindStringSubmatch(raw)
		if m == nil {
			return obs, &MalformedDateError{Row: index, Raw: raw}
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		obs.Observed = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	} else {
		col := roles[RoleAge]
		years, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return obs, fmt.Errorf("row %d: parse age %q: %w", index, row[col], err)
		}
		obs.AgeSeconds = years * secondsPerYear
	}

	if col, ok := roles[RoleHeight]; ok && row[col] != "" {
		h, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return obs, fmt.Errorf("row %d: parse height %q: %w", index, row[col], err)
		}
		obs.Height = h
		obs.HasHeight = true
	}
	if col, ok := roles[RoleWeight]; ok && row[col] != "" {
		w, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return obs, fmt.Errorf("row %d: parse weight %q: %w", index, row[col], err)
		}
		obs.Weight = w
		obs.HasWeight = true
	}
	return obs, nil
}
