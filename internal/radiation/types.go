package radiation

import (
	"fmt"
	"math"
)

// MonthsPerYear is the fixed length of every monthly series
const MonthsPerYear = 12

// DefaultMonths are the month labels used when a dataset does not supply its own
var DefaultMonths = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlySeries holds one value per calendar month, index 0 = January
type MonthlySeries []float64

// Dataset is the set of measured monthly inputs for one site.
// All series are aligned with Months by index.
type Dataset struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location,omitempty"`

	Months []string `yaml:"months,omitempty"`

	G0 MonthlySeries `yaml:"g0"` // Extraterrestrial radiation
	H  MonthlySeries `yaml:"h"`  // Bright sunshine hours
	N  MonthlySeries `yaml:"n"`  // Maximum possible sunshine duration (hours)
	W  MonthlySeries `yaml:"w"`  // Absolute humidity
	R  MonthlySeries `yaml:"r"`  // Relative humidity (%), reported only
}

// Validate checks series lengths, month labels and that every input is finite
func (d *Dataset) Validate() error {
	months := d.Months
	if len(months) == 0 {
		months = DefaultMonths
	}
	if len(months) != MonthsPerYear {
		return &InvalidInputError{Field: "months", Msg: fmt.Sprintf("expected %d labels, got %d", MonthsPerYear, len(months))}
	}
	seen := make(map[string]bool, MonthsPerYear)
	for i, m := range months {
		if m == "" {
			return &InvalidInputError{Field: "months", Msg: fmt.Sprintf("label %d is empty", i+1)}
		}
		if seen[m] {
			return &InvalidInputError{Field: "months", Msg: fmt.Sprintf("duplicate label %q", m)}
		}
		seen[m] = true
	}

	inputs := []struct {
		field  string
		series MonthlySeries
	}{
		{"g0", d.G0},
		{"h", d.H},
		{"n", d.N},
		{"w", d.W},
		{"r", d.R},
	}
	for _, in := range inputs {
		if len(in.series) != MonthsPerYear {
			return &InvalidInputError{Field: in.field, Msg: fmt.Sprintf("expected %d values, got %d", MonthsPerYear, len(in.series))}
		}
		for i, v := range in.series {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &InvalidInputError{Field: in.field, Msg: fmt.Sprintf("value for %s is not finite", months[i])}
			}
		}
	}
	return nil
}

// SeriesID names one of the seven exportable series
type SeriesID string

const (
	SeriesG SeriesID = "G"
	SeriesD SeriesID = "D"
	SeriesB SeriesID = "B"
	SeriesR SeriesID = "R"
	SeriesH SeriesID = "h"
	SeriesN SeriesID = "N"
	SeriesW SeriesID = "W"
)

// ExportOrder is the order in which series are written out
var ExportOrder = []SeriesID{SeriesG, SeriesD, SeriesB, SeriesR, SeriesH, SeriesN, SeriesW}

// Title returns the human-readable name of the series
func (id SeriesID) Title() string {
	switch id {
	case SeriesG:
		return "Total Solar Radiation"
	case SeriesD:
		return "Diffuse Radiation"
	case SeriesB:
		return "Direct Beam (G-D)"
	case SeriesR:
		return "Relative Humidity (%)"
	case SeriesH:
		return "Bright Sunshine Hours"
	case SeriesN:
		return "Max Sunshine Duration"
	case SeriesW:
		return "Absolute Humidity"
	}
	return string(id)
}
