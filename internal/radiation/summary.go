package radiation

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds annual statistics of one monthly series
type Summary struct {
	ID       SeriesID
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
	MinMonth string
	MaxMonth string
}

// Summary computes annual statistics for the given series
func (c *Calculator) Summary(id SeriesID) (*Summary, error) {
	s, err := c.Series(id)
	if err != nil {
		return nil, err
	}

	minIdx := floats.MinIdx(s)
	maxIdx := floats.MaxIdx(s)

	return &Summary{
		ID:       id,
		Mean:     stat.Mean(s, nil),
		StdDev:   stat.StdDev(s, nil),
		Min:      s[minIdx],
		Max:      s[maxIdx],
		MinMonth: c.months[minIdx],
		MaxMonth: c.months[maxIdx],
	}, nil
}

// DiffuseFraction returns D/G for each month
func (c *Calculator) DiffuseFraction() (MonthlySeries, error) {
	kd := make(MonthlySeries, MonthsPerYear)
	for i := range kd {
		if c.g[i] == 0 {
			return nil, &DomainError{Op: "diffuse fraction", Month: c.months[i], Msg: "global radiation is zero"}
		}
		kd[i] = c.d[i] / c.g[i]
	}
	return kd, nil
}

// AnnualMeanDiffuseFraction is the mean of the monthly D/G ratios
func (c *Calculator) AnnualMeanDiffuseFraction() (float64, error) {
	kd, err := c.DiffuseFraction()
	if err != nil {
		return 0, err
	}
	return stat.Mean(kd, nil), nil
}
