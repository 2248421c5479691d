package radiation

import (
	"fmt"
	"math"
)

// Regression coefficients for the sunshine-humidity radiation model
const (
	GlobalIntercept  = 0.394
	GlobalSunshine   = 0.364
	GlobalHumidity   = 0.0035
	DiffuseIntercept = 0.306
	DiffuseSunshine  = 0.165
	DiffuseHumidity  = 0.0025
)

// Calculator holds the monthly inputs of a site together with the derived
// global, diffuse and direct-beam radiation. It is immutable after New.
type Calculator struct {
	name     string
	location string
	months   []string

	g0, h, n, w, r MonthlySeries
	g, d, b        MonthlySeries
}

// New validates the dataset, copies it and derives G, D and B for every month
func New(ds Dataset) (*Calculator, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	months := ds.Months
	if len(months) == 0 {
		months = DefaultMonths
	}

	c := &Calculator{
		name:     ds.Name,
		location: ds.Location,
		months:   append([]string(nil), months...),
		g0:       ds.G0.clone(),
		h:        ds.H.clone(),
		n:        ds.N.clone(),
		w:        ds.W.clone(),
		r:        ds.R.clone(),
		g:        make(MonthlySeries, MonthsPerYear),
		d:        make(MonthlySeries, MonthsPerYear),
		b:        make(MonthlySeries, MonthsPerYear),
	}

	for i := 0; i < MonthsPerYear; i++ {
		g, d, err := Components(c.g0[i], c.h[i], c.n[i], c.w[i])
		if err != nil {
			if de, ok := err.(*DomainError); ok {
				de.Month = c.months[i]
			}
			return nil, err
		}
		c.g[i] = g
		c.d[i] = d
		c.b[i] = g - d
	}

	return c, nil
}

// Components evaluates the model for a single month and returns the global
// and diffuse radiation. The direct beam is their difference.
func Components(g0, h, n, w float64) (global, diffuse float64, err error) {
	// N² also vanishes for subnormal N
	nn := n * n
	if nn == 0 {
		return 0, 0, &DomainError{Op: "radiation", Msg: fmt.Sprintf("maximum sunshine duration N is zero (N=%g)", n)}
	}

	// h/N² as used by the empirical model
	ratio := h / nn

	global = g0 * (GlobalIntercept + GlobalSunshine*ratio*GlobalHumidity*w)
	diffuse = g0 * (DiffuseIntercept - DiffuseSunshine*ratio + DiffuseHumidity*w)
	if !finite(global) || !finite(diffuse) || !finite(global-diffuse) {
		return 0, 0, &DomainError{Op: "radiation", Msg: "inputs overflow the radiation model"}
	}
	return global, diffuse, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Name returns the dataset name
func (c *Calculator) Name() string { return c.name }

// Location returns the dataset location, if any
func (c *Calculator) Location() string { return c.location }

// Months returns a copy of the month labels
func (c *Calculator) Months() []string { return append([]string(nil), c.months...) }

func (c *Calculator) G0() MonthlySeries { return c.g0.clone() }
func (c *Calculator) H() MonthlySeries  { return c.h.clone() }
func (c *Calculator) N() MonthlySeries  { return c.n.clone() }
func (c *Calculator) W() MonthlySeries  { return c.w.clone() }
func (c *Calculator) R() MonthlySeries  { return c.r.clone() }

// G returns the global radiation series
func (c *Calculator) G() MonthlySeries { return c.g.clone() }

// D returns the diffuse radiation series
func (c *Calculator) D() MonthlySeries { return c.d.clone() }

// B returns the direct-beam radiation series (G - D)
func (c *Calculator) B() MonthlySeries { return c.b.clone() }

// Series looks up one of the exportable series by its symbol
func (c *Calculator) Series(id SeriesID) (MonthlySeries, error) {
	switch id {
	case SeriesG:
		return c.G(), nil
	case SeriesD:
		return c.D(), nil
	case SeriesB:
		return c.B(), nil
	case SeriesR:
		return c.R(), nil
	case SeriesH:
		return c.H(), nil
	case SeriesN:
		return c.N(), nil
	case SeriesW:
		return c.W(), nil
	}
	return nil, &InvalidInputError{Field: "series", Msg: fmt.Sprintf("unknown series %q", id)}
}

func (s MonthlySeries) clone() MonthlySeries {
	return append(MonthlySeries(nil), s...)
}
