package radiation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosolrad/internal/dataset"
	"github.com/alexiusacademia/gosolrad/internal/radiation"
)

func TestSummaryGlobal(t *testing.T) {
	calc, err := radiation.New(dataset.Reference())
	require.NoError(t, err)

	s, err := calc.Summary(radiation.SeriesG)
	require.NoError(t, err)

	assert.Equal(t, "Jun", s.MaxMonth)
	assert.Equal(t, "Dec", s.MinMonth)
	assert.InDelta(t, 405.25, s.Max, 0.005)
	assert.InDelta(t, 214.10, s.Min, 0.005)

	var sum float64
	for _, v := range calc.G() {
		sum += v
	}
	assert.InDelta(t, sum/12, s.Mean, 1e-9)
	assert.Greater(t, s.StdDev, 0.0)
}

func TestSummaryInputSeries(t *testing.T) {
	calc, err := radiation.New(dataset.Reference())
	require.NoError(t, err)

	s, err := calc.Summary(radiation.SeriesH)
	require.NoError(t, err)
	assert.Equal(t, "Nov", s.MaxMonth)
	assert.Equal(t, "Jul", s.MinMonth)
}

func TestDiffuseFraction(t *testing.T) {
	calc, err := radiation.New(dataset.Reference())
	require.NoError(t, err)

	kd, err := calc.DiffuseFraction()
	require.NoError(t, err)
	for i, v := range kd {
		assert.InDelta(t, calc.D()[i]/calc.G()[i], v, 1e-12)
	}

	mean, err := calc.AnnualMeanDiffuseFraction()
	require.NoError(t, err)
	assert.True(t, mean > 0 && mean < 1)
}

func TestDiffuseFractionZeroGlobal(t *testing.T) {
	ds := dataset.Reference()
	ds.G0[0] = 0

	calc, err := radiation.New(ds)
	require.NoError(t, err)

	_, err = calc.AnnualMeanDiffuseFraction()
	var domain *radiation.DomainError
	require.True(t, errors.As(err, &domain))
	assert.Equal(t, "Jan", domain.Month)
}
