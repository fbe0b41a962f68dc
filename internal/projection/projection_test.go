package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_Determinism(t *testing.T) {
	t.Parallel()

	in := Input{Initial: 10000, Monthly: 1500, Years: 15, GrowthPct: 7.5, EscalationPct: 5}
	a, err := Simulate(in)
	require.NoError(t, err)
	b, err := Simulate(in)
	require.NoError(t, err)

	// bit-identical, not merely within tolerance
	assert.Equal(t, a, b)
}

func TestSimulate_ZeroGrowthClosedForm(t *testing.T) {
	t.Parallel()

	in := Input{Initial: 5000, Monthly: 800, Years: 7}
	res, err := Simulate(in)
	require.NoError(t, err)

	want := 5000 + 800*float64(7*12)
	assert.InDelta(t, want, res.FinalValue, 1e-6)
	assert.InDelta(t, want, res.TotalContributions, 1e-6)
	assert.InDelta(t, 0, res.Gain(), 1e-6)
}

func TestSimulate_EscalationTiming(t *testing.T) {
	t.Parallel()

	res, err := Simulate(Input{Monthly: 1000, Years: 2, EscalationPct: 10})
	require.NoError(t, err)

	// months 1-12 contribute 1000, months 13-24 contribute 1100
	require.Len(t, res.Series, 2)
	assert.InDelta(t, 12000, res.Series[0].Balance, 1e-9)
	assert.InDelta(t, 12000+1100*12, res.Series[1].Balance, 1e-9)
	assert.InDelta(t, 1000*12+1100*12, res.TotalContributions, 1e-9)
}

func TestSimulate_AnnuityScenario(t *testing.T) {
	t.Parallel()

	res, err := Simulate(Input{Monthly: 2500, Years: 10, GrowthPct: 6})
	require.NoError(t, err)

	require.Len(t, res.Series, 10)
	for i := 0; i < len(res.Series); i++ {
		assert.Equal(t, i+1, res.Series[i].Year)
		if i > 0 {
			assert.Greater(t, res.Series[i].Balance, res.Series[i-1].Balance)
		}
	}

	// future value of an annuity with growth applied in the month of
	// each deposit: c * ((1+r)^n - 1) / r * (1+r)
	r := 0.06 / 12
	n := 120.0
	want := 2500 * (math.Pow(1+r, n) - 1) / r * (1 + r)
	assert.InEpsilon(t, want, res.FinalValue, 1e-9)
	assert.InDelta(t, 2500*12*10, res.TotalContributions, 1e-6)
}

func TestSimulate_MonotonicInYears(t *testing.T) {
	t.Parallel()

	prev := 0.0
	for years := 1; years <= 30; years++ {
		res, err := Simulate(Input{Initial: 1000, Monthly: 200, Years: years, GrowthPct: 4})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.FinalValue, prev, "years=%d", years)
		prev = res.FinalValue
	}
}

func TestSimulate_AllZeroInputs(t *testing.T) {
	t.Parallel()

	res, err := Simulate(Input{Years: 3})
	require.NoError(t, err)

	require.Len(t, res.Series, 3)
	for _, p := range res.Series {
		assert.Zero(t, p.Balance)
	}
	assert.Zero(t, res.FinalValue)
	assert.Zero(t, res.TotalContributions)
}

func TestSimulate_YearsFlooredToOne(t *testing.T) {
	t.Parallel()

	res, err := Simulate(Input{Monthly: 100, Years: 0})
	require.NoError(t, err)
	require.Len(t, res.Series, 1)
	assert.InDelta(t, 1200, res.FinalValue, 1e-9)
}

func TestSimulate_RejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   Input
	}{
		{"negative initial", Input{Initial: -1, Years: 1}},
		{"negative monthly", Input{Monthly: -5, Years: 1}},
		{"negative growth", Input{GrowthPct: -0.1, Years: 1}},
		{"negative escalation", Input{EscalationPct: -2, Years: 1}},
		{"nan amount", Input{Initial: math.NaN(), Years: 1}},
		{"infinite monthly", Input{Monthly: math.Inf(1), Years: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Simulate(tc.in)
			require.Nil(t, res)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
