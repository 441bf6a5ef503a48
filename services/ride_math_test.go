package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 {
	return &v
}

func TestReconcileRideDerivesFuel(t *testing.T) {
	d, c, fl, err := ReconcileRide(f(500), f(6.5), nil)
	require.NoError(t, err)
	assert.Equal(t, 500.0, d)
	assert.Equal(t, 6.5, c)
	assert.Equal(t, 32.5, fl)
}

func TestReconcileRideDerivesDistance(t *testing.T) {
	d, c, fl, err := ReconcileRide(nil, f(6.5), f(32.5))
	require.NoError(t, err)
	assert.Equal(t, 500.0, d)
	assert.Equal(t, 6.5, c)
	assert.Equal(t, 32.5, fl)
}

func TestReconcileRideDerivesConsumption(t *testing.T) {
	d, c, fl, err := ReconcileRide(f(500), nil, f(32.5))
	require.NoError(t, err)
	assert.Equal(t, 500.0, d)
	assert.Equal(t, 6.5, c)
	assert.Equal(t, 32.5, fl)
}

func TestReconcileRideRoundsDerivedValues(t *testing.T) {
	// 123.4 * 5.67 / 100 = 6.99678 -> 7.0
	_, _, fl, err := ReconcileRide(f(123.4), f(5.67), nil)
	require.NoError(t, err)
	assert.Equal(t, 7.0, fl)

	// 10 * 100 / 3 = 333.333...
	d, _, _, err := ReconcileRide(nil, f(3), f(10))
	require.NoError(t, err)
	assert.Equal(t, 333.33, d)

	// 7 * 100 / 300 = 2.333...
	_, c, _, err := ReconcileRide(f(300), nil, f(7))
	require.NoError(t, err)
	assert.Equal(t, 2.33, c)
}

func TestReconcileRideAcceptsConsistentTriple(t *testing.T) {
	d, c, fl, err := ReconcileRide(f(500), f(6.5), f(32.55))
	require.NoError(t, err)
	assert.Equal(t, 500.0, d)
	assert.Equal(t, 6.5, c)
	assert.Equal(t, 32.55, fl)
}

func TestReconcileRideRejectsInconsistentTriple(t *testing.T) {
	_, _, _, err := ReconcileRide(f(500), f(6.5), f(40.0))
	require.Error(t, err)

	var inconsistent *InconsistentDataError
	require.ErrorAs(t, err, &inconsistent)
	assert.Equal(t, 500.0, inconsistent.Distance)
	assert.Equal(t, 6.5, inconsistent.Consumption)
	assert.Equal(t, 40.0, inconsistent.Fuel)
	assert.Equal(t, 32.5, inconsistent.ExpectedFuel)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "6.5")
	assert.Contains(t, err.Error(), "32.5")
	assert.Contains(t, err.Error(), "40")
}

func TestReconcileRideToleranceBoundary(t *testing.T) {
	// delta exactly 0.1 is accepted, anything beyond is not
	_, _, _, err := ReconcileRide(f(100), f(7), f(7.1))
	assert.NoError(t, err)

	_, _, _, err = ReconcileRide(f(100), f(7), f(7.25))
	var inconsistent *InconsistentDataError
	assert.ErrorAs(t, err, &inconsistent)
}

func TestReconcileRideInsufficientData(t *testing.T) {
	cases := []struct {
		name                        string
		distance, consumption, fuel *float64
	}{
		{"only distance", f(500), nil, nil},
		{"only consumption", nil, f(6.5), nil},
		{"only fuel", nil, nil, f(32.5)},
		{"nothing", nil, nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := ReconcileRide(tc.distance, tc.consumption, tc.fuel)
			assert.True(t, errors.Is(err, ErrInsufficientData))
		})
	}
}

func TestReconcileRideZeroDistance(t *testing.T) {
	_, _, _, err := ReconcileRide(f(0), nil, f(10))
	assert.True(t, errors.Is(err, ErrZeroDistance))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 32.5, Round2(32.5))
	assert.Equal(t, 2.33, Round2(2.333333))
	assert.Equal(t, 2.35, Round2(2.345)) // half away from zero
	assert.Equal(t, -2.35, Round2(-2.345))
	assert.Equal(t, 0.0, Round2(0))
}
