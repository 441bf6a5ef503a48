package services

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientData is returned when fewer than two ride measurements
// are supplied, so the third cannot be derived.
var ErrInsufficientData = errors.New("at least two of distance, consumption, or fuel must be provided")

// ErrZeroDistance is returned when consumption should be derived but the
// supplied distance is zero.
var ErrZeroDistance = errors.New("distance cannot be zero when calculating consumption")

// InconsistentDataError reports three supplied measurements that disagree
// with each other beyond the accepted tolerance.
type InconsistentDataError struct {
	Distance     float64
	Consumption  float64
	Fuel         float64
	ExpectedFuel float64 // rounded to 2 decimals
}

func (e *InconsistentDataError) Error() string {
	return fmt.Sprintf("inconsistent ride data: based on distance (%v) and consumption (%v), fuel should be approx %v, but got %v",
		e.Distance, e.Consumption, e.ExpectedFuel, e.Fuel)
}

// fuelTolerance is the accepted absolute difference, in liters, between a
// supplied fuel volume and the one implied by distance and consumption.
const fuelTolerance = 0.1

// Round2 rounds to two decimal places, half away from zero. Every value the
// reconciler and aggregator emit goes through this single helper so rounding
// stays consistent across the API.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ReconcileRide validates and completes a set of ride measurements. Inputs
// are nil when absent, in canonical units (km, L/100km, L). At least two
// must be present; with exactly two the third is derived, with all three the
// supplied fuel is checked against distance*consumption/100. The returned
// triple is fully populated and rounded to 2 decimals.
//
// Pure function, safe for concurrent use.
func ReconcileRide(distance, consumption, fuel *float64) (float64, float64, float64, error) {
	present := 0
	for _, v := range []*float64{distance, consumption, fuel} {
		if v != nil {
			present++
		}
	}
	if present < 2 {
		return 0, 0, 0, ErrInsufficientData
	}

	switch {
	case present == 3:
		expected := *distance * *consumption / 100
		if math.Abs(*fuel-expected) > fuelTolerance {
			return 0, 0, 0, &InconsistentDataError{
				Distance:     *distance,
				Consumption:  *consumption,
				Fuel:         *fuel,
				ExpectedFuel: Round2(expected),
			}
		}
		return Round2(*distance), Round2(*consumption), Round2(*fuel), nil

	case fuel == nil:
		derived := *distance * *consumption / 100
		return Round2(*distance), Round2(*consumption), Round2(derived), nil

	case distance == nil:
		derived := *fuel * 100 / *consumption
		return Round2(derived), Round2(*consumption), Round2(*fuel), nil

	default: // consumption == nil
		if *distance == 0 {
			return 0, 0, 0, ErrZeroDistance
		}
		derived := *fuel * 100 / *distance
		return Round2(*distance), Round2(derived), Round2(*fuel), nil
	}
}
