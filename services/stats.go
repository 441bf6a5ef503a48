package services

import (
	"fueltracker-api/models"
)

// AggregateCycle computes cycle-wide and per-user totals for one tank cycle.
// Cycle totals cover every supplied ride regardless of the owner's active
// flag. Per-user rows follow the iteration order of the users slice and are
// emitted only for users with at least one matching ride. The caller fills
// in CycleID and IsActive.
//
// Pure function, safe for concurrent use.
func AggregateCycle(rides []models.Ride, users []models.User, fuelPrice float64) models.CycleStats {
	var totalDistance, totalFuel float64
	type sums struct {
		distance float64
		fuel     float64
	}
	perUser := make(map[string]sums, len(users))

	for _, ride := range rides {
		totalDistance += ride.DistanceKm
		totalFuel += ride.FuelLiters
		s := perUser[ride.UserID]
		s.distance += ride.DistanceKm
		s.fuel += ride.FuelLiters
		perUser[ride.UserID] = s
	}

	userStats := make([]models.UserStat, 0, len(users))
	for _, user := range users {
		s := perUser[user.ID]
		if s.distance <= 0 && s.fuel <= 0 {
			continue
		}
		avgConsumption := 0.0
		if s.distance > 0 {
			avgConsumption = s.fuel * 100 / s.distance
		}
		userStats = append(userStats, models.UserStat{
			UserID:         user.ID,
			UserName:       user.Name,
			UserColor:      user.Color,
			TotalDistance:  Round2(s.distance),
			TotalFuel:      Round2(s.fuel),
			TotalCost:      Round2(s.fuel * fuelPrice),
			AvgConsumption: Round2(avgConsumption),
		})
	}

	return models.CycleStats{
		TotalDistance: Round2(totalDistance),
		TotalFuel:     Round2(totalFuel),
		TotalCost:     Round2(totalFuel * fuelPrice),
		UserStats:     userStats,
	}
}
