package models

// UserStat is one driver's share of a cycle. Rows are emitted in the
// iteration order of the user collection handed to the aggregator.
type UserStat struct {
	UserID         string  `json:"user_id"`
	UserName       string  `json:"user_name"`
	UserColor      string  `json:"user_color"`
	TotalDistance  float64 `json:"total_distance"`
	TotalFuel      float64 `json:"total_fuel"`
	TotalCost      float64 `json:"total_cost"`
	AvgConsumption float64 `json:"avg_consumption"` // L/100km, 0 when no distance
}

// CycleStats is the aggregated view of a tank cycle.
type CycleStats struct {
	CycleID       string     `json:"cycle_id"`
	IsActive      bool       `json:"is_active"`
	TotalDistance float64    `json:"total_distance"`
	TotalFuel     float64    `json:"total_fuel"`
	TotalCost     float64    `json:"total_cost"`
	UserStats     []UserStat `json:"user_stats"`
}
