package domain

// ActivityReport is the admin summary view over the ledger tables.
type ActivityReport struct {
	TotalAccounts      int32                   `json:"total_accounts"`
	TotalSessions      int32                   `json:"total_sessions"`
	TotalPointsAwarded int64                   `json:"total_points_awarded"`
	TotalPointsSpent   int64                   `json:"total_points_spent"`
	SessionsByCategory map[WasteCategory]int32 `json:"sessions_by_category"`
	RedemptionsByStatus map[RedemptionStatus]int32 `json:"redemptions_by_status"`
}

// ImpactFactors are per-item environmental savings for one waste category.
type ImpactFactors struct {
	CO2Kg     float64 `json:"co2_kg"`
	WaterL    float64 `json:"water_l"`
	EnergyKWh float64 `json:"energy_kwh"`
}

// ImpactSummary aggregates environmental savings over an account's sessions.
type ImpactSummary struct {
	ItemsRecycled   int32   `json:"items_recycled"`
	CO2SavedKg      float64 `json:"co2_saved_kg"`
	WaterSavedL     float64 `json:"water_saved_l"`
	EnergySavedKWh  float64 `json:"energy_saved_kwh"`
	TreesEquivalent int32   `json:"trees_equivalent"`
}
