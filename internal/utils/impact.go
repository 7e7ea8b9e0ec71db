package utils

import (
	"math"

	"ecobin-backend/internal/domain"
)

// Per-item environmental savings by waste category. Sourced from standard
// recycling impact estimates; items are counted per recorded session.
var impactFactors = map[domain.WasteCategory]domain.ImpactFactors{
	domain.WastePlastic: {CO2Kg: 0.5, WaterL: 2.1, EnergyKWh: 0.8},
	domain.WastePaper:   {CO2Kg: 0.3, WaterL: 1.5, EnergyKWh: 0.4},
	domain.WasteMetal:   {CO2Kg: 1.2, WaterL: 0.8, EnergyKWh: 1.5},
	domain.WasteGlass:   {CO2Kg: 0.2, WaterL: 0.5, EnergyKWh: 0.3},
	domain.WasteOrganic: {CO2Kg: 0.1, WaterL: 0.3, EnergyKWh: 0.1},
}

// Average CO2 absorbed by one tree per year, in kg.
const treeCO2PerYearKg = 21.8

// ImpactFor looks up the per-item savings for a category.
func ImpactFor(category domain.WasteCategory) (domain.ImpactFactors, bool) {
	factors, ok := impactFactors[category]
	return factors, ok
}

// ComputeImpact aggregates environmental savings from per-category session
// counts.
func ComputeImpact(counts map[domain.WasteCategory]int32) *domain.ImpactSummary {
	summary := &domain.ImpactSummary{}
	for category, count := range counts {
		factors, ok := impactFactors[category]
		if !ok {
			continue
		}
		n := float64(count)
		summary.ItemsRecycled += count
		summary.CO2SavedKg += factors.CO2Kg * n
		summary.WaterSavedL += factors.WaterL * n
		summary.EnergySavedKWh += factors.EnergyKWh * n
	}
	summary.TreesEquivalent = int32(math.Floor(summary.CO2SavedKg / treeCO2PerYearKg))
	return summary
}
