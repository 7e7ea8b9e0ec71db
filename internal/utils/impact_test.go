package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ecobin-backend/internal/domain"
)

func TestComputeImpact(t *testing.T) {
	t.Run("AggregatesAcrossCategories", func(t *testing.T) {
		counts := map[domain.WasteCategory]int32{
			domain.WastePlastic: 10,
			domain.WasteMetal:   5,
		}

		summary := ComputeImpact(counts)
		assert.Equal(t, int32(15), summary.ItemsRecycled)
		assert.InDelta(t, 10*0.5+5*1.2, summary.CO2SavedKg, 0.001)
		assert.InDelta(t, 10*2.1+5*0.8, summary.WaterSavedL, 0.001)
		assert.InDelta(t, 10*0.8+5*1.5, summary.EnergySavedKWh, 0.001)
	})

	t.Run("TreesEquivalentRoundsDown", func(t *testing.T) {
		// 50 metal items save 60 kg CO2, just under 3 tree-years of 21.8 kg.
		counts := map[domain.WasteCategory]int32{domain.WasteMetal: 50}

		summary := ComputeImpact(counts)
		assert.Equal(t, int32(2), summary.TreesEquivalent)
	})

	t.Run("EmptyCounts", func(t *testing.T) {
		summary := ComputeImpact(nil)
		assert.Equal(t, int32(0), summary.ItemsRecycled)
		assert.Equal(t, int32(0), summary.TreesEquivalent)
		assert.Zero(t, summary.CO2SavedKg)
	})

	t.Run("UnknownCategoryIgnored", func(t *testing.T) {
		counts := map[domain.WasteCategory]int32{
			domain.WasteCategory("styrofoam"): 100,
			domain.WasteGlass:                 1,
		}

		summary := ComputeImpact(counts)
		assert.Equal(t, int32(1), summary.ItemsRecycled)
	})
}

func TestImpactFor(t *testing.T) {
	factors, ok := ImpactFor(domain.WastePlastic)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, factors.CO2Kg, 0.001)

	_, ok = ImpactFor(domain.WasteCategory("unknown"))
	assert.False(t, ok)
}
