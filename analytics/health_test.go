package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salespulse/models"
)

func TestScoreHealthSaturation(t *testing.T) {
	// 34% margin saturates profitability, +50% growth saturates growth, zero
	// anomalies saturate stability, and an empty product list scores full
	// diversification.
	totals := models.SalesTotals{ProfitMargin: 0.34}
	monthly := []models.MonthlyRevenue{
		{Month: "2024-01", Revenue: 100},
		{Month: "2024-02", Revenue: 150},
	}

	metrics := ScoreHealth(totals, nil, monthly, 0)

	assert.Equal(t, 100, metrics.ProfitabilityScore)
	assert.Equal(t, 100, metrics.GrowthScore)
	assert.Equal(t, 100, metrics.StabilityScore)
	assert.Equal(t, 100, metrics.DiversificationScore)
	assert.Equal(t, 100, metrics.Score)
}

func TestScoreHealthComponents(t *testing.T) {
	totals := models.SalesTotals{TotalRevenue: 1000, ProfitMargin: 0.20}
	products := []models.ProductPerformance{
		{ProductName: "A", TotalRevenue: 400},
		{ProductName: "B", TotalRevenue: 300},
		{ProductName: "C", TotalRevenue: 200},
		{ProductName: "D", TotalRevenue: 100},
	}
	monthly := []models.MonthlyRevenue{
		{Month: "2024-01", Revenue: 500},
		{Month: "2024-02", Revenue: 500},
	}

	metrics := ScoreHealth(totals, products, monthly, 2)

	assert.Equal(t, 60, metrics.ProfitabilityScore) // 0.20 * 300
	assert.Equal(t, 50, metrics.GrowthScore)        // zero growth maps to midpoint
	assert.Equal(t, 80, metrics.StabilityScore)     // 2 anomalies cost 20
	assert.Equal(t, 10, metrics.DiversificationScore)
	// 0.30*60 + 0.25*50 + 0.25*80 + 0.20*10 = 52.5, rounds to 53
	assert.Equal(t, 53, metrics.Score)
}

func TestScoreHealthFloorsAtZero(t *testing.T) {
	totals := models.SalesTotals{TotalRevenue: 100, ProfitMargin: 0}
	products := []models.ProductPerformance{{ProductName: "Only", TotalRevenue: 100}}
	monthly := []models.MonthlyRevenue{
		{Month: "2024-01", Revenue: 100},
		{Month: "2024-02", Revenue: 10}, // -90% growth, clamps to 0
	}

	metrics := ScoreHealth(totals, products, monthly, 20)

	assert.Equal(t, 0, metrics.ProfitabilityScore)
	assert.Equal(t, 0, metrics.GrowthScore)
	assert.Equal(t, 0, metrics.StabilityScore) // 20 anomalies floor at 0
	assert.Equal(t, 0, metrics.DiversificationScore)
	assert.Equal(t, 0, metrics.Score)
}

func TestScoreHealthAlwaysInRange(t *testing.T) {
	cases := []struct {
		margin       float64
		anomalyCount int
		monthly      []models.MonthlyRevenue
	}{
		{0, 0, nil},
		{5.0, 0, nil}, // absurd margin still clamps
		{0.5, 100, []models.MonthlyRevenue{{Revenue: 1}, {Revenue: 1000}}},
		{0.01, 3, []models.MonthlyRevenue{{Revenue: 1000}, {Revenue: 1}}},
	}

	for _, tc := range cases {
		metrics := ScoreHealth(models.SalesTotals{ProfitMargin: tc.margin}, nil, tc.monthly, tc.anomalyCount)
		for _, score := range []int{metrics.Score, metrics.ProfitabilityScore, metrics.GrowthScore, metrics.StabilityScore, metrics.DiversificationScore} {
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}
