package analytics

import (
	"math"

	"salespulse/models"
)

// Health score component weights.
const (
	weightProfitability   = 0.30
	weightGrowth          = 0.25
	weightStability       = 0.25
	weightDiversification = 0.20
)

// ScoreHealth derives the composite 0-100 business health score from the
// aggregated totals, the product mix, the monthly series and the number of
// detected anomalies.
//
// The weighted overall score is computed from the unrounded component values;
// the four components are rounded independently for the response, so
// recomputing the weighted sum from the returned components can drift by a
// point. That ordering is part of the contract.
func ScoreHealth(totals models.SalesTotals, products []models.ProductPerformance, monthly []models.MonthlyRevenue, anomalyCount int) models.BusinessHealthMetrics {
	concentration := Concentration(products, totals.TotalRevenue)
	growthRate := GrowthRate(monthly)

	// A 33%+ margin saturates profitability.
	profitability := clampScore(totals.ProfitMargin * 300)

	// Maps -50%..+50% total-period growth onto 0..100.
	growth := clampScore((growthRate + 0.5) * 100)

	// Each anomaly costs 10 points.
	stability := clampScore(100 - float64(anomalyCount)*10)

	diversification := clampScore(concentration.DiversificationScore * 100)

	overall := clampScore(
		profitability*weightProfitability +
			growth*weightGrowth +
			stability*weightStability +
			diversification*weightDiversification)

	return models.BusinessHealthMetrics{
		Score:                int(math.Round(overall)),
		ProfitabilityScore:   int(math.Round(profitability)),
		GrowthScore:          int(math.Round(growth)),
		StabilityScore:       int(math.Round(stability)),
		DiversificationScore: int(math.Round(diversification)),
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
