package handlers

import (
	"context"
	"log"

	"salespulse/analytics"
	"salespulse/config"
	"salespulse/insights"
	"salespulse/models"

	"github.com/gofiber/fiber/v2"
)

// HandleGetAnalyticsSummary returns the full dashboard payload: rollups,
// totals, concentration, growth, health score and the anomaly count, all
// recomputed from the raw transaction history.
// GET /api/v1/analytics/summary
func HandleGetAnalyticsSummary(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	transactions, err := loadTransactions(context.Background(), userID)
	if err != nil {
		log.Printf("❌ [ANALYTICS] Error loading transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load transactions"})
	}

	agg := analytics.Aggregate(transactions)
	concentration := analytics.Concentration(agg.Products, agg.Totals.TotalRevenue)
	growthRate := analytics.GrowthRate(agg.Monthly)
	anomalyReport := analytics.DetectAnomalies(agg.Daily, analytics.DefaultAnomalyThreshold)
	health := analytics.ScoreHealth(agg.Totals, agg.Products, agg.Monthly, len(anomalyReport.Anomalies))

	log.Printf("📊 [ANALYTICS] Summary for user %s: %d transactions, %d days, health %d",
		userID, len(transactions), len(agg.Daily), health.Score)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"totals":         agg.Totals,
		"daily":          agg.Daily,
		"monthly":        agg.Monthly,
		"topProducts":    analytics.TopProducts(agg.Products, 5),
		"bottomProducts": analytics.BottomProducts(agg.Products, 5),
		"concentration":  concentration,
		"growthRate":     growthRate,
		"anomalyCount":   len(anomalyReport.Anomalies),
		"health":         health,
	}})
}

// HandleGetForecast projects daily revenue over a configurable horizon.
// GET /api/v1/analytics/forecast?days=30
func HandleGetForecast(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	days := c.QueryInt("days", analytics.DefaultForecastDays)
	if days <= 0 || days > 365 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "days must be between 1 and 365"})
	}

	transactions, err := loadTransactions(context.Background(), userID)
	if err != nil {
		log.Printf("❌ [ANALYTICS] Error loading transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load transactions"})
	}

	agg := analytics.Aggregate(transactions)
	forecast := analytics.Forecast(agg.Daily, days)
	smoothed := analytics.MovingAverage(agg.Daily, 7)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"forecast": forecast,
		"history":  agg.Daily,
		"smoothed": smoothed,
	}})
}

// HandleGetAnomalies flags abnormal revenue days and consecutive-run patterns.
// GET /api/v1/analytics/anomalies?threshold=2.0
func HandleGetAnomalies(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	threshold := c.QueryFloat("threshold", analytics.DefaultAnomalyThreshold)
	if threshold <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "threshold must be positive"})
	}

	transactions, err := loadTransactions(context.Background(), userID)
	if err != nil {
		log.Printf("❌ [ANALYTICS] Error loading transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load transactions"})
	}

	agg := analytics.Aggregate(transactions)
	report := analytics.DetectAnomalies(agg.Daily, threshold)
	patterns := analytics.DetectAnomalyPatterns(report.Anomalies)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"report":              report,
		"patterns":            patterns,
		"frequency":           analytics.AnomalyFrequency(len(report.Anomalies), len(agg.Daily)),
		"frequencyPercentage": analytics.AnomalyFrequencyPercent(len(report.Anomalies), len(agg.Daily)),
	}})
}

// HandleGetHealthScore returns the composite business health metrics.
// GET /api/v1/analytics/health
func HandleGetHealthScore(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	transactions, err := loadTransactions(context.Background(), userID)
	if err != nil {
		log.Printf("❌ [ANALYTICS] Error loading transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load transactions"})
	}

	agg := analytics.Aggregate(transactions)
	anomalyReport := analytics.DetectAnomalies(agg.Daily, analytics.DefaultAnomalyThreshold)
	health := analytics.ScoreHealth(agg.Totals, agg.Products, agg.Monthly, len(anomalyReport.Anomalies))

	return c.JSON(fiber.Map{"success": true, "data": health})
}

// HandleGetInsights runs the full pipeline and synthesizes prioritized
// findings, via Gemini when configured, otherwise via the deterministic
// rule set. AI failures fall back silently; this endpoint never 502s on
// the AI's account.
// GET /api/v1/analytics/insights
func HandleGetInsights(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	transactions, err := loadTransactions(context.Background(), userID)
	if err != nil {
		log.Printf("❌ [ANALYTICS] Error loading transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load transactions"})
	}

	agg := analytics.Aggregate(transactions)
	concentration := analytics.Concentration(agg.Products, agg.Totals.TotalRevenue)
	anomalyReport := analytics.DetectAnomalies(agg.Daily, analytics.DefaultAnomalyThreshold)
	forecast := analytics.Forecast(agg.Daily, analytics.DefaultForecastDays)
	health := analytics.ScoreHealth(agg.Totals, agg.Products, agg.Monthly, len(anomalyReport.Anomalies))

	metrics := models.InsightMetrics{
		Totals:        agg.Totals,
		Concentration: concentration,
		RecentTrend:   analytics.RecentTrend(agg.Monthly),
		GrowthRate:    analytics.GrowthRate(agg.Monthly),
		AnomalyCount:  len(anomalyReport.Anomalies),
		ForecastTrend: forecast.Trend,
		HealthScore:   health.Score,
	}

	var primary insights.Source
	if config.AppConfig.GeminiAPIKey != "" {
		primary = insights.NewGeminiSource(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	}
	report := insights.NewSynthesizer(primary).Synthesize(c.UserContext(), metrics)

	return c.JSON(fiber.Map{"success": true, "data": report})
}
