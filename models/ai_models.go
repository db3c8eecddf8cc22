package models

import "time"

// Insight categories.
const (
	InsightCategoryRevenue       = "revenue"
	InsightCategoryProfitability = "profitability"
	InsightCategoryRisk          = "risk"
	InsightCategoryOpportunity   = "opportunity"
	InsightCategoryWarning       = "warning"
	InsightCategoryGeneral       = "general"
)

// Insight priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// BusinessInsight is one prioritized, human-readable finding.
type BusinessInsight struct {
	Category       string `json:"category"`
	Priority       string `json:"priority"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Impact         string `json:"impact"`
	Recommendation string `json:"recommendation"`
}

// InsightMetrics is the numeric snapshot the synthesizer works from. Identical
// inputs must always yield identical fallback output.
type InsightMetrics struct {
	Totals        SalesTotals          `json:"totals"`
	Concentration RevenueConcentration `json:"concentration"`
	RecentTrend   string               `json:"recentTrend"` // up, down, stable
	GrowthRate    float64              `json:"growthRate"`
	AnomalyCount  int                  `json:"anomalyCount"`
	ForecastTrend string               `json:"forecastTrend"`
	HealthScore   int                  `json:"healthScore"`
}

// KeyMetrics is the condensed metric block echoed back with every report.
type KeyMetrics struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalProfit   float64 `json:"totalProfit"`
	ProfitMargin  float64 `json:"profitMargin"`
	HealthScore   int     `json:"healthScore"`
	AnomalyCount  int     `json:"anomalyCount"`
	ForecastTrend string  `json:"forecastTrend"`
}

// InsightReport is the complete synthesizer output, identical in shape whether
// the AI path or the rule-based fallback produced it.
type InsightReport struct {
	Insights         []BusinessInsight `json:"insights"`
	ExecutiveSummary string            `json:"executiveSummary"`
	KeyMetrics       KeyMetrics        `json:"keyMetrics"`
	GeneratedAt      time.Time         `json:"generatedAt"`
}
