package models

// DailyRevenue holds revenue, cost and profit totals for one calendar day.
// Dates with no transactions produce no entry.
type DailyRevenue struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

// MonthlyRevenue holds totals for one calendar month.
type MonthlyRevenue struct {
	Month        string  `json:"month"` // YYYY-MM
	Revenue      float64 `json:"revenue"`
	Cost         float64 `json:"cost"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
}

// ProductPerformance aggregates all transactions for one product name
// (case-sensitive exact match).
type ProductPerformance struct {
	ProductName      string  `json:"productName"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalCost        float64 `json:"totalCost"`
	TotalProfit      float64 `json:"totalProfit"`
	ProfitMargin     float64 `json:"profitMargin"`
	Quantity         float64 `json:"quantity"`
	TransactionCount int     `json:"transactionCount"`
}

// SalesTotals sums the full transaction set.
type SalesTotals struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalCost        float64 `json:"totalCost"`
	TotalProfit      float64 `json:"totalProfit"`
	ProfitMargin     float64 `json:"profitMargin"`
	TransactionCount int     `json:"transactionCount"`
}

// SalesAggregate is the full output of the aggregation pass.
type SalesAggregate struct {
	Daily    []DailyRevenue       `json:"daily"`
	Monthly  []MonthlyRevenue     `json:"monthly"`
	Products []ProductPerformance `json:"products"`
	Totals   SalesTotals          `json:"totals"`
}

// RevenueConcentration measures how much revenue the leading products hold.
// DiversificationScore is 1 minus the top-3 share (1 = perfectly diversified).
type RevenueConcentration struct {
	TopProductShare      float64 `json:"topProductShare"`
	Top3ProductShare     float64 `json:"top3ProductShare"`
	DiversificationScore float64 `json:"diversificationScore"`
}

// Anomaly flags one day whose revenue deviates abnormally from the series mean.
type Anomaly struct {
	Date            string  `json:"date"`
	Revenue         float64 `json:"revenue"`
	ExpectedRevenue float64 `json:"expectedRevenue"`
	Deviation       float64 `json:"deviation"`
	ZScore          float64 `json:"zScore"`
	Severity        string  `json:"severity"` // high, medium, low
	Type            string  `json:"type"`     // spike, drop
	Explanation     string  `json:"explanation"`
}

// AnomalyReport is the output of a detection pass over the daily series.
type AnomalyReport struct {
	Anomalies []Anomaly `json:"anomalies"`
	Mean      float64   `json:"mean"`
	StdDev    float64   `json:"stdDev"`
	Threshold float64   `json:"threshold"`
}

// AnomalyPattern is a run of same-type anomalies on near-consecutive days.
type AnomalyPattern struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Length    int    `json:"length"`
	Type      string `json:"type"`
}

// ForecastPoint is one projected future day with a 95% confidence band.
type ForecastPoint struct {
	Date       string             `json:"date"`
	Predicted  float64            `json:"predicted"`
	Confidence ForecastConfidence `json:"confidence"`
}

type ForecastConfidence struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// ForecastResult carries the fitted regression line and its projection.
type ForecastResult struct {
	Forecast  []ForecastPoint `json:"forecast"`
	Slope     float64         `json:"slope"`
	Intercept float64         `json:"intercept"`
	R2        float64         `json:"r2"`
	Trend     string          `json:"trend"` // increasing, decreasing, stable
}

// ForecastAccuracy compares past predictions against observed revenue.
type ForecastAccuracy struct {
	MAPE        float64 `json:"mape"`
	RMSE        float64 `json:"rmse"`
	MatchedDays int     `json:"matchedDays"`
}

// BusinessHealthMetrics is the weighted composite score and its components,
// all 0-100 integers.
type BusinessHealthMetrics struct {
	Score                int `json:"score"`
	ProfitabilityScore   int `json:"profitabilityScore"`
	GrowthScore          int `json:"growthScore"`
	StabilityScore       int `json:"stabilityScore"`
	DiversificationScore int `json:"diversificationScore"`
}
