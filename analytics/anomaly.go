package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"salespulse/models"
	"salespulse/utils"
)

// DefaultAnomalyThreshold is the z-score magnitude at which a day is flagged.
const DefaultAnomalyThreshold = 2.0

var severityRank = map[string]int{
	"high":   3,
	"medium": 2,
	"low":    1,
}

// DetectAnomalies runs a z-score analysis over the daily revenue series using
// the population mean and standard deviation. A flat series (stdDev 0) yields
// no anomalies regardless of threshold. Anomalies are returned sorted by
// severity descending, then |z| descending.
func DetectAnomalies(daily []models.DailyRevenue, threshold float64) models.AnomalyReport {
	if threshold <= 0 {
		threshold = DefaultAnomalyThreshold
	}

	report := models.AnomalyReport{
		Anomalies: []models.Anomaly{},
		Threshold: threshold,
	}
	if len(daily) == 0 {
		return report
	}

	var sum float64
	for _, d := range daily {
		sum += d.Revenue
	}
	mean := sum / float64(len(daily))

	var varianceSum float64
	for _, d := range daily {
		diff := d.Revenue - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(daily)))

	report.Mean = utils.Round2(mean)
	report.StdDev = utils.Round2(stdDev)
	if stdDev == 0 {
		return report
	}

	for _, d := range daily {
		zScore := (d.Revenue - mean) / stdDev
		if math.Abs(zScore) < threshold {
			continue
		}

		anomalyType := "drop"
		if zScore > 0 {
			anomalyType = "spike"
		}

		severity := "low"
		switch absZ := math.Abs(zScore); {
		case absZ >= 3:
			severity = "high"
		case absZ >= 2.5:
			severity = "medium"
		}

		report.Anomalies = append(report.Anomalies, models.Anomaly{
			Date:            d.Date,
			Revenue:         d.Revenue,
			ExpectedRevenue: utils.Round2(mean),
			Deviation:       utils.Round2(d.Revenue - mean),
			ZScore:          utils.Round4(zScore),
			Severity:        severity,
			Type:            anomalyType,
			Explanation:     explainAnomaly(d.Date, d.Revenue, mean, anomalyType),
		})
	}

	sort.SliceStable(report.Anomalies, func(i, j int) bool {
		if severityRank[report.Anomalies[i].Severity] != severityRank[report.Anomalies[j].Severity] {
			return severityRank[report.Anomalies[i].Severity] > severityRank[report.Anomalies[j].Severity]
		}
		return math.Abs(report.Anomalies[i].ZScore) > math.Abs(report.Anomalies[j].ZScore)
	})

	return report
}

// explainAnomaly builds the human-readable sentence shown on the dashboard.
func explainAnomaly(date string, revenue, mean float64, anomalyType string) string {
	weekday := "that day"
	if t, err := time.Parse("2006-01-02", date); err == nil {
		weekday = t.Weekday().String()
	}

	pct := 0.0
	if mean != 0 {
		pct = math.Abs(revenue-mean) / mean * 100
	}

	if anomalyType == "spike" {
		return fmt.Sprintf("Revenue on %s was %.1f%% above the daily average, likely driven by strong sales or a promotion.", weekday, pct)
	}
	return fmt.Sprintf("Revenue on %s was %.1f%% below the daily average, possibly due to reduced foot traffic or an operational issue.", weekday, pct)
}

// DetectAnomalyPatterns finds maximal runs of same-type anomalies where
// consecutive dates are at most 2 calendar days apart. Only runs of length
// 2 or more are reported.
func DetectAnomalyPatterns(anomalies []models.Anomaly) []models.AnomalyPattern {
	patterns := []models.AnomalyPattern{}
	if len(anomalies) < 2 {
		return patterns
	}

	byDate := make([]models.Anomaly, len(anomalies))
	copy(byDate, anomalies)
	sort.Slice(byDate, func(i, j int) bool { return byDate[i].Date < byDate[j].Date })

	start := 0
	for i := 1; i <= len(byDate); i++ {
		if i < len(byDate) && byDate[i].Type == byDate[start].Type && daysBetween(byDate[i-1].Date, byDate[i].Date) <= 2 {
			continue
		}
		if length := i - start; length >= 2 {
			patterns = append(patterns, models.AnomalyPattern{
				StartDate: byDate[start].Date,
				EndDate:   byDate[i-1].Date,
				Length:    length,
				Type:      byDate[start].Type,
			})
		}
		start = i
	}

	return patterns
}

// AnomalyFrequency is the share of days flagged as anomalous.
func AnomalyFrequency(anomalyCount, totalDays int) float64 {
	if totalDays == 0 {
		return 0
	}
	return utils.Round4(float64(anomalyCount) / float64(totalDays))
}

// AnomalyFrequencyPercent is AnomalyFrequency expressed as a percentage.
func AnomalyFrequencyPercent(anomalyCount, totalDays int) float64 {
	if totalDays == 0 {
		return 0
	}
	return utils.Round2(float64(anomalyCount) / float64(totalDays) * 100)
}

func daysBetween(from, to string) int {
	t1, err1 := time.Parse("2006-01-02", from)
	t2, err2 := time.Parse("2006-01-02", to)
	if err1 != nil || err2 != nil {
		return math.MaxInt32
	}
	return int(t2.Sub(t1).Hours() / 24)
}
