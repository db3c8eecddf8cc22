package analytics

import (
	"math"
	"sort"
	"time"

	"salespulse/models"
	"salespulse/utils"
)

// DefaultForecastDays is the horizon used when the caller does not pass one.
const DefaultForecastDays = 30

// Forecast fits an ordinary least-squares line over the daily revenue series
// and projects daysToForecast future points with a 95% confidence band. Each
// observed day gets an integer x-index, so missing calendar days compress the
// timeline rather than widening it.
//
// Trend classification uses the literal rule set from the original model: a
// fit with R2 below 0.3 is always "stable", otherwise a slope beyond +-0.5
// revenue units per day decides the direction. The 0.5 threshold is absolute,
// not normalized to the data's scale.
func Forecast(daily []models.DailyRevenue, daysToForecast int) models.ForecastResult {
	if daysToForecast <= 0 {
		daysToForecast = DefaultForecastDays
	}

	result := models.ForecastResult{
		Forecast: []models.ForecastPoint{},
		Trend:    "stable",
	}

	n := len(daily)
	if n < 2 {
		return result
	}

	series := make([]models.DailyRevenue, n)
	copy(series, daily)
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })

	var sumX, sumY, sumXY, sumX2 float64
	for i, d := range series {
		x := float64(i)
		sumX += x
		sumY += d.Revenue
		sumXY += x * d.Revenue
		sumX2 += x * x
	}

	fn := float64(n)
	denom := fn*sumX2 - sumX*sumX
	if denom == 0 {
		return result
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	meanY := sumY / fn
	var ssRes, ssTot float64
	for i, d := range series {
		predicted := slope*float64(i) + intercept
		ssRes += (d.Revenue - predicted) * (d.Revenue - predicted)
		ssTot += (d.Revenue - meanY) * (d.Revenue - meanY)
	}
	r2 := 0.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
		if r2 < 0 {
			r2 = 0
		}
	} else {
		// A flat series is explained perfectly by a flat line.
		r2 = 1
	}

	stdErr := 0.0
	if n > 2 {
		stdErr = math.Sqrt(ssRes / float64(n-2))
	}

	lastDate, err := time.Parse("2006-01-02", series[n-1].Date)
	if err != nil {
		return result
	}

	for i := 1; i <= daysToForecast; i++ {
		x := float64(n + i - 1)
		predicted := slope*x + intercept
		if predicted < 0 {
			predicted = 0
		}
		lower := predicted - 1.96*stdErr
		if lower < 0 {
			lower = 0
		}
		upper := predicted + 1.96*stdErr

		result.Forecast = append(result.Forecast, models.ForecastPoint{
			Date:      lastDate.AddDate(0, 0, i).Format("2006-01-02"),
			Predicted: utils.Round2(predicted),
			Confidence: models.ForecastConfidence{
				Lower: utils.Round2(lower),
				Upper: utils.Round2(upper),
			},
		})
	}

	result.Slope = utils.Round4(slope)
	result.Intercept = utils.Round2(intercept)
	result.R2 = utils.Round4(r2)

	switch {
	case r2 < 0.3:
		result.Trend = "stable"
	case slope > 0.5:
		result.Trend = "increasing"
	case slope < -0.5:
		result.Trend = "decreasing"
	default:
		result.Trend = "stable"
	}

	return result
}

// MovingAverage smooths the daily revenue series with a trailing window
// (default 7 days). The window shrinks near the start of the series; there is
// no look-ahead.
func MovingAverage(daily []models.DailyRevenue, window int) []models.DailyRevenue {
	if window <= 0 {
		window = 7
	}

	series := make([]models.DailyRevenue, len(daily))
	copy(series, daily)
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })

	smoothed := make([]models.DailyRevenue, 0, len(series))
	for i, d := range series {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		var revSum, costSum float64
		for j := start; j <= i; j++ {
			revSum += series[j].Revenue
			costSum += series[j].Cost
		}
		span := float64(i - start + 1)
		point := models.DailyRevenue{
			Date:    d.Date,
			Revenue: utils.Round2(revSum / span),
			Cost:    utils.Round2(costSum / span),
		}
		point.Profit = utils.Round2(point.Revenue - point.Cost)
		smoothed = append(smoothed, point)
	}
	return smoothed
}

// MeasureAccuracy compares past forecast points against observed revenue,
// matched by date. Dates with no actual, or an actual of zero, are skipped so
// the percentage error never divides by zero.
func MeasureAccuracy(forecast []models.ForecastPoint, actuals []models.DailyRevenue) models.ForecastAccuracy {
	actualByDate := make(map[string]float64, len(actuals))
	for _, a := range actuals {
		actualByDate[a.Date] = a.Revenue
	}

	var absPctSum, sqErrSum float64
	matched := 0
	for _, p := range forecast {
		actual, ok := actualByDate[p.Date]
		if !ok || actual == 0 {
			continue
		}
		absPctSum += math.Abs(actual-p.Predicted) / actual
		sqErrSum += (actual - p.Predicted) * (actual - p.Predicted)
		matched++
	}

	if matched == 0 {
		return models.ForecastAccuracy{}
	}
	return models.ForecastAccuracy{
		MAPE:        utils.Round2(absPctSum / float64(matched) * 100),
		RMSE:        utils.Round2(math.Sqrt(sqErrSum / float64(matched))),
		MatchedDays: matched,
	}
}
