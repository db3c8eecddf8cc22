// Package insights turns the numeric analytics outputs into a prioritized
// list of human-readable findings. The primary source asks Gemini for them;
// any failure there falls back to a deterministic rule set, so the caller
// always receives a well-formed report.
package insights

import (
	"context"
	"log"
	"time"

	"salespulse/models"
)

// Source produces an insight report from a metrics snapshot.
type Source interface {
	Generate(ctx context.Context, metrics models.InsightMetrics) (*models.InsightReport, error)
}

// Synthesizer tries the primary source once and falls back on any error.
// There is no retry; the fallback is part of the contract, the AI call is a
// convenience layer.
type Synthesizer struct {
	Primary  Source
	Fallback Source
}

// NewSynthesizer wires the rule-based fallback behind an optional primary
// source. Passing a nil primary makes every report rule-based.
func NewSynthesizer(primary Source) *Synthesizer {
	return &Synthesizer{Primary: primary, Fallback: &RuleSource{}}
}

// Synthesize returns a complete insight report. Primary-source failures are
// logged and swallowed, never propagated.
func (s *Synthesizer) Synthesize(ctx context.Context, metrics models.InsightMetrics) *models.InsightReport {
	var report *models.InsightReport

	if s.Primary != nil {
		var err error
		report, err = s.Primary.Generate(ctx, metrics)
		if err != nil {
			log.Printf("⚠️  [INSIGHTS] AI generation failed, using rule-based fallback: %v", err)
			report = nil
		}
	}

	if report == nil {
		// RuleSource never returns an error.
		report, _ = s.Fallback.Generate(ctx, metrics)
	}

	report.KeyMetrics = models.KeyMetrics{
		TotalRevenue:  metrics.Totals.TotalRevenue,
		TotalProfit:   metrics.Totals.TotalProfit,
		ProfitMargin:  metrics.Totals.ProfitMargin,
		HealthScore:   metrics.HealthScore,
		AnomalyCount:  metrics.AnomalyCount,
		ForecastTrend: metrics.ForecastTrend,
	}
	report.GeneratedAt = time.Now().UTC()
	return report
}
