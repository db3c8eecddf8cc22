package insights

import (
	"context"
	"fmt"
	"strings"

	"salespulse/models"
)

const maxFallbackInsights = 6

// RuleSource is the deterministic fallback: identical metrics always yield an
// identical insight list and executive summary. No randomness, no network.
type RuleSource struct{}

// Generate applies the fixed rule set in a fixed order and caps the result at
// six insights. The error return is always nil; it exists to satisfy Source.
func (r *RuleSource) Generate(_ context.Context, m models.InsightMetrics) (*models.InsightReport, error) {
	var insights []models.BusinessInsight

	if m.Concentration.Top3ProductShare > 0.70 {
		insights = append(insights, models.BusinessInsight{
			Category:       models.InsightCategoryRisk,
			Priority:       models.PriorityHigh,
			Title:          "Revenue concentrated in few products",
			Description:    fmt.Sprintf("Your top 3 products account for %.1f%% of total revenue.", m.Concentration.Top3ProductShare*100),
			Impact:         "A dip in demand for a single product could significantly hurt overall revenue.",
			Recommendation: "Broaden the product mix or grow sales of secondary products to reduce dependency.",
		})
	}

	if m.Totals.ProfitMargin < 0.15 {
		insights = append(insights, models.BusinessInsight{
			Category:       models.InsightCategoryWarning,
			Priority:       models.PriorityHigh,
			Title:          "Profit margins are thin",
			Description:    fmt.Sprintf("Overall profit margin is %.1f%%, below the 15%% comfort level.", m.Totals.ProfitMargin*100),
			Impact:         "Thin margins leave little buffer against cost increases or slow periods.",
			Recommendation: "Review supplier costs and pricing on your lowest-margin products.",
		})
	} else if m.Totals.ProfitMargin > 0.30 {
		insights = append(insights, models.BusinessInsight{
			Category:       models.InsightCategoryProfitability,
			Priority:       models.PriorityMedium,
			Title:          "Strong profit margins",
			Description:    fmt.Sprintf("Overall profit margin is %.1f%%, well above typical small-business levels.", m.Totals.ProfitMargin*100),
			Impact:         "Healthy margins give room to invest in growth.",
			Recommendation: "Consider reinvesting margin into marketing or inventory for top sellers.",
		})
	}

	switch m.RecentTrend {
	case "up":
		insights = append(insights, models.BusinessInsight{
			Category:       models.InsightCategoryOpportunity,
			Priority:       models.PriorityMedium,
			Title:          "Revenue is trending up",
			Description:    "The most recent month shows revenue growth over the prior month.",
			Impact:         "Momentum can compound if supported.",
			Recommendation: "Ensure stock levels and staffing can keep up with rising demand.",
		})
	case "down":
		insights = append(insights, models.BusinessInsight{
			Category:       models.InsightCategoryWarning,
			Priority:       models.PriorityHigh,
			Title:          "Revenue is trending down",
			Description:    "The most recent month shows a revenue decline over the prior month.",
			Impact:         "A sustained decline erodes cash flow and profitability.",
			Recommendation: "Investigate the decline's cause and consider promotions to recover demand.",
		})
	}

	if m.AnomalyCount > 5 {
		insights = append(insights, models.BusinessInsight{
			Category:       models.InsightCategoryRisk,
			Priority:       models.PriorityMedium,
			Title:          "Revenue is unusually volatile",
			Description:    fmt.Sprintf("%d days deviated abnormally from your average daily revenue.", m.AnomalyCount),
			Impact:         "Volatile revenue makes planning and cash management harder.",
			Recommendation: "Review the flagged days for one-off events versus recurring patterns.",
		})
	} else if m.AnomalyCount == 0 {
		insights = append(insights, models.BusinessInsight{
			Category:       models.InsightCategoryProfitability,
			Priority:       models.PriorityLow,
			Title:          "Revenue is stable",
			Description:    "No abnormal revenue days were detected over the analyzed period.",
			Impact:         "Predictable revenue simplifies planning.",
			Recommendation: "Use the stable baseline to test growth initiatives with clear before/after comparisons.",
		})
	}

	if m.HealthScore >= 80 {
		insights = append(insights, models.BusinessInsight{
			Category:       models.InsightCategoryOpportunity,
			Priority:       models.PriorityLow,
			Title:          "Business health is excellent",
			Description:    fmt.Sprintf("The composite health score is %d out of 100.", m.HealthScore),
			Impact:         "A strong foundation supports expansion.",
			Recommendation: "This is a good position from which to expand product lines or hours.",
		})
	} else if m.HealthScore < 50 {
		insights = append(insights, models.BusinessInsight{
			Category:       models.InsightCategoryWarning,
			Priority:       models.PriorityHigh,
			Title:          "Business health needs attention",
			Description:    fmt.Sprintf("The composite health score is %d out of 100.", m.HealthScore),
			Impact:         "Multiple weak fundamentals compound each other.",
			Recommendation: "Focus first on the lowest-scoring component: profitability, growth, stability or diversification.",
		})
	}

	if len(insights) > maxFallbackInsights {
		insights = insights[:maxFallbackInsights]
	}
	if insights == nil {
		insights = []models.BusinessInsight{}
	}

	return &models.InsightReport{
		Insights:         insights,
		ExecutiveSummary: executiveSummary(m.HealthScore, insights),
	}, nil
}

// executiveSummary opens with a sentence keyed on the health-score band and
// closes with the lower-cased titles of the high-priority findings. With no
// high-priority findings the priorities clause is simply empty.
func executiveSummary(healthScore int, insights []models.BusinessInsight) string {
	var opening string
	switch {
	case healthScore >= 70:
		opening = fmt.Sprintf("Your business is in good shape with a health score of %d/100.", healthScore)
	case healthScore >= 50:
		opening = fmt.Sprintf("Your business is in moderate shape with a health score of %d/100.", healthScore)
	default:
		opening = fmt.Sprintf("Your business needs urgent attention with a health score of %d/100.", healthScore)
	}

	var highTitles []string
	for _, ins := range insights {
		if ins.Priority == models.PriorityHigh {
			highTitles = append(highTitles, strings.ToLower(ins.Title))
		}
	}

	return fmt.Sprintf("%s Priority areas: %s.", opening, strings.Join(highTitles, ", "))
}
