package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salespulse/models"
)

func TestParseInsightJSON(t *testing.T) {
	raw := "Here is your analysis:\n```json\n" +
		`{"insights":[{"category":"risk","priority":"high","title":"Concentration","description":"d","impact":"i","recommendation":"r"}],"executiveSummary":"Summary."}` +
		"\n```"

	report, err := parseInsightJSON(raw)

	assert.NoError(t, err)
	assert.Len(t, report.Insights, 1)
	assert.Equal(t, "risk", report.Insights[0].Category)
	assert.Equal(t, "Summary.", report.ExecutiveSummary)
}

func TestParseInsightJSONRejectsGarbage(t *testing.T) {
	cases := []string{
		"no json here at all",
		"{not valid json}",
		`{"insights":[],"executiveSummary":"empty list"}`,
	}
	for _, raw := range cases {
		_, err := parseInsightJSON(raw)
		assert.Error(t, err, "input: %s", raw)
	}
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("prefix {\"a\":1} suffix"))
	assert.Equal(t, "", extractJSON("no braces"))
	assert.Equal(t, "", extractJSON("} reversed {"))
}

func TestBuildInsightPromptEmbedsMetrics(t *testing.T) {
	m := models.InsightMetrics{
		Totals:        models.SalesTotals{TotalRevenue: 1234.56, TotalProfit: 321.09, ProfitMargin: 0.2601},
		Concentration: models.RevenueConcentration{TopProductShare: 0.41, Top3ProductShare: 0.72, DiversificationScore: 0.28},
		RecentTrend:   "up",
		GrowthRate:    0.15,
		AnomalyCount:  3,
		ForecastTrend: "increasing",
		HealthScore:   72,
	}

	prompt := buildInsightPrompt(m)

	assert.Contains(t, prompt, "1234.56")
	assert.Contains(t, prompt, "0.2601")
	assert.Contains(t, prompt, "increasing")
	assert.Contains(t, prompt, "72")
	assert.Contains(t, prompt, "executiveSummary")
	assert.Contains(t, prompt, "minified JSON object")
}
