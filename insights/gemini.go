package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"salespulse/models"
)

// GeminiSource generates insights through the Gemini API. Any transport or
// parse failure is returned as an error so the synthesizer can fall back.
type GeminiSource struct {
	APIKey string
	Model  string
}

// NewGeminiSource returns a source bound to the given API key and model name.
func NewGeminiSource(apiKey, model string) *GeminiSource {
	if model == "" {
		model = "gemini-2.5-flash-lite"
	}
	return &GeminiSource{APIKey: apiKey, Model: model}
}

// Generate renders the metrics into a strict-JSON prompt, dispatches it to
// Gemini and parses the response.
func (g *GeminiSource) Generate(ctx context.Context, metrics models.InsightMetrics) (*models.InsightReport, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.Model)
	resp, err := model.GenerateContent(ctx, genai.Text(buildInsightPrompt(metrics)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate insights: %w", err)
	}

	return parseInsightResponse(resp)
}

// buildInsightPrompt creates a detailed prompt for the Gemini API.
func buildInsightPrompt(metrics models.InsightMetrics) string {
	jsonFormat := `{"insights":[{"category":"revenue|profitability|risk|opportunity|warning|general","priority":"high|medium|low","title":"string","description":"string","impact":"string","recommendation":"string"},...],"executiveSummary":"string"}`

	return fmt.Sprintf(`
        You are an expert business analyst for a small business. Based on the metrics below, produce 4 to 6 actionable insights and a short executive summary.

        **Business Metrics:**
        - Total Revenue: %.2f
        - Total Profit: %.2f
        - Profit Margin: %.4f
        - Top Product Revenue Share: %.4f
        - Top 3 Products Revenue Share: %.4f
        - Diversification Score: %.4f
        - Recent Monthly Trend: %s
        - Total-Period Growth Rate: %.4f
        - Revenue Anomalies Detected: %d
        - 30-Day Forecast Trend: %s
        - Business Health Score (0-100): %d

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure. Do not include any markdown formatting, backticks, or explanatory text before or after the JSON object.

        %s
    `,
		metrics.Totals.TotalRevenue,
		metrics.Totals.TotalProfit,
		metrics.Totals.ProfitMargin,
		metrics.Concentration.TopProductShare,
		metrics.Concentration.Top3ProductShare,
		metrics.Concentration.DiversificationScore,
		metrics.RecentTrend,
		metrics.GrowthRate,
		metrics.AnomalyCount,
		metrics.ForecastTrend,
		metrics.HealthScore,
		jsonFormat)
}

func extractJSON(rawString string) string {
	start := strings.Index(rawString, "{")
	end := strings.LastIndex(rawString, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return rawString[start : end+1]
}

// parseInsightResponse parses the JSON from Gemini into an insight report.
func parseInsightResponse(resp *genai.GenerateContentResponse) (*models.InsightReport, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content received from AI")
	}

	var geminiText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			geminiText += string(txt)
		}
	}
	if geminiText == "" {
		return nil, fmt.Errorf("no text content received from AI")
	}

	return parseInsightJSON(geminiText)
}

// parseInsightJSON cleans a raw model response down to its JSON object and
// unmarshals it.
func parseInsightJSON(raw string) (*models.InsightReport, error) {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return nil, fmt.Errorf("failed to parse AI response format")
	}

	var payload struct {
		Insights         []models.BusinessInsight `json:"insights"`
		ExecutiveSummary string                   `json:"executiveSummary"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse AI insight data: %w", err)
	}
	if len(payload.Insights) == 0 {
		return nil, fmt.Errorf("AI response contained no insights")
	}

	return &models.InsightReport{
		Insights:         payload.Insights,
		ExecutiveSummary: payload.ExecutiveSummary,
	}, nil
}
