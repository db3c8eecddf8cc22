package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"salespulse/middleware"
)

func TestAnalyticsRouteNotFound(t *testing.T) {
	app := fiber.New()
	// we don't register analytics routes here; expect 404
	req := httptest.NewRequest("GET", "/api/v1/analytics/summary", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestAnalyticsRequiresAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/api/v1/analytics/summary", middleware.JWTMiddleware, HandleGetAnalyticsSummary)

	req := httptest.NewRequest("GET", "/api/v1/analytics/summary", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/v1/analytics/summary", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, _ = app.Test(req)
	assert.Equal(t, 401, resp.StatusCode)
}
