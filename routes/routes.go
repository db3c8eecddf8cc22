package routes

import (
	"salespulse/handlers"
	"salespulse/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/register", handlers.HandleRegister)
	auth.Post("/login", handlers.HandleLogin)

	// --- Transaction Routes ---
	transactions := api.Group("/transactions", middleware.JWTMiddleware)
	transactions.Post("/", handlers.HandleCreateTransaction)
	transactions.Get("/", handlers.HandleListTransactions)
	transactions.Post("/upload", handlers.HandleUploadTransactions)

	// --- Analytics Routes ---
	analytics := api.Group("/analytics", middleware.JWTMiddleware)
	analytics.Get("/summary", handlers.HandleGetAnalyticsSummary)
	analytics.Get("/forecast", handlers.HandleGetForecast)
	analytics.Get("/anomalies", handlers.HandleGetAnomalies)
	analytics.Get("/health", handlers.HandleGetHealthScore)
	analytics.Get("/insights", handlers.HandleGetInsights)
}
