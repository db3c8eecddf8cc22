package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type RegisterRequest struct {
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User represents a business owner account.
type User struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"businessName"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// --- Core Models ---

// Transaction is a single sales record as ingested from POS exports or CSV
// uploads. Revenue and cost are validated non-negative at ingestion; the
// analytics pipeline trusts them.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Date        time.Time `json:"date"`
	ProductName string    `json:"productName"`
	Category    *string   `json:"category,omitempty"`
	Quantity    float64   `json:"quantity"`
	Revenue     float64   `json:"revenue"`
	Cost        float64   `json:"cost"`
	CreatedAt   time.Time `json:"createdAt"`
}
