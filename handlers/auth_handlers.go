package handlers

import (
	"context"
	"log"
	"time"

	"salespulse/config"
	"salespulse/database"
	"salespulse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// HandleRegister creates a new business account.
// POST /api/v1/auth/register
func HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	if req.Email == "" || req.Password == "" || req.BusinessName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Missing required fields (businessName, email, password)"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Could not process password"})
	}

	query := `
        INSERT INTO users (business_name, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING id, business_name, email, created_at, updated_at
    `

	var user models.User
	err = database.GetDB().QueryRow(context.Background(), query, req.BusinessName, req.Email, string(hashedPassword)).Scan(
		&user.ID, &user.BusinessName, &user.Email, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating user in database: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Could not create account"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": user})
}

// HandleLogin authenticates a user and returns a JWT token.
// POST /api/v1/auth/login
func HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	var user models.User
	var passwordHash string

	query := `
		SELECT id, business_name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1`

	err := database.GetDB().QueryRow(context.Background(), query, req.Email).Scan(
		&user.ID, &user.BusinessName, &user.Email, &passwordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
		}
		log.Printf("Database error during login for email %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Database error"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
	}

	token, err := createJWT(user.ID)
	if err != nil {
		log.Printf("Error creating JWT for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Could not sign token"})
	}

	return c.JSON(fiber.Map{"accessToken": token, "user": user})
}

func createJWT(userID string) (string, error) {
	claims := models.JwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
