package handlers

import (
	"context"
	"log"
	"time"

	"salespulse/database"
	"salespulse/ingest"
	"salespulse/models"
	"salespulse/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateTransactionInput defines the expected input for recording a sale.
type CreateTransactionInput struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	ProductName string  `json:"productName"`
	Category    *string `json:"category,omitempty"`
	Quantity    float64 `json:"quantity"`
	Revenue     float64 `json:"revenue"`
	Cost        float64 `json:"cost"`
}

// HandleCreateTransaction records a single sales transaction.
// POST /api/v1/transactions
func HandleCreateTransaction(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	userID := c.Locals("userID").(string)

	var input CreateTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date, expected YYYY-MM-DD"})
	}
	if input.ProductName == "" || input.Quantity <= 0 || input.Revenue < 0 || input.Cost < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "productName is required, quantity must be positive, revenue and cost non-negative"})
	}

	query := `
		INSERT INTO transactions (user_id, date, product_name, category, quantity, revenue, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	tx := models.Transaction{
		UserID:      userID,
		Date:        date,
		ProductName: input.ProductName,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Revenue:     input.Revenue,
		Cost:        input.Cost,
	}
	if err := db.QueryRow(ctx, query, userID, date, input.ProductName, input.Category, input.Quantity, input.Revenue, input.Cost).Scan(&tx.ID, &tx.CreatedAt); err != nil {
		log.Printf("❌ [TRANSACTIONS] Error creating transaction: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create transaction"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": tx})
}

// HandleListTransactions lists the business's transactions, newest first.
// GET /api/v1/transactions?page=1&pageSize=50
func HandleListTransactions(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	userID := c.Locals("userID").(string)

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 50)
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize

	var totalItems int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE user_id = $1`, userID).Scan(&totalItems); err != nil {
		log.Printf("❌ [TRANSACTIONS] Error counting transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to retrieve transactions"})
	}

	query := `
		SELECT id, user_id, date, product_name, category, quantity, revenue, cost, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := db.Query(ctx, query, userID, pageSize, offset)
	if err != nil {
		log.Printf("❌ [TRANSACTIONS] Error listing transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to retrieve transactions"})
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Date, &tx.ProductName, &tx.Category, &tx.Quantity, &tx.Revenue, &tx.Cost, &tx.CreatedAt); err != nil {
			log.Printf("⚠️  [TRANSACTIONS] Error scanning transaction: %v", err)
			continue
		}
		transactions = append(transactions, tx)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"transactions": transactions,
			"pagination":   utils.CreatePagination(totalItems, page, pageSize),
		},
	})
}

// HandleUploadTransactions ingests a CSV export of sales transactions.
// POST /api/v1/transactions/upload (multipart field "file")
func HandleUploadTransactions(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	userID := c.Locals("userID").(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Missing file upload"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("❌ [UPLOAD] Error opening upload: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to read upload"})
	}
	defer file.Close()

	parsed, err := ingest.ParseTransactionsCSV(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if len(parsed) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "CSV contained no transactions"})
	}

	dbTx, err := db.Begin(ctx)
	if err != nil {
		log.Printf("❌ [UPLOAD] Error starting transaction: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to start database transaction"})
	}
	defer dbTx.Rollback(ctx)

	insertQuery := `
		INSERT INTO transactions (user_id, date, product_name, category, quantity, revenue, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, p := range parsed {
		if _, err := dbTx.Exec(ctx, insertQuery, userID, p.Date, p.ProductName, p.Category, p.Quantity, p.Revenue, p.Cost); err != nil {
			log.Printf("❌ [UPLOAD] Error inserting transaction: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to store transactions"})
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		log.Printf("❌ [UPLOAD] Error committing transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to store transactions"})
	}

	log.Printf("✅ [UPLOAD] Imported %d transactions for user %s", len(parsed), userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{"imported": len(parsed)}})
}

// loadTransactions fetches the full transaction history for one business.
// Analytics always recompute from raw transactions; derived artifacts are
// never persisted.
func loadTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, date, product_name, category, quantity, revenue, cost, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date ASC
	`
	rows, err := database.GetDB().Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Date, &tx.ProductName, &tx.Category, &tx.Quantity, &tx.Revenue, &tx.Cost, &tx.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
