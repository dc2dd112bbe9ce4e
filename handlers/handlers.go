// handlers/handlers.go - Handler wiring and shared error mapping
package handlers

import (
	"errors"
	"log"

	"pdcaportal/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	authService   *services.AuthService
	cycleService  *services.CycleService
	statsService  *services.StatsService
	reviewService *services.ReviewService
)

// Init wires the service layer. Must be called after the database is up.
func Init(db *gorm.DB) {
	if db == nil {
		panic("Database not initialized before handlers.Init")
	}
	authService = services.NewAuthService(db)
	cycleService = services.NewCycleService(db)
	statsService = services.NewStatsService(db)
	reviewService = services.NewReviewService(db)
}

// respondError translates service errors into JSON responses. Validation
// failures come back as a field->message map; persistence errors are logged
// and masked behind a generic failure.
func respondError(c *fiber.Ctx, err error) error {
	if verrs, ok := services.AsValidationErrors(err); ok {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"errors":  verrs,
		})
	}

	switch {
	case errors.Is(err, services.ErrNoActiveCycle):
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   "No active cycle for team",
		})
	case errors.Is(err, services.ErrCycleNotActive):
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   "Cycle not found or already completed",
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Not found",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid credentials",
		})
	}

	log.Printf("❌ Internal error: %v", err)
	return c.Status(500).JSON(fiber.Map{
		"success": false,
		"error":   "An error occurred. Please try again later.",
	})
}
