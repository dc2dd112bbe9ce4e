// handlers/reviews.go - Weekly review composite endpoint
package handlers

import (
	"pdcaportal/middleware"

	"github.com/gofiber/fiber/v2"
)

type WeeklyReviewRequest struct {
	Score       int    `json:"score"`
	Reflection  string `json:"reflection"`
	Description string `json:"description"`
	TargetDate  string `json:"target_date"`
}

// RecordWeeklyReview persists an evaluation and a next action as one
// atomic operation.
// POST /api/reviews
func RecordWeeklyReview(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := middleware.GetTeamID(c)
	if err != nil {
		return err
	}

	var req WeeklyReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	eval, action, err := reviewService.RecordWeeklyReview(
		userID, teamID, req.Score, req.Reflection, req.Description, req.TargetDate)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":    true,
		"message":    "Weekly review recorded",
		"evaluation": eval,
		"action":     action,
	})
}
