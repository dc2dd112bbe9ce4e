// handlers/evaluations.go - Evaluation recording endpoints
package handlers

import (
	"strconv"

	"pdcaportal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateEvaluationRequest struct {
	Score      int    `json:"score"`
	Reflection string `json:"reflection"`
}

// CreateEvaluation records a score and reflection against the active cycle.
// POST /api/evaluations
func CreateEvaluation(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := middleware.GetTeamID(c)
	if err != nil {
		return err
	}

	var req CreateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	eval, err := reviewService.CreateEvaluation(userID, teamID, req.Score, req.Reflection)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":    true,
		"evaluation": eval,
	})
}

// ListEvaluations returns the team's evaluations, optionally scoped to one
// cycle via ?cycle_id=.
// GET /api/evaluations
func ListEvaluations(c *fiber.Ctx) error {
	teamID, err := middleware.GetTeamID(c)
	if err != nil {
		return err
	}

	var cycleID uint
	if raw := c.Query("cycle_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid cycle ID",
			})
		}
		cycleID = uint(parsed)
	}

	evals, err := reviewService.ListEvaluations(teamID, cycleID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"evaluations": evals,
		"count":       len(evals),
	})
}
