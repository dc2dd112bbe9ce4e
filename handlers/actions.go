// handlers/actions.go - Next action endpoints
package handlers

import (
	"strconv"

	"pdcaportal/middleware"
	"pdcaportal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateActionRequest struct {
	Description string `json:"description"`
	TargetDate  string `json:"target_date"`
}

type UpdateActionStatusRequest struct {
	Status string `json:"status"`
}

// CreateNextAction records a planned task against the active cycle.
// POST /api/actions
func CreateNextAction(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	teamID, err := middleware.GetTeamID(c)
	if err != nil {
		return err
	}

	var req CreateActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	action, err := reviewService.CreateNextAction(userID, teamID, req.Description, req.TargetDate)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"action":  action,
	})
}

// ListActions returns the team's next actions, optionally scoped to one
// cycle via ?cycle_id=.
// GET /api/actions
func ListActions(c *fiber.Ctx) error {
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

	actions, err := reviewService.ListActions(teamID, cycleID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"actions": actions,
		"count":   len(actions),
	})
}

// UpdateActionStatus moves an action to a new status.
// PUT /api/actions/:id/status
func UpdateActionStatus(c *fiber.Ctx) error {
	actionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid action ID",
		})
	}

	var req UpdateActionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := reviewService.UpdateActionStatus(uint(actionID), models.ActionStatus(req.Status)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Status updated",
	})
}
