// handlers/cycles.go - Cycle lifecycle endpoints
package handlers

import (
	"strconv"

	"pdcaportal/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentCycle returns the team's active cycle.
// GET /api/cycles/current
func GetCurrentCycle(c *fiber.Ctx) error {
	teamID, err := middleware.GetTeamID(c)
	if err != nil {
		return err
	}

	cycle, err := cycleService.GetCurrentCycle(teamID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"cycle":   cycle,
	})
}

// ListCycles returns all of the team's cycles, newest first.
// GET /api/cycles
func ListCycles(c *fiber.Ctx) error {
	teamID, err := middleware.GetTeamID(c)
	if err != nil {
		return err
	}

	cycles, err := cycleService.ListCycles(teamID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"cycles":  cycles,
		"count":   len(cycles),
	})
}

// CompleteCycle closes the given cycle and opens its successor.
// POST /api/cycles/:id/complete
func CompleteCycle(c *fiber.Ctx) error {
	teamID, err := middleware.GetTeamID(c)
	if err != nil {
		return err
	}

	cycleID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid cycle ID",
		})
	}

	if err := cycleService.CompleteCycle(uint(cycleID)); err != nil {
		return respondError(c, err)
	}

	// Return the freshly opened successor so clients can re-scope.
	next, err := cycleService.GetCurrentCycle(teamID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cycle completed",
		"cycle":   next,
	})
}

// GetCycleStatistics returns the per-cycle summary.
// GET /api/cycles/:id/statistics
func GetCycleStatistics(c *fiber.Ctx) error {
	cycleID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid cycle ID",
		})
	}

	stats, err := statsService.GetCycleStatistics(uint(cycleID))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"statistics": stats,
	})
}
