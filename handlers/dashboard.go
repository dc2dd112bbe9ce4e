// handlers/dashboard.go - Dashboard aggregation endpoints
package handlers

import (
	"errors"

	"pdcaportal/middleware"
	"pdcaportal/services"

	"github.com/gofiber/fiber/v2"
)

// Dashboard returns the current cycle with its statistics, the newest
// evaluations, open actions, the trend series and the full cycle history.
// GET /api/dashboard
func Dashboard(c *fiber.Ctx) error {
	teamID, err := middleware.GetTeamID(c)
	if err != nil {
		return err
	}

	cycle, err := cycleService.GetCurrentCycle(teamID)
	if errors.Is(err, services.ErrNoActiveCycle) {
		// A team without an active cycle still gets an empty dashboard.
		return c.JSON(fiber.Map{
			"success":            true,
			"current_cycle":      nil,
			"statistics":         nil,
			"recent_evaluations": []interface{}{},
			"pending_actions":    []interface{}{},
		})
	}
	if err != nil {
		return respondError(c, err)
	}

	stats, err := statsService.GetCycleStatistics(cycle.ID)
	if err != nil {
		return respondError(c, err)
	}

	recent, err := reviewService.RecentEvaluations(cycle.ID, 5)
	if err != nil {
		return respondError(c, err)
	}

	open, err := reviewService.OpenActions(cycle.ID)
	if err != nil {
		return respondError(c, err)
	}

	trend, err := statsService.GetTeamTrend(teamID)
	if err != nil {
		return respondError(c, err)
	}

	cycles, err := cycleService.ListCycles(teamID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"current_cycle":      cycle,
		"statistics":         stats,
		"recent_evaluations": recent,
		"pending_actions":    open,
		"weekly_chart_data":  trend,
		"all_cycles":         cycles,
	})
}

// Trend returns the per-cycle trend series for charts.
// GET /api/dashboard/trend
func Trend(c *fiber.Ctx) error {
	teamID, err := middleware.GetTeamID(c)
	if err != nil {
		return err
	}

	trend, err := statsService.GetTeamTrend(teamID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"trend":   trend,
	})
}
