// services/stats_service_test.go
package services

import (
	"testing"
	"time"

	"pdcaportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCycleStatistics(t *testing.T) {
	db := newTestDB(t)
	team, user := seedTeam(t, db, "STATS1")
	reviews := NewReviewService(db)

	for _, score := range []int{7, 8, 9} {
		_, err := reviews.CreateEvaluation(user.ID, team.ID, score, "week went fine")
		require.NoError(t, err)
	}
	_, err := reviews.CreateNextAction(user.ID, team.ID, "daily standup", "2026-09-07")
	require.NoError(t, err)
	action, err := reviews.CreateNextAction(user.ID, team.ID, "write docs", "2026-09-08")
	require.NoError(t, err)
	require.NoError(t, reviews.UpdateActionStatus(action.ID, models.ActionStatusInProgress))

	cycle, err := NewCycleService(db).GetCurrentCycle(team.ID)
	require.NoError(t, err)

	stats, err := NewStatsService(db).GetCycleStatistics(cycle.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.EvaluationCount)
	assert.InDelta(t, 8.0, stats.AverageScore, 1e-9)
	assert.Equal(t, 2, stats.ActionCount)

	// All four statuses are always present.
	require.Len(t, stats.ActionStats, 4)
	assert.Equal(t, 1, stats.ActionStats[models.ActionStatusPending])
	assert.Equal(t, 1, stats.ActionStats[models.ActionStatusInProgress])
	assert.Equal(t, 0, stats.ActionStats[models.ActionStatusCompleted])
	assert.Equal(t, 0, stats.ActionStats[models.ActionStatusCancelled])
}

func TestGetCycleStatisticsEmptyCycle(t *testing.T) {
	db := newTestDB(t)
	team, _ := seedTeam(t, db, "STATS2")

	cycle, err := NewCycleService(db).GetCurrentCycle(team.ID)
	require.NoError(t, err)

	stats, err := NewStatsService(db).GetCycleStatistics(cycle.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.EvaluationCount)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.Equal(t, 0, stats.ActionCount)
	require.Len(t, stats.ActionStats, 4)
}

func TestGetAverageScoreEmpty(t *testing.T) {
	db := newTestDB(t)
	seedTeam(t, db, "STATS3")

	avg, err := NewStatsService(db).GetAverageScore(424242)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
}

func TestGetTeamTrend(t *testing.T) {
	db := newTestDB(t)
	team, user := seedTeam(t, db, "TREND1")
	cycles := NewCycleService(db)
	reviews := NewReviewService(db)
	stats := NewStatsService(db)

	// Cycle 1: two evaluations.
	_, err := reviews.CreateEvaluation(user.ID, team.ID, 6, "slow start")
	require.NoError(t, err)
	_, err = reviews.CreateEvaluation(user.ID, team.ID, 8, "picked up")
	require.NoError(t, err)

	first, err := cycles.GetCurrentCycle(team.ID)
	require.NoError(t, err)
	require.NoError(t, cycles.CompleteCycle(first.ID))

	// Cycle 2: left empty, must be excluded from the series.
	second, err := cycles.GetCurrentCycle(team.ID)
	require.NoError(t, err)
	require.NoError(t, cycles.CompleteCycle(second.ID))

	// Cycle 3: one evaluation, still active (no end date).
	_, err = reviews.CreateEvaluation(user.ID, team.ID, 9, "great week")
	require.NoError(t, err)

	trend, err := stats.GetTeamTrend(team.ID)
	require.NoError(t, err)

	require.Len(t, trend, 2)
	assert.Equal(t, 1, trend[0].CycleNumber)
	assert.Equal(t, 3, trend[1].CycleNumber)
	assert.InDelta(t, 7.0, trend[0].AverageScore, 1e-9)
	assert.Equal(t, 2, trend[0].EvaluationCount)
	assert.InDelta(t, 9.0, trend[1].AverageScore, 1e-9)

	// The active cycle has no end date; the week end is start+6 days.
	start, err := time.Parse("2006-01-02", trend[1].WeekStart)
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", trend[1].WeekEnd)
	require.NoError(t, err)
	assert.Equal(t, start.AddDate(0, 0, 6), end)
}

func TestGetTeamTrendNoEvaluations(t *testing.T) {
	db := newTestDB(t)
	team, _ := seedTeam(t, db, "TREND2")

	trend, err := NewStatsService(db).GetTeamTrend(team.ID)
	require.NoError(t, err)
	assert.Empty(t, trend)
}
