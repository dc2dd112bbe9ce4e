// services/stats_service.go - Statistics & Aggregation Engine
package services

import (
	"database/sql"
	"time"

	"pdcaportal/models"

	"gorm.io/gorm"
)

// StatsService computes read-only aggregates over cycles, evaluations and
// actions. It holds no cache; every call recomputes from current rows.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// CycleStatistics is the per-cycle summary used by the dashboard.
type CycleStatistics struct {
	EvaluationCount int                         `json:"evaluation_count"`
	AverageScore    float64                     `json:"average_score"`
	ActionCount     int                         `json:"action_count"`
	ActionStats     map[models.ActionStatus]int `json:"action_stats"`
}

// TrendPoint is one cycle's entry in the team trend series. Despite the
// weekly naming in the chart, the grouping key is the cycle.
type TrendPoint struct {
	CycleNumber     int     `json:"cycle_number"`
	WeekStart       string  `json:"week_start"`
	WeekEnd         string  `json:"week_end"`
	AverageScore    float64 `json:"average_score"`
	EvaluationCount int     `json:"evaluation_count"`
}

// GetCycleStatistics returns counts and the mean score for one cycle.
// All four action statuses are always present in ActionStats.
func (s *StatsService) GetCycleStatistics(cycleID uint) (*CycleStatistics, error) {
	stats := &CycleStatistics{
		ActionStats: map[models.ActionStatus]int{
			models.ActionStatusPending:    0,
			models.ActionStatusInProgress: 0,
			models.ActionStatusCompleted:  0,
			models.ActionStatusCancelled:  0,
		},
	}

	var evalCount int64
	if err := s.db.Model(&models.Evaluation{}).
		Where("cycle_id = ?", cycleID).
		Count(&evalCount).Error; err != nil {
		return nil, err
	}
	stats.EvaluationCount = int(evalCount)

	avg, err := s.GetAverageScore(cycleID)
	if err != nil {
		return nil, err
	}
	stats.AverageScore = avg

	var statusRows []struct {
		Status models.ActionStatus
		Count  int
	}
	if err := s.db.Model(&models.NextAction{}).
		Select("status, COUNT(*) AS count").
		Where("cycle_id = ?", cycleID).
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		stats.ActionStats[row.Status] = row.Count
		stats.ActionCount += row.Count
	}

	return stats, nil
}

// GetAverageScore returns the mean evaluation score for a cycle, 0.0 when
// the cycle has no evaluations.
func (s *StatsService) GetAverageScore(cycleID uint) (float64, error) {
	var avg sql.NullFloat64
	err := s.db.Model(&models.Evaluation{}).
		Select("AVG(score)").
		Where("cycle_id = ?", cycleID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

// GetTeamTrend returns the per-cycle trend series for a team, ordered by
// ascending cycle number. Cycles with no evaluations are excluded. The
// average comes from the store's aggregate, not a recomputation here.
func (s *StatsService) GetTeamTrend(teamID uint) ([]TrendPoint, error) {
	var rows []struct {
		CycleNumber     int
		WeekStart       time.Time
		WeekEnd         *time.Time
		AverageScore    float64
		EvaluationCount int
	}

	err := s.db.Model(&models.PDCACycle{}).
		Select("pdca_cycles.cycle_number, pdca_cycles.start_date AS week_start, pdca_cycles.end_date AS week_end, COALESCE(AVG(evaluations.score), 0) AS average_score, COUNT(evaluations.id) AS evaluation_count").
		Joins("LEFT JOIN evaluations ON evaluations.cycle_id = pdca_cycles.id").
		Where("pdca_cycles.team_id = ?", teamID).
		Group("pdca_cycles.cycle_number, pdca_cycles.start_date, pdca_cycles.end_date").
		Order("pdca_cycles.cycle_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0, len(rows))
	for _, row := range rows {
		if row.EvaluationCount == 0 {
			continue
		}

		weekEnd := row.WeekEnd
		if weekEnd == nil || weekEnd.Equal(row.WeekStart) {
			// Active cycle has no end date yet; one cycle spans a week.
			derived := row.WeekStart.AddDate(0, 0, 6)
			weekEnd = &derived
		}

		points = append(points, TrendPoint{
			CycleNumber:     row.CycleNumber,
			WeekStart:       row.WeekStart.Format("2006-01-02"),
			WeekEnd:         weekEnd.Format("2006-01-02"),
			AverageScore:    row.AverageScore,
			EvaluationCount: row.EvaluationCount,
		})
	}

	return points, nil
}
