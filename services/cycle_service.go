// services/cycle_service.go - PDCA Cycle Lifecycle Manager
package services

import (
	"errors"
	"time"

	"pdcaportal/models"

	"gorm.io/gorm"
)

type CycleService struct {
	db *gorm.DB
}

func NewCycleService(db *gorm.DB) *CycleService {
	return &CycleService{db: db}
}

// GetCurrentCycle returns the active cycle with the highest cycle number
// for the team, or ErrNoActiveCycle if none exists.
func (s *CycleService) GetCurrentCycle(teamID uint) (*models.PDCACycle, error) {
	var cycle models.PDCACycle
	err := s.db.Where("team_id = ? AND status = ?", teamID, models.CycleStatusActive).
		Order("cycle_number DESC").
		First(&cycle).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveCycle
	}
	if err != nil {
		return nil, err
	}

	return &cycle, nil
}

// CompleteCycle marks the cycle completed and creates its successor in a
// single transaction. The completion update is conditional on the cycle
// still being active, so a repeated or concurrent call fails cleanly with
// ErrCycleNotActive instead of spawning a second successor.
func (s *CycleService) CompleteCycle(cycleID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var cycle models.PDCACycle
		if err := tx.First(&cycle, cycleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCycleNotActive
			}
			return err
		}

		now := time.Now().UTC()
		res := tx.Model(&models.PDCACycle{}).
			Where("id = ? AND status = ?", cycleID, models.CycleStatusActive).
			Updates(map[string]interface{}{
				"status":   models.CycleStatusCompleted,
				"end_date": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCycleNotActive
		}

		next := models.PDCACycle{
			TeamID:      cycle.TeamID,
			CycleNumber: cycle.CycleNumber + 1,
			Status:      models.CycleStatusActive,
			StartDate:   now,
		}
		return tx.Create(&next).Error
	})
}

// ListCycles returns all cycles for the team, newest first.
func (s *CycleService) ListCycles(teamID uint) ([]models.PDCACycle, error) {
	var cycles []models.PDCACycle
	err := s.db.Where("team_id = ?", teamID).
		Order("cycle_number DESC").
		Find(&cycles).Error
	return cycles, err
}

// createFirstCycle inserts cycle 1 for a freshly created team. Callers run
// it inside the team-creation transaction so a failure aborts both.
func createFirstCycle(tx *gorm.DB, teamID uint) error {
	cycle := models.PDCACycle{
		TeamID:      teamID,
		CycleNumber: 1,
		Status:      models.CycleStatusActive,
		StartDate:   time.Now().UTC(),
	}
	return tx.Create(&cycle).Error
}
