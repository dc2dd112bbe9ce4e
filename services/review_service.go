// services/review_service.go - Evaluation & Next Action Recording
package services

import (
	"errors"
	"strings"

	"pdcaportal/models"
	"pdcaportal/utils"

	"gorm.io/gorm"
)

// ReviewService validates and persists evaluations and next actions, always
// scoped to the team's currently active cycle.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateEvaluation records a user's score and reflection against the
// team's active cycle.
func (s *ReviewService) CreateEvaluation(userID, teamID uint, score int, reflection string) (*models.Evaluation, error) {
	var eval *models.Evaluation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		eval, txErr = createEvaluation(tx, userID, teamID, score, reflection)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return eval, nil
}

// CreateNextAction records a planned improvement task against the team's
// active cycle. Status always starts as pending.
func (s *ReviewService) CreateNextAction(userID, teamID uint, description, targetDate string) (*models.NextAction, error) {
	var action *models.NextAction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		action, txErr = createNextAction(tx, userID, teamID, description, targetDate)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return action, nil
}

// RecordWeeklyReview persists an evaluation and a next action as a single
// atomic operation: if the action fails after the evaluation insert, both
// roll back.
func (s *ReviewService) RecordWeeklyReview(userID, teamID uint, score int, reflection, description, targetDate string) (*models.Evaluation, *models.NextAction, error) {
	var (
		eval   *models.Evaluation
		action *models.NextAction
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		eval, txErr = createEvaluation(tx, userID, teamID, score, reflection)
		if txErr != nil {
			return txErr
		}
		action, txErr = createNextAction(tx, userID, teamID, description, targetDate)
		return txErr
	})
	if err != nil {
		return nil, nil, err
	}

	return eval, action, nil
}

// UpdateEvaluation edits the score and reflection of an evaluation owned by
// the given user.
func (s *ReviewService) UpdateEvaluation(evalID, userID uint, score int, reflection string) error {
	if verrs := validateEvaluation(score, reflection); len(verrs) > 0 {
		return verrs
	}

	var eval models.Evaluation
	if err := s.db.Where("id = ? AND user_id = ?", evalID, userID).First(&eval).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Model(&eval).Updates(map[string]interface{}{
		"score":      score,
		"reflection": strings.TrimSpace(reflection),
	}).Error
}

// UpdateActionStatus sets the status of a next action. Unknown statuses are
// rejected without touching the row. Any authenticated team member may
// update any action; there is no per-owner check.
func (s *ReviewService) UpdateActionStatus(actionID uint, status models.ActionStatus) error {
	if !models.ValidActionStatus(status) {
		return ValidationErrors{"status": "status must be one of pending, in_progress, completed, cancelled"}
	}

	var action models.NextAction
	if err := s.db.First(&action, actionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Model(&action).Update("status", status).Error
}

// ListEvaluations returns a team's evaluations with submitter preloaded,
// oldest first. A non-zero cycleID narrows the list to that cycle.
func (s *ReviewService) ListEvaluations(teamID, cycleID uint) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	query := s.db.Where("team_id = ?", teamID)
	if cycleID != 0 {
		query = query.Where("cycle_id = ?", cycleID)
	}
	err := query.Preload("User").Order("created_at ASC").Find(&evals).Error
	return evals, err
}

// RecentEvaluations returns the newest evaluations for a cycle.
func (s *ReviewService) RecentEvaluations(cycleID uint, limit int) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := s.db.Where("cycle_id = ?", cycleID).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&evals).Error
	return evals, err
}

// ListActions returns a team's next actions ordered by target date. A
// non-zero cycleID narrows the list to that cycle.
func (s *ReviewService) ListActions(teamID, cycleID uint) ([]models.NextAction, error) {
	var actions []models.NextAction
	query := s.db.Where("team_id = ?", teamID)
	if cycleID != 0 {
		query = query.Where("cycle_id = ?", cycleID)
	}
	err := query.Preload("User").Order("target_date ASC").Find(&actions).Error
	return actions, err
}

// OpenActions returns a cycle's pending and in-progress actions.
func (s *ReviewService) OpenActions(cycleID uint) ([]models.NextAction, error) {
	var actions []models.NextAction
	err := s.db.Where("cycle_id = ? AND status IN ?", cycleID,
		[]models.ActionStatus{models.ActionStatusPending, models.ActionStatusInProgress}).
		Preload("User").
		Order("target_date ASC").
		Find(&actions).Error
	return actions, err
}

// ================== TX-SCOPED WRITES ==================

func createEvaluation(tx *gorm.DB, userID, teamID uint, score int, reflection string) (*models.Evaluation, error) {
	cycle, err := activeCycle(tx, teamID)
	if err != nil {
		return nil, err
	}

	if verrs := validateEvaluation(score, reflection); len(verrs) > 0 {
		return nil, verrs
	}

	eval := &models.Evaluation{
		UserID:     userID,
		TeamID:     teamID,
		CycleID:    cycle.ID,
		Score:      score,
		Reflection: strings.TrimSpace(reflection),
	}
	if err := tx.Create(eval).Error; err != nil {
		return nil, err
	}
	return eval, nil
}

func createNextAction(tx *gorm.DB, userID, teamID uint, description, targetDate string) (*models.NextAction, error) {
	cycle, err := activeCycle(tx, teamID)
	if err != nil {
		return nil, err
	}

	verrs := ValidationErrors{}
	if !utils.Required(description) {
		verrs["description"] = "description is required"
	}
	date, ok := utils.ParseDate(targetDate)
	if targetDate == "" {
		verrs["target_date"] = "target date is required"
	} else if !ok {
		verrs["target_date"] = "target date must be a valid date (YYYY-MM-DD)"
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	action := &models.NextAction{
		TeamID:      teamID,
		CycleID:     cycle.ID,
		UserID:      userID,
		Description: strings.TrimSpace(description),
		TargetDate:  date,
		Status:      models.ActionStatusPending,
	}
	if err := tx.Create(action).Error; err != nil {
		return nil, err
	}
	return action, nil
}

func activeCycle(tx *gorm.DB, teamID uint) (*models.PDCACycle, error) {
	var cycle models.PDCACycle
	err := tx.Where("team_id = ? AND status = ?", teamID, models.CycleStatusActive).
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

func validateEvaluation(score int, reflection string) ValidationErrors {
	verrs := ValidationErrors{}
	if !utils.ValidScore(score) {
		verrs["score"] = "score must be between 0 and 10"
	}
	if !utils.Required(reflection) {
		verrs["reflection"] = "reflection is required"
	}
	return verrs
}
