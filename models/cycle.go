// models/cycle.go
package models

import "time"

type CycleStatus string

const (
	CycleStatusActive    CycleStatus = "active"
	CycleStatusCompleted CycleStatus = "completed"
)

// PDCACycle is one bounded review period for a team. Cycle numbers are
// monotonic per team starting at 1; at most one cycle per team is active
// at any time (enforced by a partial unique index, see database/migrate.go).
type PDCACycle struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	TeamID      uint        `json:"team_id" gorm:"not null;index"`
	Team        *Team       `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	CycleNumber int         `json:"cycle_number" gorm:"not null"`
	Status      CycleStatus `json:"status" gorm:"not null;default:'active';index"`
	StartDate   time.Time   `json:"start_date" gorm:"not null"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (PDCACycle) TableName() string {
	return "pdca_cycles"
}
