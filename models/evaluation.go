// models/evaluation.go
package models

import "time"

// Evaluation is a single user's weekly self-assessment, always scoped to
// the cycle that was active when it was submitted.
type Evaluation struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"not null;index"`
	User       *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TeamID     uint       `json:"team_id" gorm:"not null;index"`
	CycleID    uint       `json:"cycle_id" gorm:"not null;index"`
	Cycle      *PDCACycle `json:"cycle,omitempty" gorm:"foreignKey:CycleID"`
	Score      int        `json:"score" gorm:"not null"`
	Reflection string     `json:"reflection" gorm:"type:text;not null"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}
