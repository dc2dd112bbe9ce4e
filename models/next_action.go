// models/next_action.go
package models

import "time"

type ActionStatus string

const (
	ActionStatusPending    ActionStatus = "pending"
	ActionStatusInProgress ActionStatus = "in_progress"
	ActionStatusCompleted  ActionStatus = "completed"
	ActionStatusCancelled  ActionStatus = "cancelled"
)

// ValidActionStatus reports whether s is one of the four known statuses.
// There is no transition table; any status may move to any other.
func ValidActionStatus(s ActionStatus) bool {
	switch s {
	case ActionStatusPending, ActionStatusInProgress, ActionStatusCompleted, ActionStatusCancelled:
		return true
	}
	return false
}

// NextAction is a planned improvement task recorded against a cycle.
type NextAction struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	TeamID      uint         `json:"team_id" gorm:"not null;index"`
	CycleID     uint         `json:"cycle_id" gorm:"not null;index"`
	Cycle       *PDCACycle   `json:"cycle,omitempty" gorm:"foreignKey:CycleID"`
	UserID      uint         `json:"user_id" gorm:"not null;index"`
	User        *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Description string       `json:"description" gorm:"type:text;not null"`
	TargetDate  time.Time    `json:"target_date" gorm:"not null"`
	Status      ActionStatus `json:"status" gorm:"not null;default:'pending';index"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (NextAction) TableName() string {
	return "next_actions"
}
