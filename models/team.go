// models/team.go
package models

import "time"

type Team struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	TeamName  string      `json:"team_name" gorm:"not null;size:100"`
	TeamCode  string      `json:"team_code" gorm:"uniqueIndex;not null;size:20"`
	Members   []User      `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Cycles    []PDCACycle `json:"cycles,omitempty" gorm:"foreignKey:TeamID"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}
