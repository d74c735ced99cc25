package models

import "time"

// Milestone is a dated marker on the project timeline
type Milestone struct {
	BaseModel
	ProjectID   string    `json:"projectId" gorm:"type:varchar(64);not null;index"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Date        time.Time `json:"date" gorm:"type:date;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Color       string    `json:"color,omitempty" gorm:"size:9"`
}

// TableName returns the table name for Milestone
func (Milestone) TableName() string {
	return "milestones"
}

// Holiday is a non-working day for the project
type Holiday struct {
	BaseModel
	ProjectID   string    `json:"projectId" gorm:"type:varchar(64);not null;index"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Date        time.Time `json:"date" gorm:"type:date;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
}

// TableName returns the table name for Holiday
func (Holiday) TableName() string {
	return "holidays"
}
