package models

import (
	"time"

	"gorm.io/datatypes"
)

// Phase belongs to a project and owns its tasks. Deleting a phase cascades to
// its tasks and to every assignment hanging off them.
type Phase struct {
	BaseModel
	ProjectID    string                      `json:"projectId" gorm:"type:varchar(64);not null;index"`
	Name         string                      `json:"name" gorm:"size:200;not null"`
	Color        string                      `json:"color" gorm:"size:9"`
	StartDate    time.Time                   `json:"startDate" gorm:"type:date;not null"`
	EndDate      time.Time                   `json:"endDate" gorm:"type:date;not null"`
	SortOrder    int                         `json:"sortOrder" gorm:"default:0"`
	Dependencies datatypes.JSONSlice[string] `json:"dependencies" gorm:"type:jsonb"`

	// Relationships
	Tasks               []Task                    `json:"tasks,omitempty" gorm:"foreignKey:PhaseID;constraint:OnDelete:CASCADE"`
	ResourceAssignments []PhaseResourceAssignment `json:"resourceAssignments,omitempty" gorm:"foreignKey:PhaseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Phase
func (Phase) TableName() string {
	return "phases"
}

// Task belongs to a phase. Its dates are expected to lie inside the phase but
// the store does not enforce it.
type Task struct {
	BaseModel
	PhaseID      string                      `json:"phaseId" gorm:"type:varchar(64);not null;index"`
	Name         string                      `json:"name" gorm:"size:200;not null"`
	StartDate    time.Time                   `json:"startDate" gorm:"type:date;not null"`
	EndDate      time.Time                   `json:"endDate" gorm:"type:date;not null"`
	Progress     int                         `json:"progress" gorm:"default:0"`
	SortOrder    int                         `json:"sortOrder" gorm:"default:0"`
	Dependencies datatypes.JSONSlice[string] `json:"dependencies" gorm:"type:jsonb"`

	// Relationships
	ResourceAssignments []TaskResourceAssignment `json:"resourceAssignments,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
