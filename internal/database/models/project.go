package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project is the aggregate root of a plan. Version increases by one on every
// applied change-set. Projects are only ever soft-deleted.
type Project struct {
	BaseModel
	OwnerID          string         `json:"ownerId" gorm:"type:varchar(64);not null;index"`
	Name             string         `json:"name" gorm:"size:200;not null"`
	StartDate        *time.Time     `json:"startDate,omitempty" gorm:"type:date"`
	ViewSettings     datatypes.JSON `json:"viewSettings,omitempty" gorm:"type:jsonb"`
	BudgetSettings   datatypes.JSON `json:"budgetSettings,omitempty" gorm:"type:jsonb"`
	OrgChartSettings datatypes.JSON `json:"orgChartSettings,omitempty" gorm:"type:jsonb"`
	Version          int64          `json:"version" gorm:"not null;default:1"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Phases     []Phase         `json:"phases,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Resources  []Resource      `json:"resources,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Milestones []Milestone     `json:"milestones,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Holidays   []Holiday       `json:"holidays,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Members    []ProjectMember `json:"members,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// ProjectMember grants a user a role on a project other than ownership
type ProjectMember struct {
	BaseModel
	ProjectID string      `json:"projectId" gorm:"type:varchar(64);not null;uniqueIndex:idx_project_member,priority:1"`
	UserID    string      `json:"userId" gorm:"type:varchar(64);not null;uniqueIndex:idx_project_member,priority:2"`
	Role      ProjectRole `json:"role" gorm:"type:varchar(20);not null;default:'viewer'"`
}

// TableName returns the table name for ProjectMember
func (ProjectMember) TableName() string {
	return "project_members"
}
