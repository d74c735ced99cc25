package models

// Resource is a person staffed on a project. ManagerResourceID forms the
// reporting hierarchy, which must stay a forest.
type Resource struct {
	BaseModel
	ProjectID         string           `json:"projectId" gorm:"type:varchar(64);not null;index"`
	Name              string           `json:"name" gorm:"size:200;not null"`
	Category          ResourceCategory `json:"category" gorm:"type:varchar(20);not null;default:'other'"`
	Designation       Designation      `json:"designation" gorm:"type:varchar(30);not null;default:'consultant'"`
	ManagerResourceID *string          `json:"managerResourceId" gorm:"type:varchar(64);index"`
	Email             string           `json:"email,omitempty" gorm:"size:255"`
	DailyRate         float64          `json:"dailyRate" gorm:"type:numeric;default:0"`
	Currency          string           `json:"currency,omitempty" gorm:"size:3"`
	IsBillable        bool             `json:"isBillable" gorm:"not null"`

	// Relationships
	Manager          *Resource                 `json:"-" gorm:"foreignKey:ManagerResourceID;constraint:OnDelete:SET NULL"`
	TaskAssignments  []TaskResourceAssignment  `json:"-" gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE"`
	PhaseAssignments []PhaseResourceAssignment `json:"-" gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Resource
func (Resource) TableName() string {
	return "resources"
}
