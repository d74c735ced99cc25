package models

// TaskResourceAssignment links a resource to a task. A resource can be
// assigned to a task only once; allocation has no upper bound.
type TaskResourceAssignment struct {
	BaseModel
	TaskID               string  `json:"taskId" gorm:"type:varchar(64);not null;uniqueIndex:idx_task_resource_assignment,priority:1"`
	ResourceID           string  `json:"resourceId" gorm:"type:varchar(64);not null;uniqueIndex:idx_task_resource_assignment,priority:2;index"`
	AllocationPercentage float64 `json:"allocationPercentage" gorm:"type:numeric;not null"`
	Notes                string  `json:"notes,omitempty" gorm:"type:text"`
}

// TableName returns the table name for TaskResourceAssignment
func (TaskResourceAssignment) TableName() string {
	return "task_resource_assignments"
}

// PhaseResourceAssignment links a resource to a whole phase
type PhaseResourceAssignment struct {
	BaseModel
	PhaseID              string  `json:"phaseId" gorm:"type:varchar(64);not null;uniqueIndex:idx_phase_resource_assignment,priority:1"`
	ResourceID           string  `json:"resourceId" gorm:"type:varchar(64);not null;uniqueIndex:idx_phase_resource_assignment,priority:2;index"`
	AllocationPercentage float64 `json:"allocationPercentage" gorm:"type:numeric;not null"`
	Notes                string  `json:"notes,omitempty" gorm:"type:text"`
}

// TableName returns the table name for PhaseResourceAssignment
func (PhaseResourceAssignment) TableName() string {
	return "phase_resource_assignments"
}
