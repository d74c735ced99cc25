package models

// ResourceCategory groups resources by practice
type ResourceCategory string

const (
	ResourceCategoryLeadership ResourceCategory = "leadership"
	ResourceCategoryFunctional ResourceCategory = "functional"
	ResourceCategoryTechnical  ResourceCategory = "technical"
	ResourceCategoryBasis      ResourceCategory = "basis"
	ResourceCategorySecurity   ResourceCategory = "security"
	ResourceCategoryPM         ResourceCategory = "pm"
	ResourceCategoryChange     ResourceCategory = "change"
	ResourceCategoryQA         ResourceCategory = "qa"
	ResourceCategoryOther      ResourceCategory = "other"
)

// Designation is the seniority of a resource
type Designation string

const (
	DesignationPrincipal        Designation = "principal"
	DesignationDirector         Designation = "director"
	DesignationSeniorManager    Designation = "senior_manager"
	DesignationManager          Designation = "manager"
	DesignationSeniorConsultant Designation = "senior_consultant"
	DesignationConsultant       Designation = "consultant"
	DesignationAnalyst          Designation = "analyst"
	DesignationSubcontractor    Designation = "subcontractor"
)

// ProjectRole is the access level of a project member
type ProjectRole string

const (
	ProjectRoleOwner  ProjectRole = "owner"
	ProjectRoleEditor ProjectRole = "editor"
	ProjectRoleViewer ProjectRole = "viewer"
)

// IsValid checks if the ResourceCategory is valid
func (c ResourceCategory) IsValid() bool {
	switch c {
	case ResourceCategoryLeadership, ResourceCategoryFunctional, ResourceCategoryTechnical,
		ResourceCategoryBasis, ResourceCategorySecurity, ResourceCategoryPM,
		ResourceCategoryChange, ResourceCategoryQA, ResourceCategoryOther:
		return true
	}
	return false
}

// IsValid checks if the Designation is valid
func (d Designation) IsValid() bool {
	switch d {
	case DesignationPrincipal, DesignationDirector, DesignationSeniorManager, DesignationManager,
		DesignationSeniorConsultant, DesignationConsultant, DesignationAnalyst, DesignationSubcontractor:
		return true
	}
	return false
}

// IsValid checks if the ProjectRole is valid
func (r ProjectRole) IsValid() bool {
	switch r {
	case ProjectRoleOwner, ProjectRoleEditor, ProjectRoleViewer:
		return true
	}
	return false
}

// CanWrite reports whether the role may apply change-sets
func (r ProjectRole) CanWrite() bool {
	return r == ProjectRoleOwner || r == ProjectRoleEditor
}

// ResourceCategories lists every valid category
func ResourceCategories() []ResourceCategory {
	return []ResourceCategory{
		ResourceCategoryLeadership, ResourceCategoryFunctional, ResourceCategoryTechnical,
		ResourceCategoryBasis, ResourceCategorySecurity, ResourceCategoryPM,
		ResourceCategoryChange, ResourceCategoryQA, ResourceCategoryOther,
	}
}

// Designations lists every valid designation, most senior first
func Designations() []Designation {
	return []Designation{
		DesignationPrincipal, DesignationDirector, DesignationSeniorManager, DesignationManager,
		DesignationSeniorConsultant, DesignationConsultant, DesignationAnalyst, DesignationSubcontractor,
	}
}
