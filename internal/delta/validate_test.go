package delta

import (
	"encoding/json"
	"testing"

	apperrors "planner-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ValidateTestSuite struct {
	suite.Suite
	validator *validator.Validate
}

func (suite *ValidateTestSuite) SetupTest() {
	suite.validator = NewValidator()
}

func validPhase(id string) PhaseInput {
	return PhaseInput{
		ID:        id,
		Name:      "Discovery",
		Color:     "#3366ff",
		StartDate: "2026-01-05",
		EndDate:   "2026-02-27",
		Tasks: []TaskInput{
			{
				ID:        id + "-t1",
				Name:      "Kick-off",
				StartDate: "2026-01-05",
				EndDate:   "2026-01-09",
				Progress:  10,
				ResourceAssignments: []AssignmentInput{
					{ResourceID: "r1", AllocationPercentage: 50},
				},
			},
		},
	}
}

func validResource(id string) ResourceInput {
	return ResourceInput{ID: id, Name: "Ada", Category: "technical", Designation: "senior_consultant"}
}

func (suite *ValidateTestSuite) violations(err error) []apperrors.FieldViolation {
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	return validationErr.Violations
}

func (suite *ValidateTestSuite) fields(err error) []string {
	var out []string
	for _, v := range suite.violations(err) {
		out = append(out, v.Field)
	}
	return out
}

func (suite *ValidateTestSuite) TestValidChangeSet() {
	cs := &ChangeSet{
		Resources: Collection[ResourceInput]{Created: []ResourceInput{validResource("r1")}},
		Phases:    Collection[PhaseInput]{Created: []PhaseInput{validPhase("p1")}, Deleted: []string{"p0"}},
		Milestones: Collection[MilestoneInput]{
			Created: []MilestoneInput{{ID: "m1", Name: "Go-live", Date: "2026-03-01"}},
		},
		Holidays: Collection[HolidayInput]{
			Updated: []HolidayInput{{ID: "h1", Name: "New Year", Date: "2026-01-01"}},
		},
	}

	suite.NoError(Validate(suite.validator, cs))
}

func (suite *ValidateTestSuite) TestNilChangeSet() {
	err := Validate(suite.validator, nil)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ValidateTestSuite) TestReportsEveryViolation() {
	badTask := validPhase("p1")
	badTask.Tasks[0].Progress = 140
	badTask.Tasks[0].StartDate = "05/01/2026"

	cs := &ChangeSet{
		Resources: Collection[ResourceInput]{
			Created: []ResourceInput{{ID: "r1", Name: "", Category: "wizard", Designation: "consultant"}},
		},
		Phases: Collection[PhaseInput]{Created: []PhaseInput{badTask}},
	}

	fields := suite.fields(Validate(suite.validator, cs))

	suite.ElementsMatch([]string{
		"resources.created[0].name",
		"resources.created[0].category",
		"phases.created[0].tasks[0].startDate",
		"phases.created[0].tasks[0].progress",
	}, fields)
}

func (suite *ValidateTestSuite) TestEndBeforeStart() {
	phase := validPhase("p1")
	phase.EndDate = "2026-01-01"

	cs := &ChangeSet{Phases: Collection[PhaseInput]{Updated: []PhaseInput{phase}}}

	violations := suite.violations(Validate(suite.validator, cs))
	suite.Require().Len(violations, 1)
	suite.Equal("phases.updated[0].endDate", violations[0].Field)
	suite.Equal("gtefield", violations[0].Rule)
	suite.Equal("must not be before startDate", violations[0].Message)
}

func (suite *ValidateTestSuite) TestEmptyDeletedIdentity() {
	cs := &ChangeSet{Holidays: Collection[HolidayInput]{Deleted: []string{"h1", ""}}}

	suite.Equal([]string{"holidays.deleted[1]"}, suite.fields(Validate(suite.validator, cs)))
}

func (suite *ValidateTestSuite) TestDuplicateIdentityAcrossCreatedAndUpdated() {
	cs := &ChangeSet{
		Resources: Collection[ResourceInput]{
			Created: []ResourceInput{validResource("r1")},
			Updated: []ResourceInput{validResource("r1")},
		},
	}

	violations := suite.violations(Validate(suite.validator, cs))
	suite.Require().Len(violations, 1)
	suite.Equal("resources.updated[0].id", violations[0].Field)
	suite.Equal("duplicate", violations[0].Rule)
}

func (suite *ValidateTestSuite) TestBaseVersionMustBePositive() {
	zero := int64(0)
	cs := &ChangeSet{BaseVersion: &zero}

	suite.Equal([]string{"baseVersion"}, suite.fields(Validate(suite.validator, cs)))
}

func (suite *ValidateTestSuite) TestProjectPatchStartDate() {
	bad := "tomorrow"
	cs := &ChangeSet{Project: &ProjectPatch{StartDate: &bad}}

	violations := suite.violations(Validate(suite.validator, cs))
	suite.Require().Len(violations, 1)
	suite.Equal("project.startDate", violations[0].Field)
	suite.Equal("plandate", violations[0].Rule)
}

func (suite *ValidateTestSuite) TestNulCharactersRejected() {
	resource := validResource("r1")
	resource.Name = "Ada\x00"
	phase := validPhase("p1")
	phase.Tasks[0].ResourceAssignments[0].Notes = "half\x00time"

	cs := &ChangeSet{
		Project:   &ProjectPatch{ViewSettings: json.RawMessage(`{"zoom":"week\u0000"}`)},
		Resources: Collection[ResourceInput]{Created: []ResourceInput{resource}},
		Phases:    Collection[PhaseInput]{Created: []PhaseInput{phase}},
		Holidays:  Collection[HolidayInput]{Deleted: []string{"h\x001"}},
	}

	violations := suite.violations(Validate(suite.validator, cs))

	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		suite.Equal("nonul", v.Rule)
		suite.Equal("must not contain NUL characters", v.Message)
		fields = append(fields, v.Field)
	}
	suite.ElementsMatch([]string{
		"project.viewSettings",
		"resources.created[0].name",
		"phases.created[0].tasks[0].resourceAssignments[0].notes",
		"holidays.deleted[0]",
	}, fields)
}

func (suite *ValidateTestSuite) TestAllocationHasNoUpperBound() {
	phase := validPhase("p1")
	phase.Tasks[0].ResourceAssignments[0].AllocationPercentage = 250000
	phase.ResourceAssignments = []AssignmentInput{{ResourceID: "r1", AllocationPercentage: 12345.678}}

	cs := &ChangeSet{Phases: Collection[PhaseInput]{Created: []PhaseInput{phase}}}

	suite.NoError(Validate(suite.validator, cs))
}

func TestValidateTestSuite(t *testing.T) {
	suite.Run(t, new(ValidateTestSuite))
}

func TestChangeSetDecoding(t *testing.T) {
	t.Run("non-string deleted identity fails to decode", func(t *testing.T) {
		var cs ChangeSet
		err := json.Unmarshal([]byte(`{"phases":{"deleted":[42]}}`), &cs)
		assert.Error(t, err)
	})

	t.Run("camelCase payload", func(t *testing.T) {
		payload := `{
			"baseVersion": 3,
			"skipDuplicates": true,
			"project": {"name": "ERP rollout", "viewSettings": {"zoom": "week"}},
			"resources": {"created": [{"id": "r1", "name": "Ada", "category": "pm", "designation": "manager", "managerResourceId": "r0"}]},
			"phases": {"updated": [{"id": "p1", "name": "Build", "startDate": "2026-01-01", "endDate": "2026-02-01",
				"tasks": [{"id": "t1", "name": "Config", "startDate": "2026-01-01", "endDate": "2026-01-10",
					"resourceAssignments": [{"resourceId": "r1", "allocationPercentage": 60}]}]}]}
		}`
		var cs ChangeSet
		require.NoError(t, json.Unmarshal([]byte(payload), &cs))

		require.NotNil(t, cs.BaseVersion)
		assert.Equal(t, int64(3), *cs.BaseVersion)
		assert.True(t, cs.SkipDuplicates)
		assert.True(t, cs.Project.HasChanges())
		assert.Equal(t, "r0", *cs.Resources.Created[0].ManagerResourceID)
		assert.Equal(t, 60.0, cs.Phases.Updated[0].Tasks[0].ResourceAssignments[0].AllocationPercentage)
		assert.False(t, cs.IsEmpty())
	})

	t.Run("empty object is an empty change-set", func(t *testing.T) {
		var cs ChangeSet
		require.NoError(t, json.Unmarshal([]byte(`{"project": {}}`), &cs))
		assert.True(t, cs.IsEmpty())
	})
}
