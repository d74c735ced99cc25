//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"planner-backend/internal/database/models"
	"planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new project
func (suite *ProjectRepositoryTestSuite) TestCreate() {
	project := suite.factories.Project.Create()

	err := suite.repo.Create(suite.ctx, project)

	suite.NoError(err)
	found, err := suite.repo.GetByID(suite.ctx, project.ID)
	suite.NoError(err)
	suite.Equal(project.Name, found.Name)
	suite.Equal(int64(1), found.Version)
}

// TestCreateDuplicateNameIgnoresCase tests the per-owner unique name index
func (suite *ProjectRepositoryTestSuite) TestCreateDuplicateNameIgnoresCase() {
	suite.NoError(suite.repo.Create(suite.ctx, suite.factories.Project.WithName("u1", "ERP Rollout")))

	err := suite.repo.Create(suite.ctx, suite.factories.Project.WithName("u1", "erp rollout"))
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")

	// another owner may reuse the name
	suite.NoError(suite.repo.Create(suite.ctx, suite.factories.Project.WithName("u2", "ERP Rollout")))
}

// TestNameReusableAfterSoftDelete tests that the unique index skips deleted projects
func (suite *ProjectRepositoryTestSuite) TestNameReusableAfterSoftDelete() {
	first := suite.factories.Project.WithName("u1", "Upgrade")
	suite.NoError(suite.repo.Create(suite.ctx, first))
	suite.NoError(suite.repo.SoftDelete(suite.ctx, first.ID))

	suite.NoError(suite.repo.Create(suite.ctx, suite.factories.Project.WithName("u1", "Upgrade")))

	_, err := suite.repo.GetByID(suite.ctx, first.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestBumpVersion tests that every bump increments by exactly one
func (suite *ProjectRepositoryTestSuite) TestBumpVersion() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.Create(suite.ctx, project))

	first, err := suite.repo.BumpVersion(suite.ctx, project.ID)
	suite.NoError(err)
	second, err := suite.repo.BumpVersion(suite.ctx, project.ID)
	suite.NoError(err)

	suite.Equal(int64(2), first.Version)
	suite.Equal(int64(3), second.Version)
	suite.False(second.UpdatedAt.Before(first.UpdatedAt))
}

// TestBumpVersionMissingProject tests bumping a project that does not exist
func (suite *ProjectRepositoryTestSuite) TestBumpVersionMissingProject() {
	_, err := suite.repo.BumpVersion(suite.ctx, "missing")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdateFields tests patching project scalars
func (suite *ProjectRepositoryTestSuite) TestUpdateFields() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.Create(suite.ctx, project))

	err := suite.repo.UpdateFields(suite.ctx, project.ID, map[string]interface{}{"name": "Renamed"})
	suite.NoError(err)

	found, err := suite.repo.GetByID(suite.ctx, project.ID)
	suite.NoError(err)
	suite.Equal("Renamed", found.Name)

	err = suite.repo.UpdateFields(suite.ctx, "missing", map[string]interface{}{"name": "x"})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListByUser tests that owners and members both see a project
func (suite *ProjectRepositoryTestSuite) TestListByUser() {
	owned := suite.factories.Project.WithOwner("alice")
	shared := suite.factories.Project.WithOwner("bob")
	other := suite.factories.Project.WithOwner("bob")
	for _, p := range []*models.Project{owned, shared, other} {
		suite.NoError(suite.repo.Create(suite.ctx, p))
	}
	suite.NoError(suite.repo.UpsertMember(suite.ctx, &models.ProjectMember{
		ProjectID: shared.ID, UserID: "alice", Role: models.ProjectRoleEditor,
	}))

	projects, err := suite.repo.ListByUser(suite.ctx, "alice")

	suite.NoError(err)
	ids := []string{}
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	suite.ElementsMatch([]string{owned.ID, shared.ID}, ids)
}

// TestUpsertMemberReplacesRole tests granting a second role to the same user
func (suite *ProjectRepositoryTestSuite) TestUpsertMemberReplacesRole() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.Create(suite.ctx, project))

	suite.NoError(suite.repo.UpsertMember(suite.ctx, &models.ProjectMember{ProjectID: project.ID, UserID: "u9", Role: models.ProjectRoleViewer}))
	suite.NoError(suite.repo.UpsertMember(suite.ctx, &models.ProjectMember{ProjectID: project.ID, UserID: "u9", Role: models.ProjectRoleEditor}))

	member, err := suite.repo.GetMember(suite.ctx, project.ID, "u9")
	suite.NoError(err)
	suite.Equal(models.ProjectRoleEditor, member.Role)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
