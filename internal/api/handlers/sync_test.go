package handlers_test

import (
	"net/http"
	"testing"

	"planner-backend/internal/allocation"
	"planner-backend/internal/api/handlers"
	"planner-backend/internal/delta"
	apperrors "planner-backend/internal/errors"
	"planner-backend/internal/mocks"
	"planner-backend/internal/service"
	"planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	callerID  = "user-editor"
	projectID = "0b6f3c1e-3c49-4c57-9b0e-1f7f2f6f9a10"
)

// SyncHandlerTestSuite defines the test suite for SyncHandler
type SyncHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSyncServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *SyncHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSyncServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest(callerID)

	handler := handlers.NewSyncHandler(suite.mockService)
	suite.http.Router.POST("/projects/:id/delta", handler.ApplyDelta)
	suite.http.Router.GET("/projects/:id/hierarchy/check", handler.CheckHierarchy)
}

func (suite *SyncHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SyncHandlerTestSuite) TestApplyDeltaSuccess() {
	body := `{"baseVersion":4,"resources":{"created":[{"id":"r1","name":"Jane"}]},"phases":{"deleted":["p9"]}}`
	suite.mockService.EXPECT().
		ApplyDelta(gomock.Any(), callerID, projectID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ string, cs *delta.ChangeSet) (*service.DeltaResponse, error) {
			suite.Require().NotNil(cs.BaseVersion)
			suite.Equal(int64(4), *cs.BaseVersion)
			suite.Equal("r1", cs.Resources.Created[0].ID)
			suite.Equal([]string{"p9"}, cs.Phases.Deleted)
			return &service.DeltaResponse{
				ProjectID: projectID,
				Version:   5,
				Warnings:  []allocation.Warning{{ResourceID: "r1", PeakPercent: 120}},
				Counts:    map[string]int64{"resources/create": 1},
			}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/projects/"+projectID+"/delta", body)

	var resp service.DeltaResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal(int64(5), resp.Version)
	suite.Len(resp.Warnings, 1)
	suite.Equal(int64(1), resp.Counts["resources/create"])
}

func (suite *SyncHandlerTestSuite) TestApplyDeltaMalformedBody() {
	w := suite.http.MakeRequest(http.MethodPost, "/projects/"+projectID+"/delta", "{not json")

	testutils.AssertErrorKind(suite.T(), w, http.StatusBadRequest, apperrors.KindValidation)
}

func (suite *SyncHandlerTestSuite) TestApplyDeltaWithoutUser() {
	suite.http = testutils.SetupHTTPTest("")
	handler := handlers.NewSyncHandler(suite.mockService)
	suite.http.Router.POST("/projects/:id/delta", handler.ApplyDelta)

	w := suite.http.MakeRequest(http.MethodPost, "/projects/"+projectID+"/delta", "{}")

	testutils.AssertErrorKind(suite.T(), w, http.StatusUnauthorized, apperrors.KindAuthentication)
}

func (suite *SyncHandlerTestSuite) TestApplyDeltaErrorMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
		check      func(body map[string]interface{})
	}{
		{
			name: "validation",
			err: apperrors.NewValidationErrors([]apperrors.FieldViolation{
				{Field: "resources.created[0].name", Rule: "required", Message: "is required"},
			}),
			wantStatus: http.StatusBadRequest,
			wantKind:   apperrors.KindValidation,
			check: func(body map[string]interface{}) {
				suite.Len(body["violations"], 1)
			},
		},
		{
			name:       "not authorized",
			err:        apperrors.ErrProjectWriteDenied,
			wantStatus: http.StatusForbidden,
			wantKind:   apperrors.KindAuthorization,
		},
		{
			name:       "project missing",
			err:        apperrors.ErrProjectNotFound,
			wantStatus: http.StatusNotFound,
			wantKind:   apperrors.KindNotFound,
		},
		{
			name: "unique violation",
			err: &apperrors.ConflictError{
				Kind:   apperrors.KindUniqueViolation,
				Entity: "taskResourceAssignment",
				Fields: []string{"taskId", "resourceId"},
			},
			wantStatus: http.StatusConflict,
			wantKind:   apperrors.KindUniqueViolation,
			check: func(body map[string]interface{}) {
				suite.Equal("taskResourceAssignment", body["entity"])
				suite.Equal([]interface{}{"taskId", "resourceId"}, body["fields"])
			},
		},
		{
			name:       "foreign key",
			err:        &apperrors.ConflictError{Kind: apperrors.KindForeignKey, Entity: "task"},
			wantStatus: http.StatusConflict,
			wantKind:   apperrors.KindForeignKey,
		},
		{
			name: "stale version",
			err: &apperrors.ConflictError{
				Kind:   apperrors.KindStaleVersion,
				Entity: "project",
				Hint:   "refresh to sync with latest data",
			},
			wantStatus: http.StatusConflict,
			wantKind:   apperrors.KindStaleVersion,
			check: func(body map[string]interface{}) {
				suite.Equal("refresh to sync with latest data", body["hint"])
			},
		},
		{
			name:       "hierarchy cycle",
			err:        &apperrors.HierarchyCycleError{ResourceID: "A", ManagerID: "C", Path: []string{"C", "B", "A"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   apperrors.KindHierarchyCycle,
			check: func(body map[string]interface{}) {
				suite.Equal([]interface{}{"C", "B", "A"}, body["path"])
			},
		},
		{
			name:       "opaque internal",
			err:        &apperrors.InternalError{Err: http.ErrHandlerTimeout},
			wantStatus: http.StatusInternalServerError,
			wantKind:   apperrors.KindInternal,
			check: func(body map[string]interface{}) {
				suite.Equal("internal error", body["error"])
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockService.EXPECT().
				ApplyDelta(gomock.Any(), callerID, projectID, gomock.Any()).
				Return(nil, tt.err)

			w := suite.http.MakeRequest(http.MethodPost, "/projects/"+projectID+"/delta", "{}")

			body := testutils.AssertErrorKind(suite.T(), w, tt.wantStatus, tt.wantKind)
			if tt.check != nil {
				tt.check(body)
			}
		})
	}
}

func (suite *SyncHandlerTestSuite) TestCheckHierarchy() {
	suite.mockService.EXPECT().
		CheckHierarchy(gomock.Any(), callerID, projectID, "A", "C").
		Return(&service.HierarchyCheckResponse{
			ResourceID: "A",
			ManagerID:  "C",
			Allowed:    false,
			Path:       []string{"C", "B", "A"},
		}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/projects/"+projectID+"/hierarchy/check?resourceId=A&managerId=C", nil)

	var resp service.HierarchyCheckResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.False(resp.Allowed)
	suite.Equal([]string{"C", "B", "A"}, resp.Path)
}

func (suite *SyncHandlerTestSuite) TestCheckHierarchyMissingParameters() {
	suite.mockService.EXPECT().
		CheckHierarchy(gomock.Any(), callerID, projectID, "", "").
		Return(nil, apperrors.NewValidationError("resourceId", "is required"))

	w := suite.http.MakeRequest(http.MethodGet, "/projects/"+projectID+"/hierarchy/check", nil)

	body := testutils.AssertErrorKind(suite.T(), w, http.StatusBadRequest, apperrors.KindValidation)
	suite.Equal([]interface{}{"resourceId"}, body["fields"])
}

func TestSyncHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SyncHandlerTestSuite))
}
