package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"translationflow/internal/api/handlers"
	apperrors "translationflow/internal/errors"
	"translationflow/internal/mocks"
	"translationflow/internal/service"
	"translationflow/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testUserID    = "owner-1"
	testProjectID = "3f7c2a9e-2c4b-4f7a-9a57-0c1d5d0b8e11"
)

// withUser stands in for the auth middleware
func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func jsonBody(v interface{}) *bytes.Buffer {
	payload, _ := json.Marshal(v)
	return bytes.NewBuffer(payload)
}

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	handler     *handlers.ProjectHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.handler = handlers.NewProjectHandler(suite.mockService)
	suite.router = gin.New()
	suite.setupRoutes(suite.router.Group("", withUser(testUserID)))
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// setupRoutes sets up the routes for testing
func (suite *ProjectHandlerTestSuite) setupRoutes(r *gin.RouterGroup) {
	r.POST("/projects", suite.handler.CreateProject)
	r.GET("/projects", suite.handler.ListProjects)
	r.GET("/projects/stats", suite.handler.GetStats)
	r.GET("/projects/:id", suite.handler.GetProject)
	r.PUT("/projects/:id", suite.handler.UpdateProject)
	r.DELETE("/projects/:id", suite.handler.DeleteProject)
	r.GET("/projects/:id/phases/:phase", suite.handler.GetPhase)
	r.PUT("/projects/:id/phases/:phase", suite.handler.UpdatePhaseStatus)
}

func (suite *ProjectHandlerTestSuite) serve(method, path string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestCreateProject tests the CreateProject handler
func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	suite.T().Run("Invalid JSON", func(t *testing.T) {
		w := suite.serve(http.MethodPost, "/projects", bytes.NewBuffer([]byte("invalid json")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	suite.T().Run("Created", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), testUserID, gomock.Any()).
			Return(&service.ProjectResponse{ID: testProjectID, CurrentPhase: workflow.SubtitleTranslation, Name: "Trailer", Status: workflow.ProjectNotStarted}, nil)

		w := suite.serve(http.MethodPost, "/projects", jsonBody(service.CreateProjectRequest{
			Name: "Trailer", Description: "d", SourceLanguage: "en", TargetLanguages: []string{"es"},
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp service.ProjectResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, testProjectID, resp.ID)
	})

	suite.T().Run("Validation error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), testUserID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("target_languages", "must not include the source language"))

		w := suite.serve(http.MethodPost, "/projects", jsonBody(service.CreateProjectRequest{Name: "Trailer"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp handlers.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "target_languages", resp.Field)
	})
}

// TestAuthenticationRequired checks that handlers refuse anonymous callers
func (suite *ProjectHandlerTestSuite) TestAuthenticationRequired() {
	router := gin.New()
	suite.setupRoutes(router.Group("", withUser("")))

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// TestGetProject tests the GetProject handler
func (suite *ProjectHandlerTestSuite) TestGetProject() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: apperrors.ErrProjectNotFound, status: http.StatusNotFound},
		{name: "not owner", err: apperrors.ErrNotProjectOwner, status: http.StatusForbidden},
		{name: "store failure", err: fmt.Errorf("failed to get project: %w", assert.AnError), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockService.EXPECT().GetByID(gomock.Any(), testUserID, testProjectID).Return(nil, tc.err)

			w := suite.serve(http.MethodGet, "/projects/"+testProjectID, nil)

			assert.Equal(t, tc.status, w.Code)
		})
	}

	suite.T().Run("Found", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(gomock.Any(), testUserID, testProjectID).
			Return(&service.ProjectResponse{ID: testProjectID, CurrentPhase: workflow.SubtitleTranslation, Progress: 50}, nil)

		w := suite.serve(http.MethodGet, "/projects/"+testProjectID, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"progress":50`)
	})
}

// TestListProjects tests the ListProjects handler
func (suite *ProjectHandlerTestSuite) TestListProjects() {
	suite.mockService.EXPECT().ListByOwner(gomock.Any(), testUserID).
		Return(&service.ProjectListResponse{Projects: []service.ProjectResponse{{ID: testProjectID, CurrentPhase: workflow.SubtitleTranslation}}, Total: 1}, nil)

	w := suite.serve(http.MethodGet, "/projects", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp service.ProjectListResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.Total)
}

// TestUpdateProject tests the UpdateProject handler
func (suite *ProjectHandlerTestSuite) TestUpdateProject() {
	suite.mockService.EXPECT().Update(gomock.Any(), testUserID, testProjectID, gomock.Any()).
		Return(nil, apperrors.NewConflictError("project", 2, 3))

	name, version := "n", int64(2)
	w := suite.serve(http.MethodPut, "/projects/"+testProjectID, jsonBody(service.UpdateProjectRequest{Name: &name, Version: &version}))

	suite.Equal(http.StatusConflict, w.Code)
}

// TestDeleteProject tests the DeleteProject handler
func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	suite.mockService.EXPECT().Delete(gomock.Any(), testUserID, testProjectID).Return(nil)

	w := suite.serve(http.MethodDelete, "/projects/"+testProjectID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

// TestGetStats tests the GetStats handler
func (suite *ProjectHandlerTestSuite) TestGetStats() {
	suite.mockService.EXPECT().Stats(gomock.Any(), testUserID).
		Return(&service.StatsResponse{ActiveProjects: 2, TotalLanguages: 3}, nil)

	w := suite.serve(http.MethodGet, "/projects/stats", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"active_projects":2`)
}

// TestPhases tests the phase endpoints
func (suite *ProjectHandlerTestSuite) TestPhases() {
	suite.T().Run("Get phase", func(t *testing.T) {
		suite.mockService.EXPECT().GetPhase(gomock.Any(), testUserID, testProjectID, "audio_review").
			Return(&service.PhaseResponse{ProjectID: testProjectID, Phase: workflow.AudioReview, Order: 4}, nil)

		w := suite.serve(http.MethodGet, "/projects/"+testProjectID+"/phases/audio_review", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"phase":"audio_review"`)
	})

	suite.T().Run("Unknown phase", func(t *testing.T) {
		suite.mockService.EXPECT().GetPhase(gomock.Any(), testUserID, testProjectID, "mastering").
			Return(nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidPhase, "mastering"))

		w := suite.serve(http.MethodGet, "/projects/"+testProjectID+"/phases/mastering", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	suite.T().Run("Transition refused", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdatePhaseStatus(gomock.Any(), testUserID, testProjectID, "audio_review", gomock.Any()).
			Return(nil, fmt.Errorf("%w: audio_review requires audio_production to be completed", apperrors.ErrPhaseNotStartable))

		w := suite.serve(http.MethodPut, "/projects/"+testProjectID+"/phases/audio_review",
			jsonBody(service.UpdatePhaseRequest{Status: "in_progress"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	suite.T().Run("Transition applied", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdatePhaseStatus(gomock.Any(), testUserID, testProjectID, "subtitle_translation", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, req *service.UpdatePhaseRequest) (*service.ProjectResponse, error) {
				assert.Equal(t, "completed", req.Status)
				assert.True(t, req.Force)
				return &service.ProjectResponse{ID: testProjectID, CurrentPhase: workflow.SubtitleTranslation, Progress: 25}, nil
			})

		w := suite.serve(http.MethodPut, "/projects/"+testProjectID+"/phases/subtitle_translation",
			jsonBody(service.UpdatePhaseRequest{Status: "completed", Force: true}))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
