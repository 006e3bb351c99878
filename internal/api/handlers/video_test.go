package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"translationflow/internal/api/handlers"
	"translationflow/internal/database/models"
	apperrors "translationflow/internal/errors"
	"translationflow/internal/mocks"
	"translationflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testVideoID = "9b0e6f0a-4f55-4e0e-8d3b-6a4f2b1c7d20"

// VideoHandlerTestSuite defines the test suite for VideoHandler
type VideoHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockVideoServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *VideoHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockVideoServiceInterface(suite.ctrl)

	handler := handlers.NewVideoHandler(suite.mockService)
	suite.router = gin.New()
	r := suite.router.Group("/projects/:id/videos", withUser(testUserID))
	r.GET("", handler.ListVideos)
	r.POST("", handler.CreateVideo)
	r.GET("/:videoId", handler.GetVideo)
	r.PUT("/:videoId", handler.UpdateVideo)
	r.PUT("/:videoId/status", handler.UpdateVideoStatus)
	r.DELETE("/:videoId", handler.DeleteVideo)
}

// TearDownTest cleans up after each test
func (suite *VideoHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VideoHandlerTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *VideoHandlerTestSuite) TestCreateVideo() {
	suite.mockService.EXPECT().Create(gomock.Any(), testUserID, testProjectID, gomock.Any()).
		Return(&service.VideoResponse{ID: testVideoID, Status: models.VideoStatusPending}, nil)

	w := suite.do(httptest.NewRequest(http.MethodPost, "/projects/"+testProjectID+"/videos",
		jsonBody(service.CreateVideoRequest{Title: "Episode 1", SourceFileName: "ep1.srt", SourceLanguage: "en", TargetLanguage: "es"})))

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"status":"pending"`)
}

func (suite *VideoHandlerTestSuite) TestListVideos_NotOwner() {
	suite.mockService.EXPECT().ListByProject(gomock.Any(), testUserID, testProjectID).
		Return(nil, apperrors.ErrNotProjectOwner)

	w := suite.do(httptest.NewRequest(http.MethodGet, "/projects/"+testProjectID+"/videos", nil))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *VideoHandlerTestSuite) TestGetVideo_NotFound() {
	suite.mockService.EXPECT().GetByID(gomock.Any(), testUserID, testProjectID, testVideoID).
		Return(nil, apperrors.ErrVideoNotFound)

	w := suite.do(httptest.NewRequest(http.MethodGet, "/projects/"+testProjectID+"/videos/"+testVideoID, nil))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *VideoHandlerTestSuite) TestUpdateVideo() {
	suite.mockService.EXPECT().Update(gomock.Any(), testUserID, testProjectID, testVideoID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _, _ string, req *service.UpdateVideoRequest) (*service.VideoResponse, error) {
			suite.Require().NotNil(req.Title)
			suite.Equal("Episode 1 (final)", *req.Title)
			suite.Nil(req.Description)
			return &service.VideoResponse{ID: testVideoID, Title: *req.Title, Status: models.VideoStatusPending}, nil
		})

	title := "Episode 1 (final)"
	w := suite.do(httptest.NewRequest(http.MethodPut, "/projects/"+testProjectID+"/videos/"+testVideoID,
		jsonBody(service.UpdateVideoRequest{Title: &title})))

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *VideoHandlerTestSuite) TestUpdateVideoStatus() {
	suite.mockService.EXPECT().UpdateStatus(gomock.Any(), testUserID, testProjectID, testVideoID, gomock.Any()).
		Return(&service.VideoResponse{ID: testVideoID, Status: models.VideoStatusCompleted}, nil)

	w := suite.do(httptest.NewRequest(http.MethodPut, "/projects/"+testProjectID+"/videos/"+testVideoID+"/status",
		jsonBody(service.UpdateVideoStatusRequest{Status: models.VideoStatusCompleted})))

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"status":"completed"`)
}

func (suite *VideoHandlerTestSuite) TestDeleteVideo() {
	suite.mockService.EXPECT().Delete(gomock.Any(), testUserID, testProjectID, testVideoID).Return(nil)

	w := suite.do(httptest.NewRequest(http.MethodDelete, "/projects/"+testProjectID+"/videos/"+testVideoID, nil))

	suite.Equal(http.StatusNoContent, w.Code)
}

// TestVideoHandlerTestSuite runs the test suite
func TestVideoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VideoHandlerTestSuite))
}
