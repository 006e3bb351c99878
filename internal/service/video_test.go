package service_test

import (
	"context"
	"testing"

	"translationflow/internal/database/models"
	apperrors "translationflow/internal/errors"
	"translationflow/internal/mocks"
	"translationflow/internal/service"
	"translationflow/internal/workflow"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const videoID = "9b0e6f0a-4f55-4e0e-8d3b-6a4f2b1c7d20"

// VideoServiceTestSuite defines the test suite for VideoService
type VideoServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockVideoRepositoryInterface
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	videoService    *service.VideoService
}

// SetupTest sets up the test suite
func (suite *VideoServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockVideoRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.videoService = service.NewVideoService(suite.mockRepo, suite.mockProjectRepo, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *VideoServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VideoServiceTestSuite) expectOwnedProject() {
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), projectID).
		Return(storedProject(workflow.Phases{}, workflow.SubtitleTranslation), nil)
}

func storedVideo() *models.Video {
	v := &models.Video{
		ProjectID:      projectID,
		Title:          "Episode 1",
		SourceFileName: "ep1.srt",
		SourceLanguage: "en",
		TargetLanguage: "es",
		Status:         models.VideoStatusPending,
		CreatedBy:      ownerID,
	}
	v.ID = videoID
	return v
}

func (suite *VideoServiceTestSuite) TestCreate() {
	suite.expectOwnedProject()
	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Video) error {
			suite.Equal(projectID, v.ProjectID)
			suite.Equal("Episode 1", v.Title)
			suite.Equal("es", v.TargetLanguage)
			suite.Equal(models.VideoStatusPending, v.Status)
			suite.Equal(ownerID, v.CreatedBy)
			v.ID = videoID
			return nil
		})

	resp, err := suite.videoService.Create(suite.ctx, ownerID, projectID, &service.CreateVideoRequest{
		Title:          " Episode 1 ",
		SourceFileName: "ep1.srt",
		SourceLanguage: "en",
		TargetLanguage: "ES",
		VideoURL:       "https://cdn.example.com/ep1.mp4",
	})

	suite.Require().NoError(err)
	suite.Equal(videoID, resp.ID)
	suite.Equal(models.VideoStatusPending, resp.Status)
}

func (suite *VideoServiceTestSuite) TestCreate_Validation() {
	testCases := []struct {
		name  string
		req   service.CreateVideoRequest
		field string
	}{
		{
			name:  "missing title",
			req:   service.CreateVideoRequest{SourceFileName: "a.srt", SourceLanguage: "en", TargetLanguage: "es"},
			field: "title",
		},
		{
			name:  "same languages",
			req:   service.CreateVideoRequest{Title: "t", SourceFileName: "a.srt", SourceLanguage: "en", TargetLanguage: "en"},
			field: "target_language",
		},
		{
			name:  "bad url",
			req:   service.CreateVideoRequest{Title: "t", SourceFileName: "a.srt", SourceLanguage: "en", TargetLanguage: "es", VideoURL: "not a url"},
			field: "video_url",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := tc.req
			_, err := suite.videoService.Create(suite.ctx, ownerID, projectID, &req)

			suite.Require().Error(err)
			suite.True(apperrors.IsValidation(err))
			suite.Contains(err.Error(), tc.field)
		})
	}
}

func (suite *VideoServiceTestSuite) TestCreate_NotOwner() {
	suite.expectOwnedProject()

	_, err := suite.videoService.Create(suite.ctx, otherUser, projectID, &service.CreateVideoRequest{
		Title:          "Episode 1",
		SourceFileName: "ep1.srt",
		SourceLanguage: "en",
		TargetLanguage: "es",
	})

	suite.ErrorIs(err, apperrors.ErrNotProjectOwner)
}

func (suite *VideoServiceTestSuite) TestGetByID_NotFound() {
	suite.expectOwnedProject()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), projectID, videoID).Return(nil, apperrors.ErrVideoNotFound)

	_, err := suite.videoService.GetByID(suite.ctx, ownerID, projectID, videoID)

	suite.ErrorIs(err, apperrors.ErrVideoNotFound)
}

func (suite *VideoServiceTestSuite) TestListByProject() {
	suite.expectOwnedProject()
	suite.mockRepo.EXPECT().ListByProject(gomock.Any(), projectID).Return([]models.Video{*storedVideo()}, nil)

	resp, err := suite.videoService.ListByProject(suite.ctx, ownerID, projectID)

	suite.Require().NoError(err)
	suite.Equal(int64(1), resp.Total)
	suite.Equal("Episode 1", resp.Videos[0].Title)
}

func (suite *VideoServiceTestSuite) TestListByProject_ProjectMissing() {
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), projectID).Return(nil, apperrors.ErrProjectNotFound)

	_, err := suite.videoService.ListByProject(suite.ctx, ownerID, projectID)

	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *VideoServiceTestSuite) TestUpdate_PartialFields() {
	title := "Episode 1 (final)"
	content := "1\n00:00:01,000 --> 00:00:02,000\nHola\n"
	suite.expectOwnedProject()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), projectID, videoID).Return(storedVideo(), nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Video) error {
			suite.Equal(title, v.Title)
			suite.Equal(content, v.TranslatedFileContent)
			suite.Equal("ep1.srt", v.SourceFileName)
			return nil
		})

	resp, err := suite.videoService.Update(suite.ctx, ownerID, projectID, videoID, &service.UpdateVideoRequest{
		Title:                 &title,
		TranslatedFileContent: &content,
	})

	suite.Require().NoError(err)
	suite.Equal(title, resp.Title)
}

func (suite *VideoServiceTestSuite) TestUpdate_TrimsTitle() {
	suite.expectOwnedProject()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), projectID, videoID).Return(storedVideo(), nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Video) error {
			suite.Equal("Episode 2", v.Title)
			suite.Equal("Second cut", v.Description)
			return nil
		})

	title, description := "  Episode 2\t", " Second cut "
	resp, err := suite.videoService.Update(suite.ctx, ownerID, projectID, videoID, &service.UpdateVideoRequest{
		Title:       &title,
		Description: &description,
	})

	suite.Require().NoError(err)
	suite.Equal("Episode 2", resp.Title)
}

func (suite *VideoServiceTestSuite) TestUpdate_BlankTitleRejected() {
	title := "   "
	_, err := suite.videoService.Update(suite.ctx, ownerID, projectID, videoID, &service.UpdateVideoRequest{Title: &title})

	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "title")
}

func (suite *VideoServiceTestSuite) TestUpdate_TargetEqualsSource() {
	target := "en"
	suite.expectOwnedProject()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), projectID, videoID).Return(storedVideo(), nil)

	_, err := suite.videoService.Update(suite.ctx, ownerID, projectID, videoID, &service.UpdateVideoRequest{
		TargetLanguage: &target,
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *VideoServiceTestSuite) TestUpdateStatus() {
	suite.expectOwnedProject()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), projectID, videoID).Return(storedVideo(), nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Video) error {
			suite.Equal(models.VideoStatusCompleted, v.Status)
			return nil
		})

	resp, err := suite.videoService.UpdateStatus(suite.ctx, ownerID, projectID, videoID,
		&service.UpdateVideoStatusRequest{Status: "Completed"})

	suite.Require().NoError(err)
	suite.Equal(models.VideoStatusCompleted, resp.Status)
}

func (suite *VideoServiceTestSuite) TestUpdateStatus_Invalid() {
	_, err := suite.videoService.UpdateStatus(suite.ctx, ownerID, projectID, videoID,
		&service.UpdateVideoStatusRequest{Status: "archived"})

	suite.True(apperrors.IsValidation(err))
}

func (suite *VideoServiceTestSuite) TestDelete() {
	suite.expectOwnedProject()
	suite.mockRepo.EXPECT().Delete(gomock.Any(), projectID, videoID).Return(nil)

	suite.NoError(suite.videoService.Delete(suite.ctx, ownerID, projectID, videoID))
}

func (suite *VideoServiceTestSuite) TestDelete_NotFound() {
	suite.expectOwnedProject()
	suite.mockRepo.EXPECT().Delete(gomock.Any(), projectID, videoID).Return(apperrors.ErrVideoNotFound)

	err := suite.videoService.Delete(suite.ctx, ownerID, projectID, videoID)

	suite.ErrorIs(err, apperrors.ErrVideoNotFound)
}

// TestVideoServiceTestSuite runs the test suite
func TestVideoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VideoServiceTestSuite))
}
