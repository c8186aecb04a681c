package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"media_tracker/internal/domain"
	"media_tracker/internal/service/mocks"
	"media_tracker/testdata/utils"
)

type YouTubeServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	channels       *mocks.MockChannelStore
	videos         *mocks.MockVideoStore
	visualizations *mocks.MockVideoVisualizationStore
	playlists      *mocks.MockPlaylistStore
	playlistVideos *mocks.MockPlaylistVideoStore
	txManager      *mocks.MockTransactionManager
	publisher      *mocks.MockPublisher

	service *YouTubeService
	logger  *slog.Logger
}

func (s *YouTubeServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.channels = mocks.NewMockChannelStore(s.ctrl)
	s.videos = mocks.NewMockVideoStore(s.ctrl)
	s.visualizations = mocks.NewMockVideoVisualizationStore(s.ctrl)
	s.playlists = mocks.NewMockPlaylistStore(s.ctrl)
	s.playlistVideos = mocks.NewMockPlaylistVideoStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewYouTubeService(
		s.channels,
		s.videos,
		s.visualizations,
		s.playlists,
		s.playlistVideos,
		s.txManager,
		s.publisher,
		s.logger,
	)
}

func (s *YouTubeServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestYouTubeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(YouTubeServiceTestSuite))
}

func (s *YouTubeServiceTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *YouTubeServiceTestSuite) TestCreateChannel() {
	ctx := context.Background()

	channel := &domain.Channel{
		ID:   "UC1234567890abcdefghijkl",
		Name: "Some Channel",
		URL:  utils.Ptr("https://youtube.com/@somechannel"),
	}

	s.expectTransaction(ctx)
	s.channels.EXPECT().Create(ctx, channel).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	created, err := s.service.CreateChannel(ctx, channel)

	s.NoError(err)
	s.Equal("UC1234567890abcdefghijkl", created.ID)
}

func (s *YouTubeServiceTestSuite) TestCreateChannel_IDTooLong() {
	ctx := context.Background()

	created, err := s.service.CreateChannel(ctx, &domain.Channel{
		ID:   "UC1234567890abcdefghijklmnopqrstuvwxyz",
		Name: "Too Long",
	})

	s.Error(err)
	s.Nil(created)

	var validation *domain.ValidationError
	s.ErrorAs(err, &validation)
	s.Equal("id", validation.Field)
}

func (s *YouTubeServiceTestSuite) TestCreateVideo_ChannelChecked() {
	ctx := context.Background()

	video := &domain.Video{
		ID:        "dQw4w9WgXcQ",
		ChannelID: utils.Ptr("UCchannel"),
		Title:     "Some Video",
	}

	s.expectTransaction(ctx)
	s.channels.EXPECT().GetByID(ctx, "UCchannel").Return(&domain.Channel{
		ID:   "UCchannel",
		Name: "Some Channel",
	}, nil)
	s.videos.EXPECT().Create(ctx, video).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	created, err := s.service.CreateVideo(ctx, video)

	s.NoError(err)
	s.NotNil(created)
}

func (s *YouTubeServiceTestSuite) TestCreateVideo_ChannelMissing() {
	ctx := context.Background()

	video := &domain.Video{
		ID:        "dQw4w9WgXcQ",
		ChannelID: utils.Ptr("UCmissing"),
		Title:     "Orphan Video",
	}

	s.expectTransaction(ctx)
	s.channels.EXPECT().GetByID(ctx, "UCmissing").Return(nil, &domain.NotFoundError{Entity: "yt_channel", ID: "UCmissing"})

	created, err := s.service.CreateVideo(ctx, video)

	s.Error(err)
	s.Nil(created)

	var notFound *domain.NotFoundError
	s.ErrorAs(err, &notFound)
}

func (s *YouTubeServiceTestSuite) TestCreateVideo_NoChannelSkipsCheck() {
	ctx := context.Background()

	video := &domain.Video{
		ID:    "dQw4w9WgXcQ",
		Title: "Unattached Video",
	}

	s.expectTransaction(ctx)
	s.videos.EXPECT().Create(ctx, video).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	created, err := s.service.CreateVideo(ctx, video)

	s.NoError(err)
	s.Nil(created.ChannelID)
}

func (s *YouTubeServiceTestSuite) TestAddPlaylistVideo() {
	ctx := context.Background()

	entry := &domain.PlaylistVideo{
		PlaylistID: "PLplaylist",
		VideoID:    "dQw4w9WgXcQ",
		Position:   utils.Ptr(1),
	}

	s.expectTransaction(ctx)
	s.playlists.EXPECT().GetByID(ctx, "PLplaylist").Return(&domain.Playlist{
		ID:    "PLplaylist",
		Title: "Some Playlist",
	}, nil)
	s.videos.EXPECT().GetByID(ctx, "dQw4w9WgXcQ").Return(&domain.Video{
		ID:    "dQw4w9WgXcQ",
		Title: "Some Video",
	}, nil)
	s.playlistVideos.EXPECT().Create(ctx, entry).DoAndReturn(
		func(_ context.Context, pv *domain.PlaylistVideo) error {
			pv.ID = 10
			return nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	created, err := s.service.AddPlaylistVideo(ctx, entry)

	s.NoError(err)
	s.Equal(int64(10), created.ID)
}

func (s *YouTubeServiceTestSuite) TestAddPlaylistVideo_PositionTaken() {
	ctx := context.Background()

	entry := &domain.PlaylistVideo{
		PlaylistID: "PLplaylist",
		VideoID:    "dQw4w9WgXcQ",
		Position:   utils.Ptr(1),
	}

	s.expectTransaction(ctx)
	s.playlists.EXPECT().GetByID(ctx, "PLplaylist").Return(&domain.Playlist{ID: "PLplaylist", Title: "Some Playlist"}, nil)
	s.videos.EXPECT().GetByID(ctx, "dQw4w9WgXcQ").Return(&domain.Video{ID: "dQw4w9WgXcQ", Title: "Some Video"}, nil)
	s.playlistVideos.EXPECT().Create(ctx, entry).Return(&domain.ConflictError{
		Entity: "yt_playlist_video",
		Detail: "position already taken in this playlist",
	})

	created, err := s.service.AddPlaylistVideo(ctx, entry)

	s.Error(err)
	s.Nil(created)

	var conflict *domain.ConflictError
	s.ErrorAs(err, &conflict)
}

func (s *YouTubeServiceTestSuite) TestAddPlaylistVideo_NegativePosition() {
	ctx := context.Background()

	created, err := s.service.AddPlaylistVideo(ctx, &domain.PlaylistVideo{
		PlaylistID: "PLplaylist",
		VideoID:    "dQw4w9WgXcQ",
		Position:   utils.Ptr(-1),
	})

	s.Error(err)
	s.Nil(created)

	var validation *domain.ValidationError
	s.ErrorAs(err, &validation)
	s.Equal("position", validation.Field)
}

func (s *YouTubeServiceTestSuite) TestUpdatePlaylistVideo_Reposition() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.playlistVideos.EXPECT().GetByID(ctx, int64(10)).Return(&domain.PlaylistVideo{
		ID:         10,
		PlaylistID: "PLplaylist",
		VideoID:    "dQw4w9WgXcQ",
		Position:   utils.Ptr(1),
	}, nil)
	s.playlistVideos.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, pv *domain.PlaylistVideo) error {
			s.Equal(3, *pv.Position)
			return nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	updated, err := s.service.UpdatePlaylistVideo(ctx, 10, domain.PlaylistVideoUpdate{
		Position: utils.Ptr(3),
	})

	s.NoError(err)
	s.Equal(3, *updated.Position)
}

func (s *YouTubeServiceTestSuite) TestGetChannel_Full() {
	ctx := context.Background()

	s.channels.EXPECT().GetByID(ctx, "UCchannel").Return(&domain.Channel{
		ID:   "UCchannel",
		Name: "Some Channel",
	}, nil)
	s.videos.EXPECT().List(ctx, gomock.Any()).Return([]domain.Video{
		{ID: "dQw4w9WgXcQ", Title: "Some Video"},
	}, nil)
	s.playlists.EXPECT().List(ctx, gomock.Any()).Return([]domain.Playlist{
		{ID: "PLplaylist", Title: "Some Playlist"},
	}, nil)

	detail, err := s.service.GetChannel(ctx, "UCchannel", domain.ChannelViewFull)

	s.NoError(err)
	s.Len(detail.Videos, 1)
	s.Len(detail.Playlists, 1)
}

func (s *YouTubeServiceTestSuite) TestGetVideo_WithPlaylists() {
	ctx := context.Background()

	s.videos.EXPECT().GetByID(ctx, "dQw4w9WgXcQ").Return(&domain.Video{
		ID:    "dQw4w9WgXcQ",
		Title: "Some Video",
	}, nil)
	s.playlistVideos.EXPECT().ListByVideo(ctx, "dQw4w9WgXcQ").Return([]domain.PlaylistVideo{
		{ID: 10, PlaylistID: "PLplaylist", VideoID: "dQw4w9WgXcQ", Position: utils.Ptr(1)},
	}, nil)
	s.playlists.EXPECT().GetByID(ctx, "PLplaylist").Return(&domain.Playlist{
		ID:    "PLplaylist",
		Title: "Some Playlist",
	}, nil)

	detail, err := s.service.GetVideo(ctx, "dQw4w9WgXcQ", domain.VideoViewWithPlaylists)

	s.NoError(err)
	s.Len(detail.Playlists, 1)
	s.Equal("PLplaylist", detail.Playlists[0].Playlist.ID)
	s.Equal(1, *detail.Playlists[0].Position)
}

func (s *YouTubeServiceTestSuite) TestDeleteChannel_Referenced() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.channels.EXPECT().Delete(ctx, "UCchannel").Return(&domain.ConflictError{
		Entity: "yt_channel",
		Detail: "row is referenced by dependent rows",
	})

	err := s.service.DeleteChannel(ctx, "UCchannel")

	s.Error(err)

	var conflict *domain.ConflictError
	s.ErrorAs(err, &conflict)
}

func (s *YouTubeServiceTestSuite) TestRecordVisualization_VideoMissing() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.videos.EXPECT().GetByID(ctx, "missing12345").Return(nil, &domain.NotFoundError{Entity: "yt_video", ID: "missing12345"})

	created, err := s.service.RecordVisualization(ctx, &domain.VideoVisualization{
		VideoID: "missing12345",
	})

	s.Error(err)
	s.Nil(created)
}
