package service

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"media_tracker/internal/domain"
	"media_tracker/internal/service/mocks"
	"media_tracker/testdata/utils"
)

type MediaServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	media          *mocks.MockMediaStore
	translations   *mocks.MockMediaTranslationStore
	visualizations *mocks.MockMediaVisualizationStore
	episodes       *mocks.MockEpisodeStore
	txManager      *mocks.MockTransactionManager
	publisher      *mocks.MockPublisher

	service *MediaService
	logger  *slog.Logger
}

func (s *MediaServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.media = mocks.NewMockMediaStore(s.ctrl)
	s.translations = mocks.NewMockMediaTranslationStore(s.ctrl)
	s.visualizations = mocks.NewMockMediaVisualizationStore(s.ctrl)
	s.episodes = mocks.NewMockEpisodeStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewMediaService(
		s.media,
		s.translations,
		s.visualizations,
		s.episodes,
		s.txManager,
		s.publisher,
		s.logger,
	)
}

func (s *MediaServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMediaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MediaServiceTestSuite))
}

func (s *MediaServiceTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *MediaServiceTestSuite) TestCreateMedia() {
	ctx := context.Background()

	media := &domain.Media{
		Type:          domain.MediaTypeMovie,
		OriginalTitle: "Blow Up",
		ExternalID:    utils.Ptr(int64(903)),
	}

	s.expectTransaction(ctx)
	s.media.EXPECT().Create(ctx, media).DoAndReturn(
		func(_ context.Context, m *domain.Media) error {
			m.ID = 1
			return nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	created, err := s.service.CreateMedia(ctx, media)

	s.NoError(err)
	s.Equal(int64(1), created.ID)
}

func (s *MediaServiceTestSuite) TestCreateMedia_UnknownType() {
	ctx := context.Background()

	created, err := s.service.CreateMedia(ctx, &domain.Media{
		Type:          "podcast",
		OriginalTitle: "Nope",
	})

	s.Error(err)
	s.Nil(created)

	var validation *domain.ValidationError
	s.ErrorAs(err, &validation)
	s.Equal("type", validation.Field)
}

func (s *MediaServiceTestSuite) TestCreateMedia_TitleBoundary() {
	ctx := context.Background()

	// 255 characters is the longest accepted title.
	media := &domain.Media{
		Type:          domain.MediaTypeMovie,
		OriginalTitle: strings.Repeat("a", 255),
	}

	s.expectTransaction(ctx)
	s.media.EXPECT().Create(ctx, media).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	_, err := s.service.CreateMedia(ctx, media)
	s.NoError(err)

	_, err = s.service.CreateMedia(ctx, &domain.Media{
		Type:          domain.MediaTypeMovie,
		OriginalTitle: strings.Repeat("a", 256),
	})
	s.Error(err)
}

func (s *MediaServiceTestSuite) TestCreateMedia_DuplicateExternalID() {
	ctx := context.Background()

	media := &domain.Media{
		Type:          domain.MediaTypeMovie,
		OriginalTitle: "Twin",
		ExternalID:    utils.Ptr(int64(903)),
	}

	s.expectTransaction(ctx)
	s.media.EXPECT().Create(ctx, media).Return(&domain.ConflictError{
		Entity: "media",
		Detail: "external_id already used for this type",
	})

	created, err := s.service.CreateMedia(ctx, media)

	s.Error(err)
	s.Nil(created)

	var conflict *domain.ConflictError
	s.ErrorAs(err, &conflict)
}

func (s *MediaServiceTestSuite) TestUpdateMedia_PartialFields() {
	ctx := context.Background()
	release := time.Date(1966, 12, 18, 0, 0, 0, 0, time.UTC)

	s.expectTransaction(ctx)
	s.media.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Media{
		ID:            1,
		Type:          domain.MediaTypeMovie,
		OriginalTitle: "Blow Up",
		ExternalID:    utils.Ptr(int64(903)),
	}, nil)
	s.media.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *domain.Media) error {
			s.Equal("Blowup", m.OriginalTitle)
			s.Equal(release, *m.ReleaseDate)
			// Untouched fields keep their stored values.
			s.Equal(int64(903), *m.ExternalID)
			s.Equal(domain.MediaTypeMovie, m.Type)
			return nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	updated, err := s.service.UpdateMedia(ctx, 1, domain.MediaUpdate{
		OriginalTitle: utils.Ptr("Blowup"),
		ReleaseDate:   &release,
	})

	s.NoError(err)
	s.Equal("Blowup", updated.OriginalTitle)
}

func (s *MediaServiceTestSuite) TestUpdateMedia_NotFound() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.media.EXPECT().GetByID(ctx, int64(999)).Return(nil, &domain.NotFoundError{Entity: "media", ID: int64(999)})

	updated, err := s.service.UpdateMedia(ctx, 999, domain.MediaUpdate{
		OriginalTitle: utils.Ptr("Ghost"),
	})

	s.Error(err)
	s.Nil(updated)

	var notFound *domain.NotFoundError
	s.ErrorAs(err, &notFound)
}

func (s *MediaServiceTestSuite) TestDeleteMedia_Referenced() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.media.EXPECT().Delete(ctx, int64(7)).Return(&domain.ConflictError{
		Entity: "media",
		Detail: "row is referenced by dependent rows",
	})

	err := s.service.DeleteMedia(ctx, 7)

	s.Error(err)

	var conflict *domain.ConflictError
	s.ErrorAs(err, &conflict)
}

func (s *MediaServiceTestSuite) TestGetMedia_FullWithEpisodes() {
	ctx := context.Background()

	s.media.EXPECT().GetByID(ctx, int64(7)).Return(&domain.Media{
		ID:            7,
		Type:          domain.MediaTypeTVShow,
		OriginalTitle: "Some Show",
	}, nil)
	s.translations.EXPECT().ListByMedia(ctx, int64(7)).Return([]domain.MediaTranslation{
		{MediaID: 7, LanguageCode: "it", Title: "Una Serie"},
	}, nil)
	s.visualizations.EXPECT().ListByMedia(ctx, int64(7)).Return(nil, nil)
	s.episodes.EXPECT().List(ctx, gomock.Any()).Return([]domain.Episode{
		{ID: 42, TVShowID: 7, OriginalTitle: "Pilot"},
	}, nil)

	detail, err := s.service.GetMedia(ctx, 7, domain.MediaViewFullWithEpisodes)

	s.NoError(err)
	s.Len(detail.Translations, 1)
	s.Len(detail.Episodes, 1)
}

func (s *MediaServiceTestSuite) TestListMedia_NormalizesPagination() {
	ctx := context.Background()

	s.media.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, f domain.MediaFilter) ([]domain.Media, error) {
			s.Equal(0, f.Offset)
			s.Equal(defaultListLimit, f.Limit)
			return nil, nil
		},
	)

	_, err := s.service.ListMedia(ctx, domain.MediaFilter{Offset: -3, Limit: 0}, domain.MediaViewBasic)

	s.NoError(err)
}

func (s *MediaServiceTestSuite) TestCreateTranslation_MediaMissing() {
	ctx := context.Background()

	translation := &domain.MediaTranslation{
		MediaID:      999,
		LanguageCode: "it",
		Title:        "Fantasma",
	}

	s.expectTransaction(ctx)
	s.media.EXPECT().GetByID(ctx, int64(999)).Return(nil, &domain.NotFoundError{Entity: "media", ID: int64(999)})

	created, err := s.service.CreateTranslation(ctx, translation)

	s.Error(err)
	s.Nil(created)
}

func (s *MediaServiceTestSuite) TestCreateTranslation_BadLanguageCode() {
	ctx := context.Background()

	created, err := s.service.CreateTranslation(ctx, &domain.MediaTranslation{
		MediaID:      1,
		LanguageCode: "toolong",
		Title:        "Titolo",
	})

	s.Error(err)
	s.Nil(created)

	var validation *domain.ValidationError
	s.ErrorAs(err, &validation)
	s.Equal("language_code", validation.Field)
}

func (s *MediaServiceTestSuite) TestUpdateVisualization() {
	ctx := context.Background()
	watched := time.Date(2024, 3, 1, 21, 0, 0, 0, time.UTC)

	s.expectTransaction(ctx)
	s.visualizations.EXPECT().GetByID(ctx, int64(3)).Return(&domain.MediaVisualization{
		ID:                3,
		MediaID:           1,
		VisualizationDate: watched.Add(-24 * time.Hour),
	}, nil)
	s.visualizations.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	updated, err := s.service.UpdateVisualization(ctx, 3, domain.VisualizationUpdate{
		VisualizationDate: &watched,
		ResumeSeconds:     utils.Ptr(1800),
	})

	s.NoError(err)
	s.Equal(watched, updated.VisualizationDate)
	s.Equal(1800, *updated.ResumeSeconds)
}

func (s *MediaServiceTestSuite) TestCreateMedia_PublisherNil() {
	ctx := context.Background()

	service := NewMediaService(
		s.media,
		s.translations,
		s.visualizations,
		s.episodes,
		s.txManager,
		nil,
		s.logger,
	)

	media := &domain.Media{
		Type:          domain.MediaTypeOther,
		OriginalTitle: "Quiet Release",
	}

	s.expectTransaction(ctx)
	s.media.EXPECT().Create(ctx, media).Return(nil)

	created, err := service.CreateMedia(ctx, media)

	s.NoError(err)
	s.NotNil(created)
}
