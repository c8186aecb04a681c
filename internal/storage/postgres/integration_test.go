//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"media_tracker/internal/domain"
	"media_tracker/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_media.up.sql"),
			filepath.Join(migrationsPath, "002_create_youtube.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	for _, table := range []string{
		"yt_playlist_videos",
		"yt_video_visualizations",
		"yt_playlists",
		"yt_videos",
		"yt_channels",
		"tv_show_episode_visualizations",
		"tv_show_episode_translations",
		"tv_show_episodes",
		"media_visualizations",
		"media_translations",
		"media",
	} {
		_, _ = s.db.ExecContext(s.ctx, "DELETE FROM "+table)
	}
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) createTVShow(externalID int64) *domain.Media {
	store := NewMediaStore(s.db)
	m := &domain.Media{
		ExternalID:    &externalID,
		Type:          domain.MediaTypeTVShow,
		OriginalTitle: "Some Show",
	}
	s.Require().NoError(store.Create(s.ctx, m))
	return m
}

func (s *PostgresIntegrationSuite) TestMediaStore_CreateAndGet() {
	store := NewMediaStore(s.db)
	release := time.Date(1966, 12, 18, 0, 0, 0, 0, time.UTC)

	media := &domain.Media{
		ExternalID:    utils.Ptr(int64(903)),
		Type:          domain.MediaTypeMovie,
		OriginalTitle: "Blow Up",
		ReleaseDate:   &release,
	}
	err := store.Create(s.ctx, media)
	s.NoError(err)
	s.Greater(media.ID, int64(0))

	got, err := store.GetByID(s.ctx, media.ID)
	s.NoError(err)
	s.Equal("Blow Up", got.OriginalTitle)
	s.Equal(domain.MediaTypeMovie, got.Type)
	s.Equal(int64(903), *got.ExternalID)
	s.Equal(release, got.ReleaseDate.UTC())
}

func (s *PostgresIntegrationSuite) TestMediaStore_GetMissing() {
	store := NewMediaStore(s.db)

	_, err := store.GetByID(s.ctx, 99999)
	s.Error(err)

	var notFound *domain.NotFoundError
	s.ErrorAs(err, &notFound)
}

func (s *PostgresIntegrationSuite) TestMediaStore_ExternalIDUniquePerType() {
	store := NewMediaStore(s.db)

	first := &domain.Media{
		ExternalID:    utils.Ptr(int64(903)),
		Type:          domain.MediaTypeMovie,
		OriginalTitle: "First",
	}
	s.NoError(store.Create(s.ctx, first))

	dup := &domain.Media{
		ExternalID:    utils.Ptr(int64(903)),
		Type:          domain.MediaTypeMovie,
		OriginalTitle: "Duplicate",
	}
	err := store.Create(s.ctx, dup)
	s.Error(err)

	var conflict *domain.ConflictError
	s.ErrorAs(err, &conflict)

	// Same external id under a different type is a different catalog.
	other := &domain.Media{
		ExternalID:    utils.Ptr(int64(903)),
		Type:          domain.MediaTypeTVShow,
		OriginalTitle: "Same ID, Different Type",
	}
	s.NoError(store.Create(s.ctx, other))
}

func (s *PostgresIntegrationSuite) TestMediaStore_NullExternalIDsNotUnique() {
	store := NewMediaStore(s.db)

	for i := 0; i < 2; i++ {
		m := &domain.Media{
			Type:          domain.MediaTypeOther,
			OriginalTitle: "Untracked",
		}
		s.NoError(store.Create(s.ctx, m))
	}

	var count int
	err := s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM media WHERE external_id IS NULL")
	s.NoError(err)
	s.Equal(2, count)
}

func (s *PostgresIntegrationSuite) TestMediaStore_ListByType() {
	store := NewMediaStore(s.db)

	s.NoError(store.Create(s.ctx, &domain.Media{Type: domain.MediaTypeMovie, OriginalTitle: "Movie A"}))
	s.NoError(store.Create(s.ctx, &domain.Media{Type: domain.MediaTypeMovie, OriginalTitle: "Movie B"}))
	s.NoError(store.Create(s.ctx, &domain.Media{Type: domain.MediaTypeTVShow, OriginalTitle: "Show"}))

	movies, err := store.List(s.ctx, domain.MediaFilter{
		Type:  utils.Ptr(domain.MediaTypeMovie),
		Limit: 100,
	})
	s.NoError(err)
	s.Len(movies, 2)

	paged, err := store.List(s.ctx, domain.MediaFilter{
		Type:   utils.Ptr(domain.MediaTypeMovie),
		Offset: 1,
		Limit:  100,
	})
	s.NoError(err)
	s.Len(paged, 1)
}

func (s *PostgresIntegrationSuite) TestMediaStore_DeleteWithDependents() {
	mediaStore := NewMediaStore(s.db)
	episodeStore := NewEpisodeStore(s.db)

	show := s.createTVShow(100)
	episode := &domain.Episode{
		TVShowID:      show.ID,
		OriginalTitle: "Pilot",
	}
	s.NoError(episodeStore.Create(s.ctx, episode))

	err := mediaStore.Delete(s.ctx, show.ID)
	s.Error(err)

	var conflict *domain.ConflictError
	s.ErrorAs(err, &conflict)

	// Removing the episode unblocks the parent.
	s.NoError(episodeStore.Delete(s.ctx, episode.ID))
	s.NoError(mediaStore.Delete(s.ctx, show.ID))
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_ForeignKeyBackstop() {
	store := NewEpisodeStore(s.db)

	err := store.Create(s.ctx, &domain.Episode{
		TVShowID:      99999,
		OriginalTitle: "Orphan",
	})
	s.Error(err)

	var notFound *domain.NotFoundError
	s.ErrorAs(err, &notFound)
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_ListByTVShow() {
	store := NewEpisodeStore(s.db)
	show := s.createTVShow(100)
	other := s.createTVShow(101)

	for i := 1; i <= 3; i++ {
		s.NoError(store.Create(s.ctx, &domain.Episode{
			TVShowID:      show.ID,
			SeasonNum:     utils.Ptr(1),
			EpisodeNum:    utils.Ptr(i),
			OriginalTitle: "Episode",
		}))
	}
	s.NoError(store.Create(s.ctx, &domain.Episode{
		TVShowID:      other.ID,
		OriginalTitle: "Elsewhere",
	}))

	episodes, err := store.List(s.ctx, domain.EpisodeFilter{
		TVShowID: &show.ID,
		Limit:    100,
	})
	s.NoError(err)
	s.Len(episodes, 3)
}

func (s *PostgresIntegrationSuite) TestMediaTranslationStore_CompositeKey() {
	mediaStore := NewMediaStore(s.db)
	store := NewMediaTranslationStore(s.db)

	media := &domain.Media{Type: domain.MediaTypeMovie, OriginalTitle: "Blow Up"}
	s.NoError(mediaStore.Create(s.ctx, media))

	translation := &domain.MediaTranslation{
		MediaID:      media.ID,
		LanguageCode: "it",
		Title:        "Blow-Up",
	}
	s.NoError(store.Create(s.ctx, translation))

	err := store.Create(s.ctx, &domain.MediaTranslation{
		MediaID:      media.ID,
		LanguageCode: "it",
		Title:        "Again",
	})
	s.Error(err)

	var conflict *domain.ConflictError
	s.ErrorAs(err, &conflict)

	// A second language for the same media is fine.
	s.NoError(store.Create(s.ctx, &domain.MediaTranslation{
		MediaID:      media.ID,
		LanguageCode: "fr",
		Title:        "Blow-Up",
	}))

	translations, err := store.ListByMedia(s.ctx, media.ID)
	s.NoError(err)
	s.Len(translations, 2)
}

func (s *PostgresIntegrationSuite) TestMediaVisualizationStore_RoundTrip() {
	mediaStore := NewMediaStore(s.db)
	store := NewMediaVisualizationStore(s.db)
	watched := time.Date(2024, 3, 1, 21, 0, 0, 0, time.UTC)

	media := &domain.Media{Type: domain.MediaTypeMovie, OriginalTitle: "Blow Up"}
	s.NoError(mediaStore.Create(s.ctx, media))

	v := &domain.MediaVisualization{
		MediaID:           media.ID,
		VisualizationDate: watched,
		ResumeSeconds:     utils.Ptr(1800),
	}
	s.NoError(store.Create(s.ctx, v))
	s.Greater(v.ID, int64(0))

	got, err := store.GetByID(s.ctx, v.ID)
	s.NoError(err)
	s.Equal(1800, *got.ResumeSeconds)

	got.ResumeSeconds = nil
	s.NoError(store.Update(s.ctx, got))

	got, err = store.GetByID(s.ctx, v.ID)
	s.NoError(err)
	s.Nil(got.ResumeSeconds)
}

func (s *PostgresIntegrationSuite) TestChannelStore_RoundTrip() {
	store := NewChannelStore(s.db)

	channel := &domain.Channel{
		ID:   "UCchannel",
		Name: "Some Channel",
		URL:  utils.Ptr("https://youtube.com/@somechannel"),
	}
	s.NoError(store.Create(s.ctx, channel))

	err := store.Create(s.ctx, &domain.Channel{ID: "UCchannel", Name: "Duplicate"})
	s.Error(err)

	var conflict *domain.ConflictError
	s.ErrorAs(err, &conflict)

	got, err := store.GetByID(s.ctx, "UCchannel")
	s.NoError(err)
	s.Equal("Some Channel", got.Name)

	got.Name = "Renamed Channel"
	s.NoError(store.Update(s.ctx, got))

	got, err = store.GetByID(s.ctx, "UCchannel")
	s.NoError(err)
	s.Equal("Renamed Channel", got.Name)
}

func (s *PostgresIntegrationSuite) TestVideoStore_NullableChannel() {
	channelStore := NewChannelStore(s.db)
	videoStore := NewVideoStore(s.db)

	s.NoError(videoStore.Create(s.ctx, &domain.Video{
		ID:    "noChannel01",
		Title: "Unattached",
	}))

	s.NoError(channelStore.Create(s.ctx, &domain.Channel{ID: "UCchannel", Name: "Some Channel"}))
	s.NoError(videoStore.Create(s.ctx, &domain.Video{
		ID:        "attached001",
		ChannelID: utils.Ptr("UCchannel"),
		Title:     "Attached",
	}))

	err := videoStore.Create(s.ctx, &domain.Video{
		ID:        "badChannel1",
		ChannelID: utils.Ptr("UCmissing"),
		Title:     "Dangling",
	})
	s.Error(err)

	var notFound *domain.NotFoundError
	s.ErrorAs(err, &notFound)

	videos, err := videoStore.List(s.ctx, domain.VideoFilter{
		ChannelID: utils.Ptr("UCchannel"),
		Limit:     100,
	})
	s.NoError(err)
	s.Len(videos, 1)
}

func (s *PostgresIntegrationSuite) TestPlaylistVideoStore_PositionUnique() {
	channelStore := NewChannelStore(s.db)
	videoStore := NewVideoStore(s.db)
	playlistStore := NewPlaylistStore(s.db)
	store := NewPlaylistVideoStore(s.db)

	s.NoError(channelStore.Create(s.ctx, &domain.Channel{ID: "UCchannel", Name: "Some Channel"}))
	s.NoError(playlistStore.Create(s.ctx, &domain.Playlist{
		ID:        "PLplaylist",
		ChannelID: utils.Ptr("UCchannel"),
		Title:     "Some Playlist",
	}))
	s.NoError(videoStore.Create(s.ctx, &domain.Video{ID: "video000001", Title: "One"}))
	s.NoError(videoStore.Create(s.ctx, &domain.Video{ID: "video000002", Title: "Two"}))

	first := &domain.PlaylistVideo{
		PlaylistID: "PLplaylist",
		VideoID:    "video000001",
		Position:   utils.Ptr(1),
	}
	s.NoError(store.Create(s.ctx, first))

	err := store.Create(s.ctx, &domain.PlaylistVideo{
		PlaylistID: "PLplaylist",
		VideoID:    "video000002",
		Position:   utils.Ptr(1),
	})
	s.Error(err)

	var conflict *domain.ConflictError
	s.ErrorAs(err, &conflict)
}

func (s *PostgresIntegrationSuite) TestPlaylistVideoStore_NullPositionsAllowed() {
	videoStore := NewVideoStore(s.db)
	playlistStore := NewPlaylistStore(s.db)
	store := NewPlaylistVideoStore(s.db)

	s.NoError(playlistStore.Create(s.ctx, &domain.Playlist{ID: "PLplaylist", Title: "Some Playlist"}))
	s.NoError(videoStore.Create(s.ctx, &domain.Video{ID: "video000001", Title: "One"}))
	s.NoError(videoStore.Create(s.ctx, &domain.Video{ID: "video000002", Title: "Two"}))

	s.NoError(store.Create(s.ctx, &domain.PlaylistVideo{PlaylistID: "PLplaylist", VideoID: "video000001"}))
	s.NoError(store.Create(s.ctx, &domain.PlaylistVideo{PlaylistID: "PLplaylist", VideoID: "video000002"}))

	entries, err := store.ListByPlaylist(s.ctx, "PLplaylist")
	s.NoError(err)
	s.Len(entries, 2)
}

func (s *PostgresIntegrationSuite) TestPlaylistVideoStore_OrderedByPosition() {
	videoStore := NewVideoStore(s.db)
	playlistStore := NewPlaylistStore(s.db)
	store := NewPlaylistVideoStore(s.db)

	s.NoError(playlistStore.Create(s.ctx, &domain.Playlist{ID: "PLplaylist", Title: "Some Playlist"}))
	s.NoError(videoStore.Create(s.ctx, &domain.Video{ID: "video000001", Title: "One"}))
	s.NoError(videoStore.Create(s.ctx, &domain.Video{ID: "video000002", Title: "Two"}))
	s.NoError(videoStore.Create(s.ctx, &domain.Video{ID: "video000003", Title: "Three"}))

	s.NoError(store.Create(s.ctx, &domain.PlaylistVideo{PlaylistID: "PLplaylist", VideoID: "video000002", Position: utils.Ptr(2)}))
	s.NoError(store.Create(s.ctx, &domain.PlaylistVideo{PlaylistID: "PLplaylist", VideoID: "video000001", Position: utils.Ptr(1)}))
	s.NoError(store.Create(s.ctx, &domain.PlaylistVideo{PlaylistID: "PLplaylist", VideoID: "video000003"}))

	entries, err := store.ListByPlaylist(s.ctx, "PLplaylist")
	s.NoError(err)
	s.Require().Len(entries, 3)
	s.Equal("video000001", entries[0].VideoID)
	s.Equal("video000002", entries[1].VideoID)
	// NULL positions sort last.
	s.Equal("video000003", entries[2].VideoID)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	store := NewMediaStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return store.Create(ctx, &domain.Media{
			Type:          domain.MediaTypeMovie,
			OriginalTitle: "Committed",
		})
	})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM media WHERE original_title = $1", "Committed")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	store := NewMediaStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := store.Create(ctx, &domain.Media{
			Type:          domain.MediaTypeMovie,
			OriginalTitle: "Rolled Back",
		}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM media WHERE original_title = $1", "Rolled Back")
	s.NoError(err)
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_EpisodeWriteSeesUncommittedParent() {
	tm := NewTransactionManager(s.db)
	mediaStore := NewMediaStore(s.db)
	episodeStore := NewEpisodeStore(s.db)

	var episodeID int64
	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		show := &domain.Media{
			Type:          domain.MediaTypeTVShow,
			OriginalTitle: "Same-Tx Show",
		}
		if err := mediaStore.Create(ctx, show); err != nil {
			return err
		}
		episode := &domain.Episode{
			TVShowID:      show.ID,
			OriginalTitle: "Same-Tx Pilot",
		}
		if err := episodeStore.Create(ctx, episode); err != nil {
			return err
		}
		episodeID = episode.ID
		return nil
	})
	s.NoError(err)

	_, err = episodeStore.GetByID(s.ctx, episodeID)
	s.NoError(err)
}
