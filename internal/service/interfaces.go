package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"media_tracker/internal/domain"
)

type MediaStore interface {
	Create(ctx context.Context, m *domain.Media) error
	GetByID(ctx context.Context, id int64) (*domain.Media, error)
	List(ctx context.Context, f domain.MediaFilter) ([]domain.Media, error)
	Update(ctx context.Context, m *domain.Media) error
	Delete(ctx context.Context, id int64) error
}

type MediaTranslationStore interface {
	Create(ctx context.Context, t *domain.MediaTranslation) error
	Get(ctx context.Context, mediaID int64, languageCode string) (*domain.MediaTranslation, error)
	ListByMedia(ctx context.Context, mediaID int64) ([]domain.MediaTranslation, error)
	Update(ctx context.Context, t *domain.MediaTranslation) error
	Delete(ctx context.Context, mediaID int64, languageCode string) error
}

type MediaVisualizationStore interface {
	Create(ctx context.Context, v *domain.MediaVisualization) error
	GetByID(ctx context.Context, id int64) (*domain.MediaVisualization, error)
	ListByMedia(ctx context.Context, mediaID int64) ([]domain.MediaVisualization, error)
	Update(ctx context.Context, v *domain.MediaVisualization) error
	Delete(ctx context.Context, id int64) error
}

type EpisodeStore interface {
	Create(ctx context.Context, e *domain.Episode) error
	GetByID(ctx context.Context, id int64) (*domain.Episode, error)
	List(ctx context.Context, f domain.EpisodeFilter) ([]domain.Episode, error)
	Update(ctx context.Context, e *domain.Episode) error
	Delete(ctx context.Context, id int64) error
}

type EpisodeTranslationStore interface {
	Create(ctx context.Context, t *domain.EpisodeTranslation) error
	Get(ctx context.Context, episodeID int64, languageCode string) (*domain.EpisodeTranslation, error)
	ListByEpisode(ctx context.Context, episodeID int64) ([]domain.EpisodeTranslation, error)
	Update(ctx context.Context, t *domain.EpisodeTranslation) error
	Delete(ctx context.Context, episodeID int64, languageCode string) error
}

type EpisodeVisualizationStore interface {
	Create(ctx context.Context, v *domain.EpisodeVisualization) error
	GetByID(ctx context.Context, id int64) (*domain.EpisodeVisualization, error)
	ListByEpisode(ctx context.Context, episodeID int64) ([]domain.EpisodeVisualization, error)
	Update(ctx context.Context, v *domain.EpisodeVisualization) error
	Delete(ctx context.Context, id int64) error
}

type ChannelStore interface {
	Create(ctx context.Context, c *domain.Channel) error
	GetByID(ctx context.Context, id string) (*domain.Channel, error)
	List(ctx context.Context, offset, limit int) ([]domain.Channel, error)
	Update(ctx context.Context, c *domain.Channel) error
	Delete(ctx context.Context, id string) error
}

type VideoStore interface {
	Create(ctx context.Context, v *domain.Video) error
	GetByID(ctx context.Context, id string) (*domain.Video, error)
	List(ctx context.Context, f domain.VideoFilter) ([]domain.Video, error)
	Update(ctx context.Context, v *domain.Video) error
	Delete(ctx context.Context, id string) error
}

type VideoVisualizationStore interface {
	Create(ctx context.Context, v *domain.VideoVisualization) error
	GetByID(ctx context.Context, id int64) (*domain.VideoVisualization, error)
	ListByVideo(ctx context.Context, videoID string) ([]domain.VideoVisualization, error)
	Update(ctx context.Context, v *domain.VideoVisualization) error
	Delete(ctx context.Context, id int64) error
}

type PlaylistStore interface {
	Create(ctx context.Context, p *domain.Playlist) error
	GetByID(ctx context.Context, id string) (*domain.Playlist, error)
	List(ctx context.Context, f domain.PlaylistFilter) ([]domain.Playlist, error)
	Update(ctx context.Context, p *domain.Playlist) error
	Delete(ctx context.Context, id string) error
}

type PlaylistVideoStore interface {
	Create(ctx context.Context, pv *domain.PlaylistVideo) error
	GetByID(ctx context.Context, id int64) (*domain.PlaylistVideo, error)
	ListByPlaylist(ctx context.Context, playlistID string) ([]domain.PlaylistVideo, error)
	ListByVideo(ctx context.Context, videoID string) ([]domain.PlaylistVideo, error)
	Update(ctx context.Context, pv *domain.PlaylistVideo) error
	Delete(ctx context.Context, id int64) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}
