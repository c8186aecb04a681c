package service

import (
	"context"
	"log/slog"

	"media_tracker/internal/domain"
)

// YouTubeService owns the YouTube subtree: channels, their videos and
// playlists, playlist membership, and video watch history.
type YouTubeService struct {
	channels       ChannelStore
	videos         VideoStore
	visualizations VideoVisualizationStore
	playlists      PlaylistStore
	playlistVideos PlaylistVideoStore
	txManager      TransactionManager
	publisher      Publisher
	logger         *slog.Logger
}

func NewYouTubeService(
	channels ChannelStore,
	videos VideoStore,
	visualizations VideoVisualizationStore,
	playlists PlaylistStore,
	playlistVideos PlaylistVideoStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *YouTubeService {
	return &YouTubeService{
		channels:       channels,
		videos:         videos,
		visualizations: visualizations,
		playlists:      playlists,
		playlistVideos: playlistVideos,
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger.With("service", "youtube"),
	}
}

func (s *YouTubeService) publish(ctx context.Context, entity string, action domain.EventAction, payload any) {
	if s.publisher == nil {
		return
	}
	event := domain.Event{Entity: entity, Action: action, Payload: payload}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "entity", entity, "action", action, "error", err)
	}
}

// --- Channels ---

func (s *YouTubeService) CreateChannel(ctx context.Context, c *domain.Channel) (*domain.Channel, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.channels.Create(txCtx, c)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("channel created", "id", c.ID)
	s.publish(ctx, "yt_channel", domain.EventCreated, c)
	return c, nil
}

func (s *YouTubeService) GetChannel(ctx context.Context, id string, view domain.ChannelView) (*domain.ChannelDetail, error) {
	c, err := s.channels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.ChannelDetail{Channel: *c}
	if view == domain.ChannelViewWithVideos || view == domain.ChannelViewFull {
		detail.Videos, err = s.videos.List(ctx, domain.VideoFilter{ChannelID: &c.ID, Limit: defaultListLimit})
		if err != nil {
			return nil, err
		}
	}
	if view == domain.ChannelViewWithPlaylists || view == domain.ChannelViewFull {
		detail.Playlists, err = s.playlists.List(ctx, domain.PlaylistFilter{ChannelID: &c.ID, Limit: defaultListLimit})
		if err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *YouTubeService) ListChannels(ctx context.Context, offset, limit int) ([]domain.Channel, error) {
	offset, limit = normalizePage(offset, limit)
	return s.channels.List(ctx, offset, limit)
}

func (s *YouTubeService) UpdateChannel(ctx context.Context, id string, upd domain.ChannelUpdate) (*domain.Channel, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var c *domain.Channel
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		c, err = s.channels.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.URL != nil {
			c.URL = upd.URL
		}
		if upd.CreationDate != nil {
			c.CreationDate = upd.CreationDate
		}
		if upd.Description != nil {
			c.Description = upd.Description
		}
		return s.channels.Update(txCtx, c)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "yt_channel", domain.EventUpdated, c)
	return c, nil
}

func (s *YouTubeService) DeleteChannel(ctx context.Context, id string) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.channels.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, "yt_channel", domain.EventDeleted, map[string]string{"id": id})
	return nil
}

// --- Videos ---

func (s *YouTubeService) CreateVideo(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if v.ChannelID != nil {
			if _, err := s.channels.GetByID(txCtx, *v.ChannelID); err != nil {
				return err
			}
		}
		return s.videos.Create(txCtx, v)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("video created", "id", v.ID)
	s.publish(ctx, "yt_video", domain.EventCreated, v)
	return v, nil
}

func (s *YouTubeService) GetVideo(ctx context.Context, id string, view domain.VideoView) (*domain.VideoDetail, error) {
	v, err := s.videos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.VideoDetail{Video: *v}
	if (view == domain.VideoViewWithChannel || view == domain.VideoViewFull) && v.ChannelID != nil {
		detail.Channel, err = s.channels.GetByID(ctx, *v.ChannelID)
		if err != nil {
			return nil, err
		}
	}
	if view == domain.VideoViewWithVisualizations || view == domain.VideoViewFull {
		detail.Visualizations, err = s.visualizations.ListByVideo(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	if view == domain.VideoViewWithPlaylists || view == domain.VideoViewFull {
		detail.Playlists, err = s.videoPlaylists(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *YouTubeService) videoPlaylists(ctx context.Context, videoID string) ([]domain.VideoPlaylistEntry, error) {
	memberships, err := s.playlistVideos.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.VideoPlaylistEntry, 0, len(memberships))
	for _, m := range memberships {
		p, err := s.playlists.GetByID(ctx, m.PlaylistID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.VideoPlaylistEntry{Playlist: *p, Position: m.Position})
	}
	return entries, nil
}

func (s *YouTubeService) ListVideos(ctx context.Context, f domain.VideoFilter) ([]domain.Video, error) {
	f.Offset, f.Limit = normalizePage(f.Offset, f.Limit)
	return s.videos.List(ctx, f)
}

func (s *YouTubeService) UpdateVideo(ctx context.Context, id string, upd domain.VideoUpdate) (*domain.Video, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var v *domain.Video
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		v, err = s.videos.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if upd.ChannelID != nil {
			if _, err := s.channels.GetByID(txCtx, *upd.ChannelID); err != nil {
				return err
			}
			v.ChannelID = upd.ChannelID
		}
		if upd.Title != nil {
			v.Title = *upd.Title
		}
		if upd.PublishedAt != nil {
			v.PublishedAt = upd.PublishedAt
		}
		if upd.Description != nil {
			v.Description = upd.Description
		}
		if upd.URL != nil {
			v.URL = upd.URL
		}
		return s.videos.Update(txCtx, v)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "yt_video", domain.EventUpdated, v)
	return v, nil
}

func (s *YouTubeService) DeleteVideo(ctx context.Context, id string) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.videos.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, "yt_video", domain.EventDeleted, map[string]string{"id": id})
	return nil
}

// --- Video visualizations ---

func (s *YouTubeService) RecordVisualization(ctx context.Context, v *domain.VideoVisualization) (*domain.VideoVisualization, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.videos.GetByID(txCtx, v.VideoID); err != nil {
			return err
		}
		return s.visualizations.Create(txCtx, v)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "yt_video_visualization", domain.EventCreated, v)
	return v, nil
}

func (s *YouTubeService) GetVisualization(ctx context.Context, id int64, withVideo bool) (*domain.VideoVisualizationDetail, error) {
	v, err := s.visualizations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.VideoVisualizationDetail{VideoVisualization: *v}
	if withVideo {
		if detail.Video, err = s.videos.GetByID(ctx, v.VideoID); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *YouTubeService) ListVisualizations(ctx context.Context, videoID string) ([]domain.VideoVisualization, error) {
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return s.visualizations.ListByVideo(ctx, videoID)
}

func (s *YouTubeService) UpdateVisualization(ctx context.Context, id int64, upd domain.VisualizationUpdate) (*domain.VideoVisualization, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var v *domain.VideoVisualization
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		v, err = s.visualizations.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if upd.VisualizationDate != nil {
			v.VisualizationDate = *upd.VisualizationDate
		}
		if upd.ResumeSeconds != nil {
			v.ResumeSeconds = upd.ResumeSeconds
		}
		return s.visualizations.Update(txCtx, v)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "yt_video_visualization", domain.EventUpdated, v)
	return v, nil
}

func (s *YouTubeService) DeleteVisualization(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.visualizations.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, "yt_video_visualization", domain.EventDeleted, map[string]int64{"id": id})
	return nil
}

// --- Playlists ---

func (s *YouTubeService) CreatePlaylist(ctx context.Context, p *domain.Playlist) (*domain.Playlist, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if p.ChannelID != nil {
			if _, err := s.channels.GetByID(txCtx, *p.ChannelID); err != nil {
				return err
			}
		}
		return s.playlists.Create(txCtx, p)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "yt_playlist", domain.EventCreated, p)
	return p, nil
}

func (s *YouTubeService) GetPlaylist(ctx context.Context, id string, view domain.PlaylistView) (*domain.PlaylistDetail, error) {
	p, err := s.playlists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.PlaylistDetail{Playlist: *p}
	if (view == domain.PlaylistViewWithChannel || view == domain.PlaylistViewFull) && p.ChannelID != nil {
		detail.Channel, err = s.channels.GetByID(ctx, *p.ChannelID)
		if err != nil {
			return nil, err
		}
	}
	if view == domain.PlaylistViewWithVideos || view == domain.PlaylistViewFull {
		detail.Videos, err = s.playlistEntries(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *YouTubeService) playlistEntries(ctx context.Context, playlistID string) ([]domain.PlaylistVideoEntry, error) {
	memberships, err := s.playlistVideos.ListByPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.PlaylistVideoEntry, 0, len(memberships))
	for _, m := range memberships {
		v, err := s.videos.GetByID(ctx, m.VideoID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.PlaylistVideoEntry{Video: *v, Position: m.Position})
	}
	return entries, nil
}

func (s *YouTubeService) ListPlaylists(ctx context.Context, f domain.PlaylistFilter) ([]domain.Playlist, error) {
	f.Offset, f.Limit = normalizePage(f.Offset, f.Limit)
	return s.playlists.List(ctx, f)
}

func (s *YouTubeService) UpdatePlaylist(ctx context.Context, id string, upd domain.PlaylistUpdate) (*domain.Playlist, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var p *domain.Playlist
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		p, err = s.playlists.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if upd.ChannelID != nil {
			if _, err := s.channels.GetByID(txCtx, *upd.ChannelID); err != nil {
				return err
			}
			p.ChannelID = upd.ChannelID
		}
		if upd.Title != nil {
			p.Title = *upd.Title
		}
		if upd.Description != nil {
			p.Description = upd.Description
		}
		if upd.URL != nil {
			p.URL = upd.URL
		}
		return s.playlists.Update(txCtx, p)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "yt_playlist", domain.EventUpdated, p)
	return p, nil
}

func (s *YouTubeService) DeletePlaylist(ctx context.Context, id string) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.playlists.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, "yt_playlist", domain.EventDeleted, map[string]string{"id": id})
	return nil
}

// --- Playlist membership ---

func (s *YouTubeService) AddPlaylistVideo(ctx context.Context, pv *domain.PlaylistVideo) (*domain.PlaylistVideo, error) {
	if err := pv.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.playlists.GetByID(txCtx, pv.PlaylistID); err != nil {
			return err
		}
		if _, err := s.videos.GetByID(txCtx, pv.VideoID); err != nil {
			return err
		}
		return s.playlistVideos.Create(txCtx, pv)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "yt_playlist_video", domain.EventCreated, pv)
	return pv, nil
}

func (s *YouTubeService) GetPlaylistVideo(ctx context.Context, id int64) (*domain.PlaylistVideo, error) {
	return s.playlistVideos.GetByID(ctx, id)
}

func (s *YouTubeService) ListPlaylistVideos(ctx context.Context, playlistID string) ([]domain.PlaylistVideo, error) {
	if _, err := s.playlists.GetByID(ctx, playlistID); err != nil {
		return nil, err
	}
	return s.playlistVideos.ListByPlaylist(ctx, playlistID)
}

func (s *YouTubeService) UpdatePlaylistVideo(ctx context.Context, id int64, upd domain.PlaylistVideoUpdate) (*domain.PlaylistVideo, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var pv *domain.PlaylistVideo
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		pv, err = s.playlistVideos.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if upd.Position != nil {
			pv.Position = upd.Position
		}
		return s.playlistVideos.Update(txCtx, pv)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "yt_playlist_video", domain.EventUpdated, pv)
	return pv, nil
}

func (s *YouTubeService) RemovePlaylistVideo(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.playlistVideos.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, "yt_playlist_video", domain.EventDeleted, map[string]int64{"id": id})
	return nil
}
