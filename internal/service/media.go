package service

import (
	"context"
	"log/slog"

	"media_tracker/internal/domain"
)

// MediaService owns the media subtree: media rows, their per-language
// translations, and their watch history.
type MediaService struct {
	media          MediaStore
	translations   MediaTranslationStore
	visualizations MediaVisualizationStore
	episodes       EpisodeStore
	txManager      TransactionManager
	publisher      Publisher
	logger         *slog.Logger
}

func NewMediaService(
	media MediaStore,
	translations MediaTranslationStore,
	visualizations MediaVisualizationStore,
	episodes EpisodeStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *MediaService {
	return &MediaService{
		media:          media,
		translations:   translations,
		visualizations: visualizations,
		episodes:       episodes,
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger.With("service", "media"),
	}
}

func (s *MediaService) publish(ctx context.Context, entity string, action domain.EventAction, payload any) {
	if s.publisher == nil {
		return
	}
	event := domain.Event{Entity: entity, Action: action, Payload: payload}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "entity", entity, "action", action, "error", err)
	}
}

func (s *MediaService) CreateMedia(ctx context.Context, m *domain.Media) (*domain.Media, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.media.Create(txCtx, m)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("media created", "id", m.ID, "type", m.Type)
	s.publish(ctx, "media", domain.EventCreated, m)
	return m, nil
}

func (s *MediaService) GetMedia(ctx context.Context, id int64, view domain.MediaView) (*domain.MediaDetail, error) {
	m, err := s.media.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.loadMediaDetail(ctx, *m, view)
}

func (s *MediaService) ListMedia(ctx context.Context, f domain.MediaFilter, view domain.MediaView) ([]domain.MediaDetail, error) {
	f.Offset, f.Limit = normalizePage(f.Offset, f.Limit)

	media, err := s.media.List(ctx, f)
	if err != nil {
		return nil, err
	}

	details := make([]domain.MediaDetail, 0, len(media))
	for _, m := range media {
		d, err := s.loadMediaDetail(ctx, m, view)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

func (s *MediaService) loadMediaDetail(ctx context.Context, m domain.Media, view domain.MediaView) (*domain.MediaDetail, error) {
	detail := &domain.MediaDetail{Media: m}

	var err error
	switch view {
	case domain.MediaViewWithTranslations:
		detail.Translations, err = s.translations.ListByMedia(ctx, m.ID)
	case domain.MediaViewWithVisualizations:
		detail.Visualizations, err = s.visualizations.ListByMedia(ctx, m.ID)
	case domain.MediaViewFull, domain.MediaViewFullWithEpisodes:
		if detail.Translations, err = s.translations.ListByMedia(ctx, m.ID); err != nil {
			return nil, err
		}
		if detail.Visualizations, err = s.visualizations.ListByMedia(ctx, m.ID); err != nil {
			return nil, err
		}
		if view == domain.MediaViewFullWithEpisodes {
			detail.Episodes, err = s.episodes.List(ctx, domain.EpisodeFilter{
				TVShowID: &m.ID,
				Limit:    defaultListLimit,
			})
		}
	}
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *MediaService) UpdateMedia(ctx context.Context, id int64, upd domain.MediaUpdate) (*domain.Media, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var m *domain.Media
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		m, err = s.media.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if upd.ExternalID != nil {
			m.ExternalID = upd.ExternalID
		}
		if upd.Type != nil {
			m.Type = *upd.Type
		}
		if upd.OriginalTitle != nil {
			m.OriginalTitle = *upd.OriginalTitle
		}
		if upd.ReleaseDate != nil {
			m.ReleaseDate = upd.ReleaseDate
		}
		return s.media.Update(txCtx, m)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "media", domain.EventUpdated, m)
	return m, nil
}

func (s *MediaService) DeleteMedia(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.media.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("media deleted", "id", id)
	s.publish(ctx, "media", domain.EventDeleted, map[string]int64{"id": id})
	return nil
}

// --- Translations ---

func (s *MediaService) CreateTranslation(ctx context.Context, t *domain.MediaTranslation) (*domain.MediaTranslation, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.media.GetByID(txCtx, t.MediaID); err != nil {
			return err
		}
		return s.translations.Create(txCtx, t)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "media_translation", domain.EventCreated, t)
	return t, nil
}

func (s *MediaService) GetTranslation(ctx context.Context, mediaID int64, languageCode string, withMedia bool) (*domain.MediaTranslationDetail, error) {
	t, err := s.translations.Get(ctx, mediaID, languageCode)
	if err != nil {
		return nil, err
	}

	detail := &domain.MediaTranslationDetail{MediaTranslation: *t}
	if withMedia {
		if detail.Media, err = s.media.GetByID(ctx, mediaID); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *MediaService) ListTranslations(ctx context.Context, mediaID int64) ([]domain.MediaTranslation, error) {
	if _, err := s.media.GetByID(ctx, mediaID); err != nil {
		return nil, err
	}
	return s.translations.ListByMedia(ctx, mediaID)
}

func (s *MediaService) UpdateTranslation(ctx context.Context, mediaID int64, languageCode string, upd domain.MediaTranslationUpdate) (*domain.MediaTranslation, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var t *domain.MediaTranslation
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = s.translations.Get(txCtx, mediaID, languageCode)
		if err != nil {
			return err
		}
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		return s.translations.Update(txCtx, t)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "media_translation", domain.EventUpdated, t)
	return t, nil
}

func (s *MediaService) DeleteTranslation(ctx context.Context, mediaID int64, languageCode string) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.translations.Delete(txCtx, mediaID, languageCode)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, "media_translation", domain.EventDeleted, map[string]any{
		"media_id":      mediaID,
		"language_code": languageCode,
	})
	return nil
}

// --- Visualizations ---

func (s *MediaService) RecordVisualization(ctx context.Context, v *domain.MediaVisualization) (*domain.MediaVisualization, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.media.GetByID(txCtx, v.MediaID); err != nil {
			return err
		}
		return s.visualizations.Create(txCtx, v)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "media_visualization", domain.EventCreated, v)
	return v, nil
}

func (s *MediaService) GetVisualization(ctx context.Context, id int64, withMedia bool) (*domain.MediaVisualizationDetail, error) {
	v, err := s.visualizations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.MediaVisualizationDetail{MediaVisualization: *v}
	if withMedia {
		if detail.Media, err = s.media.GetByID(ctx, v.MediaID); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *MediaService) ListVisualizations(ctx context.Context, mediaID int64) ([]domain.MediaVisualization, error) {
	if _, err := s.media.GetByID(ctx, mediaID); err != nil {
		return nil, err
	}
	return s.visualizations.ListByMedia(ctx, mediaID)
}

func (s *MediaService) UpdateVisualization(ctx context.Context, id int64, upd domain.VisualizationUpdate) (*domain.MediaVisualization, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var v *domain.MediaVisualization
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

	s.publish(ctx, "media_visualization", domain.EventUpdated, v)
	return v, nil
}

func (s *MediaService) DeleteVisualization(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.visualizations.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, "media_visualization", domain.EventDeleted, map[string]int64{"id": id})
	return nil
}
