package service

import (
	"context"
	"log/slog"

	"media_tracker/internal/domain"
)

// EpisodeService owns TV show episodes and their translations and watch
// history. Every write that sets or changes an episode's tv_show_id
// re-resolves the referenced media row and requires it to be a TV show;
// the check runs inside the write transaction so the parent cannot change
// type underneath it.
type EpisodeService struct {
	media          MediaStore
	episodes       EpisodeStore
	translations   EpisodeTranslationStore
	visualizations EpisodeVisualizationStore
	txManager      TransactionManager
	publisher      Publisher
	logger         *slog.Logger
}

func NewEpisodeService(
	media MediaStore,
	episodes EpisodeStore,
	translations EpisodeTranslationStore,
	visualizations EpisodeVisualizationStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *EpisodeService {
	return &EpisodeService{
		media:          media,
		episodes:       episodes,
		translations:   translations,
		visualizations: visualizations,
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger.With("service", "episode"),
	}
}

func (s *EpisodeService) publish(ctx context.Context, entity string, action domain.EventAction, payload any) {
	if s.publisher == nil {
		return
	}
	event := domain.Event{Entity: entity, Action: action, Payload: payload}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "entity", entity, "action", action, "error", err)
	}
}

// checkTVShow resolves the referenced media row and rejects the write when
// it is missing or is not of type tv_show.
func (s *EpisodeService) checkTVShow(ctx context.Context, tvShowID int64) error {
	m, err := s.media.GetByID(ctx, tvShowID)
	if err != nil {
		return err
	}
	if m.Type != domain.MediaTypeTVShow {
		return &domain.TypeMismatchError{MediaID: tvShowID, Actual: m.Type}
	}
	return nil
}

func (s *EpisodeService) CreateEpisode(ctx context.Context, e *domain.Episode) (*domain.Episode, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.checkTVShow(txCtx, e.TVShowID); err != nil {
			return err
		}
		return s.episodes.Create(txCtx, e)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("episode created", "id", e.ID, "tv_show_id", e.TVShowID)
	s.publish(ctx, "tv_show_episode", domain.EventCreated, e)
	return e, nil
}

func (s *EpisodeService) GetEpisode(ctx context.Context, id int64, view domain.EpisodeView) (*domain.EpisodeDetail, error) {
	e, err := s.episodes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.EpisodeDetail{Episode: *e}
	switch view {
	case domain.EpisodeViewWithTranslations:
		detail.Translations, err = s.translations.ListByEpisode(ctx, id)
	case domain.EpisodeViewWithVisualizations:
		detail.Visualizations, err = s.visualizations.ListByEpisode(ctx, id)
	case domain.EpisodeViewFull, domain.EpisodeViewFullWithTVShow:
		if detail.Translations, err = s.translations.ListByEpisode(ctx, id); err != nil {
			return nil, err
		}
		if detail.Visualizations, err = s.visualizations.ListByEpisode(ctx, id); err != nil {
			return nil, err
		}
		if view == domain.EpisodeViewFullWithTVShow {
			detail.TVShow, err = s.media.GetByID(ctx, e.TVShowID)
		}
	}
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *EpisodeService) ListEpisodes(ctx context.Context, f domain.EpisodeFilter) ([]domain.Episode, error) {
	f.Offset, f.Limit = normalizePage(f.Offset, f.Limit)
	return s.episodes.List(ctx, f)
}

func (s *EpisodeService) UpdateEpisode(ctx context.Context, id int64, upd domain.EpisodeUpdate) (*domain.Episode, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var e *domain.Episode
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		e, err = s.episodes.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if upd.TVShowID != nil {
			// Re-validate even when the id is unchanged: the media row's
			// type may have drifted since the episode was linked.
			if err := s.checkTVShow(txCtx, *upd.TVShowID); err != nil {
				return err
			}
			e.TVShowID = *upd.TVShowID
		}
		if upd.ExternalID != nil {
			e.ExternalID = upd.ExternalID
		}
		if upd.SeasonNum != nil {
			e.SeasonNum = upd.SeasonNum
		}
		if upd.EpisodeNum != nil {
			e.EpisodeNum = upd.EpisodeNum
		}
		if upd.OriginalTitle != nil {
			e.OriginalTitle = *upd.OriginalTitle
		}
		return s.episodes.Update(txCtx, e)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "tv_show_episode", domain.EventUpdated, e)
	return e, nil
}

func (s *EpisodeService) DeleteEpisode(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.episodes.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("episode deleted", "id", id)
	s.publish(ctx, "tv_show_episode", domain.EventDeleted, map[string]int64{"id": id})
	return nil
}

// --- Translations ---

func (s *EpisodeService) CreateTranslation(ctx context.Context, t *domain.EpisodeTranslation) (*domain.EpisodeTranslation, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.episodes.GetByID(txCtx, t.EpisodeID); err != nil {
			return err
		}
		return s.translations.Create(txCtx, t)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "tv_show_episode_translation", domain.EventCreated, t)
	return t, nil
}

func (s *EpisodeService) GetTranslation(ctx context.Context, episodeID int64, languageCode string, withEpisode bool) (*domain.EpisodeTranslationDetail, error) {
	t, err := s.translations.Get(ctx, episodeID, languageCode)
	if err != nil {
		return nil, err
	}

	detail := &domain.EpisodeTranslationDetail{EpisodeTranslation: *t}
	if withEpisode {
		if detail.Episode, err = s.episodes.GetByID(ctx, episodeID); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *EpisodeService) ListTranslations(ctx context.Context, episodeID int64) ([]domain.EpisodeTranslation, error) {
	if _, err := s.episodes.GetByID(ctx, episodeID); err != nil {
		return nil, err
	}
	return s.translations.ListByEpisode(ctx, episodeID)
}

func (s *EpisodeService) UpdateTranslation(ctx context.Context, episodeID int64, languageCode string, upd domain.MediaTranslationUpdate) (*domain.EpisodeTranslation, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var t *domain.EpisodeTranslation
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = s.translations.Get(txCtx, episodeID, languageCode)
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

	s.publish(ctx, "tv_show_episode_translation", domain.EventUpdated, t)
	return t, nil
}

func (s *EpisodeService) DeleteTranslation(ctx context.Context, episodeID int64, languageCode string) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.translations.Delete(txCtx, episodeID, languageCode)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, "tv_show_episode_translation", domain.EventDeleted, map[string]any{
		"episode_id":    episodeID,
		"language_code": languageCode,
	})
	return nil
}

// --- Visualizations ---

func (s *EpisodeService) RecordVisualization(ctx context.Context, v *domain.EpisodeVisualization) (*domain.EpisodeVisualization, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.episodes.GetByID(txCtx, v.EpisodeID); err != nil {
			return err
		}
		return s.visualizations.Create(txCtx, v)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "tv_show_episode_visualization", domain.EventCreated, v)
	return v, nil
}

func (s *EpisodeService) GetVisualization(ctx context.Context, id int64, withEpisode bool) (*domain.EpisodeVisualizationDetail, error) {
	v, err := s.visualizations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.EpisodeVisualizationDetail{EpisodeVisualization: *v}
	if withEpisode {
		if detail.Episode, err = s.episodes.GetByID(ctx, v.EpisodeID); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *EpisodeService) ListVisualizations(ctx context.Context, episodeID int64) ([]domain.EpisodeVisualization, error) {
	if _, err := s.episodes.GetByID(ctx, episodeID); err != nil {
		return nil, err
	}
	return s.visualizations.ListByEpisode(ctx, episodeID)
}

func (s *EpisodeService) UpdateVisualization(ctx context.Context, id int64, upd domain.VisualizationUpdate) (*domain.EpisodeVisualization, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var v *domain.EpisodeVisualization
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

	s.publish(ctx, "tv_show_episode_visualization", domain.EventUpdated, v)
	return v, nil
}

func (s *EpisodeService) DeleteVisualization(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.visualizations.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, "tv_show_episode_visualization", domain.EventDeleted, map[string]int64{"id": id})
	return nil
}
