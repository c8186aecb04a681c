package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"media_tracker/internal/domain"
)

type EpisodeTranslationStore struct {
	db *sqlx.DB
}

func NewEpisodeTranslationStore(db *sqlx.DB) *EpisodeTranslationStore {
	return &EpisodeTranslationStore{db: db}
}

func (s *EpisodeTranslationStore) Create(ctx context.Context, t *domain.EpisodeTranslation) error {
	query := `
		INSERT INTO tv_show_episode_translations (episode_id, language_code, title)
		VALUES ($1, $2, $3)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, t.EpisodeID, t.LanguageCode, t.Title)
	return mapWriteError(err, "episode translation")
}

func (s *EpisodeTranslationStore) Get(ctx context.Context, episodeID int64, languageCode string) (*domain.EpisodeTranslation, error) {
	var t domain.EpisodeTranslation
	query := `
		SELECT episode_id, language_code, title
		FROM tv_show_episode_translations
		WHERE episode_id = $1 AND language_code = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &t, query, episodeID, languageCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{
			Entity: "episode translation",
			ID:     fmt.Sprintf("%d/%s", episodeID, languageCode),
		}
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *EpisodeTranslationStore) ListByEpisode(ctx context.Context, episodeID int64) ([]domain.EpisodeTranslation, error) {
	query := `
		SELECT episode_id, language_code, title
		FROM tv_show_episode_translations
		WHERE episode_id = $1
		ORDER BY language_code`

	translations := []domain.EpisodeTranslation{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &translations, query, episodeID)
	return translations, err
}

func (s *EpisodeTranslationStore) Update(ctx context.Context, t *domain.EpisodeTranslation) error {
	query := `
		UPDATE tv_show_episode_translations
		SET title = $1
		WHERE episode_id = $2 AND language_code = $3`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, t.Title, t.EpisodeID, t.LanguageCode)
	if err != nil {
		return mapWriteError(err, "episode translation")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{
			Entity: "episode translation",
			ID:     fmt.Sprintf("%d/%s", t.EpisodeID, t.LanguageCode),
		}
	}
	return nil
}

func (s *EpisodeTranslationStore) Delete(ctx context.Context, episodeID int64, languageCode string) error {
	query := `DELETE FROM tv_show_episode_translations WHERE episode_id = $1 AND language_code = $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, episodeID, languageCode)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{
			Entity: "episode translation",
			ID:     fmt.Sprintf("%d/%s", episodeID, languageCode),
		}
	}
	return nil
}
