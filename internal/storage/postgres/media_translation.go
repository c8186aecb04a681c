package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"media_tracker/internal/domain"
)

type MediaTranslationStore struct {
	db *sqlx.DB
}

func NewMediaTranslationStore(db *sqlx.DB) *MediaTranslationStore {
	return &MediaTranslationStore{db: db}
}

func (s *MediaTranslationStore) Create(ctx context.Context, t *domain.MediaTranslation) error {
	query := `
		INSERT INTO media_translations (media_id, language_code, title)
		VALUES ($1, $2, $3)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, t.MediaID, t.LanguageCode, t.Title)
	return mapWriteError(err, "media translation")
}

func (s *MediaTranslationStore) Get(ctx context.Context, mediaID int64, languageCode string) (*domain.MediaTranslation, error) {
	var t domain.MediaTranslation
	query := `
		SELECT media_id, language_code, title
		FROM media_translations
		WHERE media_id = $1 AND language_code = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &t, query, mediaID, languageCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{
			Entity: "media translation",
			ID:     fmt.Sprintf("%d/%s", mediaID, languageCode),
		}
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *MediaTranslationStore) ListByMedia(ctx context.Context, mediaID int64) ([]domain.MediaTranslation, error) {
	query := `
		SELECT media_id, language_code, title
		FROM media_translations
		WHERE media_id = $1
		ORDER BY language_code`

	translations := []domain.MediaTranslation{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &translations, query, mediaID)
	return translations, err
}

func (s *MediaTranslationStore) Update(ctx context.Context, t *domain.MediaTranslation) error {
	query := `
		UPDATE media_translations
		SET title = $1
		WHERE media_id = $2 AND language_code = $3`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, t.Title, t.MediaID, t.LanguageCode)
	if err != nil {
		return mapWriteError(err, "media translation")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{
			Entity: "media translation",
			ID:     fmt.Sprintf("%d/%s", t.MediaID, t.LanguageCode),
		}
	}
	return nil
}

func (s *MediaTranslationStore) Delete(ctx context.Context, mediaID int64, languageCode string) error {
	query := `DELETE FROM media_translations WHERE media_id = $1 AND language_code = $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, mediaID, languageCode)
	if err != nil {
		return mapDeleteError(err, "media translation")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{
			Entity: "media translation",
			ID:     fmt.Sprintf("%d/%s", mediaID, languageCode),
		}
	}
	return nil
}
