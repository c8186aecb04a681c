package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"media_tracker/internal/domain"
)

type MediaVisualizationStore struct {
	db *sqlx.DB
}

func NewMediaVisualizationStore(db *sqlx.DB) *MediaVisualizationStore {
	return &MediaVisualizationStore{db: db}
}

func (s *MediaVisualizationStore) Create(ctx context.Context, v *domain.MediaVisualization) error {
	query := `
		INSERT INTO media_visualizations (media_id, visualization_date, resume_seconds)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		v.MediaID,
		v.VisualizationDate,
		v.ResumeSeconds,
	).Scan(&v.ID)
	return mapWriteError(err, "media visualization")
}

func (s *MediaVisualizationStore) GetByID(ctx context.Context, id int64) (*domain.MediaVisualization, error) {
	var v domain.MediaVisualization
	query := `
		SELECT id, media_id, visualization_date, resume_seconds
		FROM media_visualizations
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &v, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "media visualization", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *MediaVisualizationStore) ListByMedia(ctx context.Context, mediaID int64) ([]domain.MediaVisualization, error) {
	query := `
		SELECT id, media_id, visualization_date, resume_seconds
		FROM media_visualizations
		WHERE media_id = $1
		ORDER BY visualization_date, id`

	visualizations := []domain.MediaVisualization{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &visualizations, query, mediaID)
	return visualizations, err
}

func (s *MediaVisualizationStore) Update(ctx context.Context, v *domain.MediaVisualization) error {
	query := `
		UPDATE media_visualizations
		SET visualization_date = $1, resume_seconds = $2
		WHERE id = $3`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, v.VisualizationDate, v.ResumeSeconds, v.ID)
	if err != nil {
		return mapWriteError(err, "media visualization")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "media visualization", ID: v.ID}
	}
	return nil
}

func (s *MediaVisualizationStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM media_visualizations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "media visualization", ID: id}
	}
	return nil
}
