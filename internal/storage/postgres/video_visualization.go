package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"media_tracker/internal/domain"
)

type VideoVisualizationStore struct {
	db *sqlx.DB
}

func NewVideoVisualizationStore(db *sqlx.DB) *VideoVisualizationStore {
	return &VideoVisualizationStore{db: db}
}

func (s *VideoVisualizationStore) Create(ctx context.Context, v *domain.VideoVisualization) error {
	query := `
		INSERT INTO yt_video_visualizations (video_id, visualization_date, resume_seconds)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		v.VideoID,
		v.VisualizationDate,
		v.ResumeSeconds,
	).Scan(&v.ID)
	return mapWriteError(err, "video visualization")
}

func (s *VideoVisualizationStore) GetByID(ctx context.Context, id int64) (*domain.VideoVisualization, error) {
	var v domain.VideoVisualization
	query := `
		SELECT id, video_id, visualization_date, resume_seconds
		FROM yt_video_visualizations
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &v, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "video visualization", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VideoVisualizationStore) ListByVideo(ctx context.Context, videoID string) ([]domain.VideoVisualization, error) {
	query := `
		SELECT id, video_id, visualization_date, resume_seconds
		FROM yt_video_visualizations
		WHERE video_id = $1
		ORDER BY visualization_date, id`

	visualizations := []domain.VideoVisualization{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &visualizations, query, videoID)
	return visualizations, err
}

func (s *VideoVisualizationStore) Update(ctx context.Context, v *domain.VideoVisualization) error {
	query := `
		UPDATE yt_video_visualizations
		SET visualization_date = $1, resume_seconds = $2
		WHERE id = $3`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, v.VisualizationDate, v.ResumeSeconds, v.ID)
	if err != nil {
		return mapWriteError(err, "video visualization")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "video visualization", ID: v.ID}
	}
	return nil
}

func (s *VideoVisualizationStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM yt_video_visualizations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "video visualization", ID: id}
	}
	return nil
}
