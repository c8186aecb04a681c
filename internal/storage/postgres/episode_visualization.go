package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"media_tracker/internal/domain"
)

type EpisodeVisualizationStore struct {
	db *sqlx.DB
}

func NewEpisodeVisualizationStore(db *sqlx.DB) *EpisodeVisualizationStore {
	return &EpisodeVisualizationStore{db: db}
}

func (s *EpisodeVisualizationStore) Create(ctx context.Context, v *domain.EpisodeVisualization) error {
	query := `
		INSERT INTO tv_show_episode_visualizations (episode_id, visualization_date, resume_seconds)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		v.EpisodeID,
		v.VisualizationDate,
		v.ResumeSeconds,
	).Scan(&v.ID)
	return mapWriteError(err, "episode visualization")
}

func (s *EpisodeVisualizationStore) GetByID(ctx context.Context, id int64) (*domain.EpisodeVisualization, error) {
	var v domain.EpisodeVisualization
	query := `
		SELECT id, episode_id, visualization_date, resume_seconds
		FROM tv_show_episode_visualizations
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &v, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "episode visualization", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *EpisodeVisualizationStore) ListByEpisode(ctx context.Context, episodeID int64) ([]domain.EpisodeVisualization, error) {
	query := `
		SELECT id, episode_id, visualization_date, resume_seconds
		FROM tv_show_episode_visualizations
		WHERE episode_id = $1
		ORDER BY visualization_date, id`

	visualizations := []domain.EpisodeVisualization{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &visualizations, query, episodeID)
	return visualizations, err
}

func (s *EpisodeVisualizationStore) Update(ctx context.Context, v *domain.EpisodeVisualization) error {
	query := `
		UPDATE tv_show_episode_visualizations
		SET visualization_date = $1, resume_seconds = $2
		WHERE id = $3`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, v.VisualizationDate, v.ResumeSeconds, v.ID)
	if err != nil {
		return mapWriteError(err, "episode visualization")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "episode visualization", ID: v.ID}
	}
	return nil
}

func (s *EpisodeVisualizationStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM tv_show_episode_visualizations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "episode visualization", ID: id}
	}
	return nil
}
