package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"media_tracker/internal/domain"
)

type EpisodeStore struct {
	db *sqlx.DB
}

func NewEpisodeStore(db *sqlx.DB) *EpisodeStore {
	return &EpisodeStore{db: db}
}

func (s *EpisodeStore) Create(ctx context.Context, e *domain.Episode) error {
	query := `
		INSERT INTO tv_show_episodes (tv_show_id, external_id, season_num, episode_num, original_title)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		e.TVShowID,
		e.ExternalID,
		e.SeasonNum,
		e.EpisodeNum,
		e.OriginalTitle,
	).Scan(&e.ID)
	return mapWriteError(err, "tv show episode")
}

func (s *EpisodeStore) GetByID(ctx context.Context, id int64) (*domain.Episode, error) {
	var e domain.Episode
	query := `
		SELECT id, tv_show_id, external_id, season_num, episode_num, original_title
		FROM tv_show_episodes
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &e, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "tv show episode", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EpisodeStore) List(ctx context.Context, f domain.EpisodeFilter) ([]domain.Episode, error) {
	query := `
		SELECT id, tv_show_id, external_id, season_num, episode_num, original_title
		FROM tv_show_episodes`
	args := []any{}

	if f.TVShowID != nil {
		query += ` WHERE tv_show_id = $1`
		args = append(args, *f.TVShowID)
	}
	query += ` ORDER BY season_num, episode_num, id`
	query += ` OFFSET $` + itoa(len(args)+1)
	args = append(args, f.Offset)
	query += ` LIMIT $` + itoa(len(args)+1)
	args = append(args, f.Limit)

	episodes := []domain.Episode{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &episodes, query, args...)
	return episodes, err
}

func (s *EpisodeStore) Update(ctx context.Context, e *domain.Episode) error {
	query := `
		UPDATE tv_show_episodes
		SET tv_show_id = $1, external_id = $2, season_num = $3, episode_num = $4, original_title = $5
		WHERE id = $6`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		e.TVShowID,
		e.ExternalID,
		e.SeasonNum,
		e.EpisodeNum,
		e.OriginalTitle,
		e.ID,
	)
	if err != nil {
		return mapWriteError(err, "tv show episode")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "tv show episode", ID: e.ID}
	}
	return nil
}

func (s *EpisodeStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM tv_show_episodes WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err, "tv show episode")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "tv show episode", ID: id}
	}
	return nil
}
