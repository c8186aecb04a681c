package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"media_tracker/internal/domain"
)

type VideoStore struct {
	db *sqlx.DB
}

func NewVideoStore(db *sqlx.DB) *VideoStore {
	return &VideoStore{db: db}
}

func (s *VideoStore) Create(ctx context.Context, v *domain.Video) error {
	query := `
		INSERT INTO yt_videos (id, channel_id, title, published_at, description, url)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		v.ID,
		v.ChannelID,
		v.Title,
		v.PublishedAt,
		v.Description,
		v.URL,
	)
	return mapWriteError(err, "video")
}

func (s *VideoStore) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	var v domain.Video
	query := `
		SELECT id, channel_id, title, published_at, description, url
		FROM yt_videos
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &v, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "video", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VideoStore) List(ctx context.Context, f domain.VideoFilter) ([]domain.Video, error) {
	query := `
		SELECT id, channel_id, title, published_at, description, url
		FROM yt_videos`
	args := []any{}

	if f.ChannelID != nil {
		query += ` WHERE channel_id = $1`
		args = append(args, *f.ChannelID)
	}
	query += ` ORDER BY id`
	query += ` OFFSET $` + itoa(len(args)+1)
	args = append(args, f.Offset)
	query += ` LIMIT $` + itoa(len(args)+1)
	args = append(args, f.Limit)

	videos := []domain.Video{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &videos, query, args...)
	return videos, err
}

func (s *VideoStore) Update(ctx context.Context, v *domain.Video) error {
	query := `
		UPDATE yt_videos
		SET channel_id = $1, title = $2, published_at = $3, description = $4, url = $5
		WHERE id = $6`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		v.ChannelID,
		v.Title,
		v.PublishedAt,
		v.Description,
		v.URL,
		v.ID,
	)
	if err != nil {
		return mapWriteError(err, "video")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "video", ID: v.ID}
	}
	return nil
}

func (s *VideoStore) Delete(ctx context.Context, id string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM yt_videos WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err, "video")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "video", ID: id}
	}
	return nil
}
