package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"media_tracker/internal/domain"
)

type PlaylistStore struct {
	db *sqlx.DB
}

func NewPlaylistStore(db *sqlx.DB) *PlaylistStore {
	return &PlaylistStore{db: db}
}

func (s *PlaylistStore) Create(ctx context.Context, p *domain.Playlist) error {
	query := `
		INSERT INTO yt_playlists (id, channel_id, title, description, url)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		p.ID,
		p.ChannelID,
		p.Title,
		p.Description,
		p.URL,
	)
	return mapWriteError(err, "playlist")
}

func (s *PlaylistStore) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	var p domain.Playlist
	query := `
		SELECT id, channel_id, title, description, url
		FROM yt_playlists
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "playlist", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PlaylistStore) List(ctx context.Context, f domain.PlaylistFilter) ([]domain.Playlist, error) {
	query := `
		SELECT id, channel_id, title, description, url
		FROM yt_playlists`
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

	playlists := []domain.Playlist{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &playlists, query, args...)
	return playlists, err
}

func (s *PlaylistStore) Update(ctx context.Context, p *domain.Playlist) error {
	query := `
		UPDATE yt_playlists
		SET channel_id = $1, title = $2, description = $3, url = $4
		WHERE id = $5`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		p.ChannelID,
		p.Title,
		p.Description,
		p.URL,
		p.ID,
	)
	if err != nil {
		return mapWriteError(err, "playlist")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "playlist", ID: p.ID}
	}
	return nil
}

func (s *PlaylistStore) Delete(ctx context.Context, id string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM yt_playlists WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err, "playlist")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "playlist", ID: id}
	}
	return nil
}
