package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"media_tracker/internal/domain"
)

type PlaylistVideoStore struct {
	db *sqlx.DB
}

func NewPlaylistVideoStore(db *sqlx.DB) *PlaylistVideoStore {
	return &PlaylistVideoStore{db: db}
}

func (s *PlaylistVideoStore) Create(ctx context.Context, pv *domain.PlaylistVideo) error {
	query := `
		INSERT INTO yt_playlist_videos (playlist_id, video_id, "position")
		VALUES ($1, $2, $3)
		RETURNING id`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		pv.PlaylistID,
		pv.VideoID,
		pv.Position,
	).Scan(&pv.ID)
	return mapWriteError(err, "playlist video")
}

func (s *PlaylistVideoStore) GetByID(ctx context.Context, id int64) (*domain.PlaylistVideo, error) {
	var pv domain.PlaylistVideo
	query := `
		SELECT id, playlist_id, video_id, "position"
		FROM yt_playlist_videos
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &pv, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "playlist video", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &pv, nil
}

func (s *PlaylistVideoStore) ListByPlaylist(ctx context.Context, playlistID string) ([]domain.PlaylistVideo, error) {
	query := `
		SELECT id, playlist_id, video_id, "position"
		FROM yt_playlist_videos
		WHERE playlist_id = $1
		ORDER BY "position" NULLS LAST, id`

	entries := []domain.PlaylistVideo{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &entries, query, playlistID)
	return entries, err
}

func (s *PlaylistVideoStore) ListByVideo(ctx context.Context, videoID string) ([]domain.PlaylistVideo, error) {
	query := `
		SELECT id, playlist_id, video_id, "position"
		FROM yt_playlist_videos
		WHERE video_id = $1
		ORDER BY playlist_id, "position" NULLS LAST`

	entries := []domain.PlaylistVideo{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &entries, query, videoID)
	return entries, err
}

func (s *PlaylistVideoStore) Update(ctx context.Context, pv *domain.PlaylistVideo) error {
	query := `
		UPDATE yt_playlist_videos
		SET "position" = $1
		WHERE id = $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, pv.Position, pv.ID)
	if err != nil {
		return mapWriteError(err, "playlist video")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "playlist video", ID: pv.ID}
	}
	return nil
}

func (s *PlaylistVideoStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM yt_playlist_videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "playlist video", ID: id}
	}
	return nil
}
