package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"media_tracker/internal/domain"
)

type MediaStore struct {
	db *sqlx.DB
}

func NewMediaStore(db *sqlx.DB) *MediaStore {
	return &MediaStore{db: db}
}

func (s *MediaStore) Create(ctx context.Context, m *domain.Media) error {
	query := `
		INSERT INTO media (external_id, type, original_title, release_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		m.ExternalID,
		m.Type,
		m.OriginalTitle,
		m.ReleaseDate,
	).Scan(&m.ID)
	return mapWriteError(err, "media")
}

func (s *MediaStore) GetByID(ctx context.Context, id int64) (*domain.Media, error) {
	var m domain.Media
	query := `
		SELECT id, external_id, type, original_title, release_date
		FROM media
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &m, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "media", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MediaStore) List(ctx context.Context, f domain.MediaFilter) ([]domain.Media, error) {
	query := `
		SELECT id, external_id, type, original_title, release_date
		FROM media`
	args := []any{}

	if f.Type != nil {
		query += ` WHERE type = $1`
		args = append(args, *f.Type)
	}
	query += ` ORDER BY id`
	query += ` OFFSET $` + itoa(len(args)+1)
	args = append(args, f.Offset)
	query += ` LIMIT $` + itoa(len(args)+1)
	args = append(args, f.Limit)

	media := []domain.Media{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &media, query, args...)
	return media, err
}

func (s *MediaStore) Update(ctx context.Context, m *domain.Media) error {
	query := `
		UPDATE media
		SET external_id = $1, type = $2, original_title = $3, release_date = $4
		WHERE id = $5`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		m.ExternalID,
		m.Type,
		m.OriginalTitle,
		m.ReleaseDate,
		m.ID,
	)
	if err != nil {
		return mapWriteError(err, "media")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "media", ID: m.ID}
	}
	return nil
}

func (s *MediaStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err, "media")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "media", ID: id}
	}
	return nil
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}
