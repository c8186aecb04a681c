package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"media_tracker/internal/domain"
)

type ChannelStore struct {
	db *sqlx.DB
}

func NewChannelStore(db *sqlx.DB) *ChannelStore {
	return &ChannelStore{db: db}
}

func (s *ChannelStore) Create(ctx context.Context, c *domain.Channel) error {
	query := `
		INSERT INTO yt_channels (id, name, url, creation_date, description)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.URL,
		c.CreationDate,
		c.Description,
	)
	return mapWriteError(err, "channel")
}

func (s *ChannelStore) GetByID(ctx context.Context, id string) (*domain.Channel, error) {
	var c domain.Channel
	query := `
		SELECT id, name, url, creation_date, description
		FROM yt_channels
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "channel", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ChannelStore) List(ctx context.Context, offset, limit int) ([]domain.Channel, error) {
	query := `
		SELECT id, name, url, creation_date, description
		FROM yt_channels
		ORDER BY id
		OFFSET $1 LIMIT $2`

	channels := []domain.Channel{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &channels, query, offset, limit)
	return channels, err
}

func (s *ChannelStore) Update(ctx context.Context, c *domain.Channel) error {
	query := `
		UPDATE yt_channels
		SET name = $1, url = $2, creation_date = $3, description = $4
		WHERE id = $5`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		c.Name,
		c.URL,
		c.CreationDate,
		c.Description,
		c.ID,
	)
	if err != nil {
		return mapWriteError(err, "channel")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "channel", ID: c.ID}
	}
	return nil
}

func (s *ChannelStore) Delete(ctx context.Context, id string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM yt_channels WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err, "channel")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "channel", ID: id}
	}
	return nil
}
