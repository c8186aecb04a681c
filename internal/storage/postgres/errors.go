package postgres

import (
	"errors"

	"github.com/lib/pq"

	"media_tracker/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeStringTooLong       = "22001"
)

// conflictDetails maps unique constraints to caller-facing messages.
var conflictDetails = map[string]string{
	"media_pkey":                              "id already exists",
	"uq_media_external_id_type":               "external_id already used for this media type",
	"media_translations_pkey":                 "translation already exists for this language",
	"tv_show_episode_translations_pkey":       "translation already exists for this language",
	"yt_channels_pkey":                        "channel id already exists",
	"yt_videos_pkey":                          "video id already exists",
	"yt_playlists_pkey":                       "playlist id already exists",
	"uq_yt_playlist_videos_playlist_position": "position already taken in this playlist",
}

// referencedEntities maps foreign keys to the entity the failed write
// pointed at. Services pre-check references inside the transaction, so
// hitting one of these is a race backstop, not the normal path.
var referencedEntities = map[string]string{
	"media_translations_media_id_fkey":               "media",
	"media_visualizations_media_id_fkey":             "media",
	"tv_show_episodes_tv_show_id_fkey":               "media",
	"tv_show_episode_translations_episode_id_fkey":   "tv show episode",
	"tv_show_episode_visualizations_episode_id_fkey": "tv show episode",
	"yt_videos_channel_id_fkey":                      "channel",
	"yt_video_visualizations_video_id_fkey":          "video",
	"yt_playlists_channel_id_fkey":                   "channel",
	"yt_playlist_videos_playlist_id_fkey":            "playlist",
	"yt_playlist_videos_video_id_fkey":               "video",
}

// mapWriteError translates constraint failures raised by an INSERT or
// UPDATE into the domain error taxonomy.
func mapWriteError(err error, entity string) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case codeUniqueViolation:
		detail := conflictDetails[pqErr.Constraint]
		if detail == "" {
			detail = pqErr.Detail
		}
		return &domain.ConflictError{Entity: entity, Detail: detail}
	case codeForeignKeyViolation:
		ref := referencedEntities[pqErr.Constraint]
		if ref == "" {
			ref = "referenced row"
		}
		return &domain.NotFoundError{Entity: ref, ID: "referenced id"}
	case codeCheckViolation, codeStringTooLong:
		return &domain.ValidationError{Field: pqErr.Column, Reason: pqErr.Message}
	}
	return err
}

// mapDeleteError translates a RESTRICT foreign-key failure on DELETE into a
// conflict: the row still has dependents and may not be removed.
func mapDeleteError(err error, entity string) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == codeForeignKeyViolation {
		return &domain.ConflictError{Entity: entity, Detail: "row is referenced by dependent rows"}
	}
	return err
}
