package domain

import "time"

// Episode is one season/episode entry of a TV show. TVShowID must reference
// a Media row of type tv_show; the episode service re-checks that on every
// write that sets or changes the reference.
type Episode struct {
	ID            int64  `db:"id" json:"id"`
	TVShowID      int64  `db:"tv_show_id" json:"tv_show_id"`
	ExternalID    *int64 `db:"external_id" json:"external_id,omitempty"`
	SeasonNum     *int   `db:"season_num" json:"season_num,omitempty"`
	EpisodeNum    *int   `db:"episode_num" json:"episode_num,omitempty"`
	OriginalTitle string `db:"original_title" json:"original_title"`
}

func (e *Episode) Validate() error {
	return validateTitle("original_title", e.OriginalTitle)
}

type EpisodeUpdate struct {
	TVShowID      *int64  `json:"tv_show_id"`
	ExternalID    *int64  `json:"external_id"`
	SeasonNum     *int    `json:"season_num"`
	EpisodeNum    *int    `json:"episode_num"`
	OriginalTitle *string `json:"original_title"`
}

func (u *EpisodeUpdate) Validate() error {
	if u.OriginalTitle != nil {
		return validateTitle("original_title", *u.OriginalTitle)
	}
	return nil
}

type EpisodeFilter struct {
	TVShowID *int64
	Offset   int
	Limit    int
}

// EpisodeTranslation mirrors MediaTranslation, scoped to an episode.
type EpisodeTranslation struct {
	EpisodeID    int64  `db:"episode_id" json:"episode_id"`
	LanguageCode string `db:"language_code" json:"language_code"`
	Title        string `db:"title" json:"title"`
}

func (t *EpisodeTranslation) Validate() error {
	if err := validateLanguageCode(t.LanguageCode); err != nil {
		return err
	}
	return validateTitle("title", t.Title)
}

// EpisodeVisualization mirrors MediaVisualization, scoped to an episode.
type EpisodeVisualization struct {
	ID                int64     `db:"id" json:"id"`
	EpisodeID         int64     `db:"episode_id" json:"episode_id"`
	VisualizationDate time.Time `db:"visualization_date" json:"visualization_date"`
	ResumeSeconds     *int      `db:"resume_seconds" json:"resume_seconds,omitempty"`
}

func (v *EpisodeVisualization) Validate() error {
	if v.ResumeSeconds != nil && *v.ResumeSeconds < 0 {
		return &ValidationError{Field: "resume_seconds", Reason: "must not be negative"}
	}
	return nil
}

type EpisodeTranslationDetail struct {
	EpisodeTranslation
	Episode *Episode `json:"episode,omitempty"`
}

type EpisodeVisualizationDetail struct {
	EpisodeVisualization
	Episode *Episode `json:"episode,omitempty"`
}

type EpisodeDetail struct {
	Episode
	TVShow         *Media                 `json:"tv_show,omitempty"`
	Translations   []EpisodeTranslation   `json:"translations,omitempty"`
	Visualizations []EpisodeVisualization `json:"visualizations,omitempty"`
}
