package domain

import "time"

type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeTVShow MediaType = "tv_show"
	MediaTypeOther  MediaType = "other"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeMovie, MediaTypeTVShow, MediaTypeOther:
		return true
	}
	return false
}

// Media is a trackable catalog item: a movie, a TV show, or anything else
// worth recording watch history for. ExternalID is the identifier in an
// external catalog (e.g. TMDB) and is unique per media type, not globally.
type Media struct {
	ID            int64      `db:"id" json:"id"`
	ExternalID    *int64     `db:"external_id" json:"external_id,omitempty"`
	Type          MediaType  `db:"type" json:"type"`
	OriginalTitle string     `db:"original_title" json:"original_title"`
	ReleaseDate   *time.Time `db:"release_date" json:"release_date,omitempty"`
}

func (m *Media) Validate() error {
	if !m.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be one of movie, tv_show, other"}
	}
	return validateTitle("original_title", m.OriginalTitle)
}

// MediaUpdate carries a partial update; nil fields are left unchanged.
type MediaUpdate struct {
	ExternalID    *int64     `json:"external_id"`
	Type          *MediaType `json:"type"`
	OriginalTitle *string    `json:"original_title"`
	ReleaseDate   *time.Time `json:"release_date"`
}

func (u *MediaUpdate) Validate() error {
	if u.Type != nil && !u.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be one of movie, tv_show, other"}
	}
	if u.OriginalTitle != nil {
		return validateTitle("original_title", *u.OriginalTitle)
	}
	return nil
}

// MediaFilter narrows and pages a media listing.
type MediaFilter struct {
	Type   *MediaType
	Offset int
	Limit  int
}

// MediaTranslation is a per-language title override, keyed by
// (media_id, language_code).
type MediaTranslation struct {
	MediaID      int64  `db:"media_id" json:"media_id"`
	LanguageCode string `db:"language_code" json:"language_code"`
	Title        string `db:"title" json:"title"`
}

func (t *MediaTranslation) Validate() error {
	if err := validateLanguageCode(t.LanguageCode); err != nil {
		return err
	}
	return validateTitle("title", t.Title)
}

type MediaTranslationUpdate struct {
	Title *string `json:"title"`
}

func (u *MediaTranslationUpdate) Validate() error {
	if u.Title != nil {
		return validateTitle("title", *u.Title)
	}
	return nil
}

// MediaVisualization is one recorded watch event. A nil ResumeSeconds means
// the item was watched to the end; otherwise it is the offset to resume from.
type MediaVisualization struct {
	ID                int64     `db:"id" json:"id"`
	MediaID           int64     `db:"media_id" json:"media_id"`
	VisualizationDate time.Time `db:"visualization_date" json:"visualization_date"`
	ResumeSeconds     *int      `db:"resume_seconds" json:"resume_seconds,omitempty"`
}

func (v *MediaVisualization) Validate() error {
	if v.ResumeSeconds != nil && *v.ResumeSeconds < 0 {
		return &ValidationError{Field: "resume_seconds", Reason: "must not be negative"}
	}
	return nil
}

type VisualizationUpdate struct {
	VisualizationDate *time.Time `json:"visualization_date"`
	ResumeSeconds     *int       `json:"resume_seconds"`
}

func (u *VisualizationUpdate) Validate() error {
	if u.ResumeSeconds != nil && *u.ResumeSeconds < 0 {
		return &ValidationError{Field: "resume_seconds", Reason: "must not be negative"}
	}
	return nil
}

// MediaDetail is a media row with related data attached according to the
// requested view. Unfilled slices are omitted from JSON.
type MediaDetail struct {
	Media
	Translations   []MediaTranslation   `json:"translations,omitempty"`
	Visualizations []MediaVisualization `json:"visualizations,omitempty"`
	Episodes       []Episode            `json:"tv_show_episodes,omitempty"`
}

type MediaTranslationDetail struct {
	MediaTranslation
	Media *Media `json:"media,omitempty"`
}

type MediaVisualizationDetail struct {
	MediaVisualization
	Media *Media `json:"media,omitempty"`
}
