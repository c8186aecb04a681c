package domain

import "time"

// Channel is a YouTube channel, keyed by its external channel id.
type Channel struct {
	ID           string     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	URL          *string    `db:"url" json:"url,omitempty"`
	CreationDate *time.Time `db:"creation_date" json:"creation_date,omitempty"`
	Description  *string    `db:"description" json:"description,omitempty"`
}

func (c *Channel) Validate() error {
	if err := validateExternalID("id", c.ID, ChannelIDMaxLength); err != nil {
		return err
	}
	if err := validateTitle("name", c.Name); err != nil {
		return err
	}
	return validateOptionalURL("url", c.URL)
}

type ChannelUpdate struct {
	Name         *string    `json:"name"`
	URL          *string    `json:"url"`
	CreationDate *time.Time `json:"creation_date"`
	Description  *string    `json:"description"`
}

func (u *ChannelUpdate) Validate() error {
	if u.Name != nil {
		if err := validateTitle("name", *u.Name); err != nil {
			return err
		}
	}
	return validateOptionalURL("url", u.URL)
}

// Video is a YouTube video, keyed by its external video id. ChannelID is
// optional: videos can be tracked before their channel is.
type Video struct {
	ID          string     `db:"id" json:"id"`
	ChannelID   *string    `db:"channel_id" json:"channel_id,omitempty"`
	Title       string     `db:"title" json:"title"`
	PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
	Description *string    `db:"description" json:"description,omitempty"`
	URL         *string    `db:"url" json:"url,omitempty"`
}

func (v *Video) Validate() error {
	if err := validateExternalID("id", v.ID, VideoIDMaxLength); err != nil {
		return err
	}
	if v.ChannelID != nil {
		if err := validateExternalID("channel_id", *v.ChannelID, ChannelIDMaxLength); err != nil {
			return err
		}
	}
	if err := validateTitle("title", v.Title); err != nil {
		return err
	}
	return validateOptionalURL("url", v.URL)
}

type VideoUpdate struct {
	ChannelID   *string    `json:"channel_id"`
	Title       *string    `json:"title"`
	PublishedAt *time.Time `json:"published_at"`
	Description *string    `json:"description"`
	URL         *string    `json:"url"`
}

func (u *VideoUpdate) Validate() error {
	if u.ChannelID != nil {
		if err := validateExternalID("channel_id", *u.ChannelID, ChannelIDMaxLength); err != nil {
			return err
		}
	}
	if u.Title != nil {
		if err := validateTitle("title", *u.Title); err != nil {
			return err
		}
	}
	return validateOptionalURL("url", u.URL)
}

type VideoFilter struct {
	ChannelID *string
	Offset    int
	Limit     int
}

// VideoVisualization is a watch event for a YouTube video.
type VideoVisualization struct {
	ID                int64     `db:"id" json:"id"`
	VideoID           string    `db:"video_id" json:"video_id"`
	VisualizationDate time.Time `db:"visualization_date" json:"visualization_date"`
	ResumeSeconds     *int      `db:"resume_seconds" json:"resume_seconds,omitempty"`
}

func (v *VideoVisualization) Validate() error {
	if err := validateExternalID("video_id", v.VideoID, VideoIDMaxLength); err != nil {
		return err
	}
	if v.ResumeSeconds != nil && *v.ResumeSeconds < 0 {
		return &ValidationError{Field: "resume_seconds", Reason: "must not be negative"}
	}
	return nil
}

// Playlist is a YouTube playlist, keyed by its external playlist id.
type Playlist struct {
	ID          string  `db:"id" json:"id"`
	ChannelID   *string `db:"channel_id" json:"channel_id,omitempty"`
	Title       string  `db:"title" json:"title"`
	Description *string `db:"description" json:"description,omitempty"`
	URL         *string `db:"url" json:"url,omitempty"`
}

func (p *Playlist) Validate() error {
	if err := validateExternalID("id", p.ID, PlaylistIDMaxLength); err != nil {
		return err
	}
	if p.ChannelID != nil {
		if err := validateExternalID("channel_id", *p.ChannelID, ChannelIDMaxLength); err != nil {
			return err
		}
	}
	if err := validateTitle("title", p.Title); err != nil {
		return err
	}
	return validateOptionalURL("url", p.URL)
}

type PlaylistUpdate struct {
	ChannelID   *string `json:"channel_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

func (u *PlaylistUpdate) Validate() error {
	if u.ChannelID != nil {
		if err := validateExternalID("channel_id", *u.ChannelID, ChannelIDMaxLength); err != nil {
			return err
		}
	}
	if u.Title != nil {
		if err := validateTitle("title", *u.Title); err != nil {
			return err
		}
	}
	return validateOptionalURL("url", u.URL)
}

type PlaylistFilter struct {
	ChannelID *string
	Offset    int
	Limit     int
}

// PlaylistVideo places a video inside a playlist. Position is optional;
// when set it is unique within the playlist, when unset membership is
// order-agnostic.
type PlaylistVideo struct {
	ID         int64  `db:"id" json:"id"`
	PlaylistID string `db:"playlist_id" json:"playlist_id"`
	VideoID    string `db:"video_id" json:"video_id"`
	Position   *int   `db:"position" json:"position,omitempty"`
}

func (pv *PlaylistVideo) Validate() error {
	if err := validateExternalID("playlist_id", pv.PlaylistID, PlaylistIDMaxLength); err != nil {
		return err
	}
	if err := validateExternalID("video_id", pv.VideoID, VideoIDMaxLength); err != nil {
		return err
	}
	if pv.Position != nil && *pv.Position < 0 {
		return &ValidationError{Field: "position", Reason: "must not be negative"}
	}
	return nil
}

type PlaylistVideoUpdate struct {
	Position *int `json:"position"`
}

func (u *PlaylistVideoUpdate) Validate() error {
	if u.Position != nil && *u.Position < 0 {
		return &ValidationError{Field: "position", Reason: "must not be negative"}
	}
	return nil
}

// ChannelDetail, VideoDetail and PlaylistDetail carry view-dependent
// related data, omitted from JSON when not loaded.

type ChannelDetail struct {
	Channel
	Videos    []Video    `json:"videos,omitempty"`
	Playlists []Playlist `json:"playlists,omitempty"`
}

// VideoPlaylistEntry is a playlist the video belongs to, with its position.
type VideoPlaylistEntry struct {
	Playlist Playlist `json:"playlist"`
	Position *int     `json:"position,omitempty"`
}

// PlaylistVideoEntry is a video inside a playlist, with its position.
type PlaylistVideoEntry struct {
	Video    Video `json:"video"`
	Position *int  `json:"position,omitempty"`
}

type VideoVisualizationDetail struct {
	VideoVisualization
	Video *Video `json:"video,omitempty"`
}

type VideoDetail struct {
	Video
	Channel        *Channel             `json:"channel,omitempty"`
	Visualizations []VideoVisualization `json:"visualizations,omitempty"`
	Playlists      []VideoPlaylistEntry `json:"playlists,omitempty"`
}

type PlaylistDetail struct {
	Playlist
	Channel *Channel             `json:"channel,omitempty"`
	Videos  []PlaylistVideoEntry `json:"videos,omitempty"`
}
