package domain

import "fmt"

// MediaView selects how much related data a media read pulls in.
type MediaView string

const (
	MediaViewBasic              MediaView = "basic"
	MediaViewWithTranslations   MediaView = "with_translations"
	MediaViewWithVisualizations MediaView = "with_visualizations"
	MediaViewFull               MediaView = "full"
	MediaViewFullWithEpisodes   MediaView = "full_with_tv_show_episodes"
)

func ParseMediaView(s string) (MediaView, error) {
	if s == "" {
		return MediaViewBasic, nil
	}
	switch v := MediaView(s); v {
	case MediaViewBasic, MediaViewWithTranslations, MediaViewWithVisualizations,
		MediaViewFull, MediaViewFullWithEpisodes:
		return v, nil
	}
	return "", &ValidationError{Field: "view", Reason: fmt.Sprintf("unknown media view %q", s)}
}

// EpisodeView selects related data for an episode read.
type EpisodeView string

const (
	EpisodeViewBasic              EpisodeView = "basic"
	EpisodeViewWithTranslations   EpisodeView = "with_translations"
	EpisodeViewWithVisualizations EpisodeView = "with_visualizations"
	EpisodeViewFull               EpisodeView = "full"
	EpisodeViewFullWithTVShow     EpisodeView = "full_with_tv_show"
)

func ParseEpisodeView(s string) (EpisodeView, error) {
	if s == "" {
		return EpisodeViewBasic, nil
	}
	switch v := EpisodeView(s); v {
	case EpisodeViewBasic, EpisodeViewWithTranslations, EpisodeViewWithVisualizations,
		EpisodeViewFull, EpisodeViewFullWithTVShow:
		return v, nil
	}
	return "", &ValidationError{Field: "view", Reason: fmt.Sprintf("unknown episode view %q", s)}
}

// ChannelView selects related data for a channel read.
type ChannelView string

const (
	ChannelViewBasic         ChannelView = "basic"
	ChannelViewWithVideos    ChannelView = "with_videos"
	ChannelViewWithPlaylists ChannelView = "with_playlists"
	ChannelViewFull          ChannelView = "full"
)

func ParseChannelView(s string) (ChannelView, error) {
	if s == "" {
		return ChannelViewBasic, nil
	}
	switch v := ChannelView(s); v {
	case ChannelViewBasic, ChannelViewWithVideos, ChannelViewWithPlaylists, ChannelViewFull:
		return v, nil
	}
	return "", &ValidationError{Field: "view", Reason: fmt.Sprintf("unknown channel view %q", s)}
}

// VideoView selects related data for a video read.
type VideoView string

const (
	VideoViewBasic              VideoView = "basic"
	VideoViewWithChannel        VideoView = "with_channel"
	VideoViewWithVisualizations VideoView = "with_visualizations"
	VideoViewWithPlaylists      VideoView = "with_playlists"
	VideoViewFull               VideoView = "full"
)

func ParseVideoView(s string) (VideoView, error) {
	if s == "" {
		return VideoViewBasic, nil
	}
	switch v := VideoView(s); v {
	case VideoViewBasic, VideoViewWithChannel, VideoViewWithVisualizations,
		VideoViewWithPlaylists, VideoViewFull:
		return v, nil
	}
	return "", &ValidationError{Field: "view", Reason: fmt.Sprintf("unknown video view %q", s)}
}

// PlaylistView selects related data for a playlist read.
type PlaylistView string

const (
	PlaylistViewBasic       PlaylistView = "basic"
	PlaylistViewWithChannel PlaylistView = "with_channel"
	PlaylistViewWithVideos  PlaylistView = "with_videos"
	PlaylistViewFull        PlaylistView = "full"
)

func ParsePlaylistView(s string) (PlaylistView, error) {
	if s == "" {
		return PlaylistViewBasic, nil
	}
	switch v := PlaylistView(s); v {
	case PlaylistViewBasic, PlaylistViewWithChannel, PlaylistViewWithVideos, PlaylistViewFull:
		return v, nil
	}
	return "", &ValidationError{Field: "view", Reason: fmt.Sprintf("unknown playlist view %q", s)}
}
