package server

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(engine *gin.Engine) {
	api := engine.Group("/api/v1")

	media := api.Group("/media")
	{
		media.GET("", h.ListMedia)
		media.POST("", h.CreateMedia)
		media.GET("/:id", h.GetMedia)
		media.PATCH("/:id", h.UpdateMedia)
		media.DELETE("/:id", h.DeleteMedia)

		media.GET("/:id/translations", h.ListMediaTranslations)
		media.POST("/:id/translations", h.CreateMediaTranslation)
		media.GET("/:id/translations/:lang", h.GetMediaTranslation)
		media.PATCH("/:id/translations/:lang", h.UpdateMediaTranslation)
		media.DELETE("/:id/translations/:lang", h.DeleteMediaTranslation)

		media.GET("/:id/visualizations", h.ListMediaVisualizations)
		media.POST("/:id/visualizations", h.CreateMediaVisualization)
	}
	api.GET("/media-visualizations/:id", h.GetMediaVisualization)
	api.PATCH("/media-visualizations/:id", h.UpdateMediaVisualization)
	api.DELETE("/media-visualizations/:id", h.DeleteMediaVisualization)

	episodes := api.Group("/tv-show-episodes")
	{
		episodes.GET("", h.ListEpisodes)
		episodes.POST("", h.CreateEpisode)
		episodes.GET("/:id", h.GetEpisode)
		episodes.PATCH("/:id", h.UpdateEpisode)
		episodes.DELETE("/:id", h.DeleteEpisode)

		episodes.GET("/:id/translations", h.ListEpisodeTranslations)
		episodes.POST("/:id/translations", h.CreateEpisodeTranslation)
		episodes.GET("/:id/translations/:lang", h.GetEpisodeTranslation)
		episodes.PATCH("/:id/translations/:lang", h.UpdateEpisodeTranslation)
		episodes.DELETE("/:id/translations/:lang", h.DeleteEpisodeTranslation)

		episodes.GET("/:id/visualizations", h.ListEpisodeVisualizations)
		episodes.POST("/:id/visualizations", h.CreateEpisodeVisualization)
	}
	api.GET("/episode-visualizations/:id", h.GetEpisodeVisualization)
	api.PATCH("/episode-visualizations/:id", h.UpdateEpisodeVisualization)
	api.DELETE("/episode-visualizations/:id", h.DeleteEpisodeVisualization)

	youtube := api.Group("/youtube")
	{
		channels := youtube.Group("/channels")
		{
			channels.GET("", h.ListChannels)
			channels.POST("", h.CreateChannel)
			channels.GET("/:id", h.GetChannel)
			channels.PATCH("/:id", h.UpdateChannel)
			channels.DELETE("/:id", h.DeleteChannel)
		}

		videos := youtube.Group("/videos")
		{
			videos.GET("", h.ListVideos)
			videos.POST("", h.CreateVideo)
			videos.GET("/:id", h.GetVideo)
			videos.PATCH("/:id", h.UpdateVideo)
			videos.DELETE("/:id", h.DeleteVideo)

			videos.GET("/:id/visualizations", h.ListVideoVisualizations)
			videos.POST("/:id/visualizations", h.CreateVideoVisualization)
		}
		youtube.GET("/video-visualizations/:id", h.GetVideoVisualization)
		youtube.PATCH("/video-visualizations/:id", h.UpdateVideoVisualization)
		youtube.DELETE("/video-visualizations/:id", h.DeleteVideoVisualization)

		playlists := youtube.Group("/playlists")
		{
			playlists.GET("", h.ListPlaylists)
			playlists.POST("", h.CreatePlaylist)
			playlists.GET("/:id", h.GetPlaylist)
			playlists.PATCH("/:id", h.UpdatePlaylist)
			playlists.DELETE("/:id", h.DeletePlaylist)

			playlists.GET("/:id/videos", h.ListPlaylistVideos)
			playlists.POST("/:id/videos", h.AddPlaylistVideo)
		}
		youtube.GET("/playlist-videos/:id", h.GetPlaylistVideo)
		youtube.PATCH("/playlist-videos/:id", h.UpdatePlaylistVideo)
		youtube.DELETE("/playlist-videos/:id", h.RemovePlaylistVideo)
	}
}
