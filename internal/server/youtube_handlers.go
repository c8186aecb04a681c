package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"media_tracker/internal/domain"
)

// --- Channels ---

func (h *Handler) ListChannels(c *gin.Context) {
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}

	channels, err := h.youtube.ListChannels(c.Request.Context(), offset, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, channels)
}

func (h *Handler) GetChannel(c *gin.Context) {
	view, err := domain.ParseChannelView(c.Query("view"))
	if err != nil {
		writeError(c, err)
		return
	}

	detail, err := h.youtube.GetChannel(c.Request.Context(), c.Param("id"), view)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) CreateChannel(c *gin.Context) {
	var ch domain.Channel
	if err := c.ShouldBindJSON(&ch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.youtube.CreateChannel(c.Request.Context(), &ch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateChannel(c *gin.Context) {
	var upd domain.ChannelUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ch, err := h.youtube.UpdateChannel(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

func (h *Handler) DeleteChannel(c *gin.Context) {
	if err := h.youtube.DeleteChannel(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Videos ---

func (h *Handler) ListVideos(c *gin.Context) {
	filter := domain.VideoFilter{}
	if raw := c.Query("channel_id"); raw != "" {
		filter.ChannelID = &raw
	}
	var ok bool
	if filter.Offset, ok = queryInt(c, "offset", 0); !ok {
		return
	}
	if filter.Limit, ok = queryInt(c, "limit", 0); !ok {
		return
	}

	videos, err := h.youtube.ListVideos(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *Handler) GetVideo(c *gin.Context) {
	view, err := domain.ParseVideoView(c.Query("view"))
	if err != nil {
		writeError(c, err)
		return
	}

	detail, err := h.youtube.GetVideo(c.Request.Context(), c.Param("id"), view)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) CreateVideo(c *gin.Context) {
	var v domain.Video
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.youtube.CreateVideo(c.Request.Context(), &v)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateVideo(c *gin.Context) {
	var upd domain.VideoUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.youtube.UpdateVideo(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) DeleteVideo(c *gin.Context) {
	if err := h.youtube.DeleteVideo(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Video visualizations ---

func (h *Handler) ListVideoVisualizations(c *gin.Context) {
	visualizations, err := h.youtube.ListVisualizations(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, visualizations)
}

func (h *Handler) CreateVideoVisualization(c *gin.Context) {
	var v domain.VideoVisualization
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v.VideoID = c.Param("id")

	created, err := h.youtube.RecordVisualization(c.Request.Context(), &v)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetVideoVisualization(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	withVideo := c.Query("view") == "with_video"

	detail, err := h.youtube.GetVisualization(c.Request.Context(), id, withVideo)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) UpdateVideoVisualization(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd domain.VisualizationUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.youtube.UpdateVisualization(c.Request.Context(), id, upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) DeleteVideoVisualization(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.youtube.DeleteVisualization(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Playlists ---

func (h *Handler) ListPlaylists(c *gin.Context) {
	filter := domain.PlaylistFilter{}
	if raw := c.Query("channel_id"); raw != "" {
		filter.ChannelID = &raw
	}
	var ok bool
	if filter.Offset, ok = queryInt(c, "offset", 0); !ok {
		return
	}
	if filter.Limit, ok = queryInt(c, "limit", 0); !ok {
		return
	}

	playlists, err := h.youtube.ListPlaylists(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlists)
}

func (h *Handler) GetPlaylist(c *gin.Context) {
	view, err := domain.ParsePlaylistView(c.Query("view"))
	if err != nil {
		writeError(c, err)
		return
	}

	detail, err := h.youtube.GetPlaylist(c.Request.Context(), c.Param("id"), view)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) CreatePlaylist(c *gin.Context) {
	var p domain.Playlist
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.youtube.CreatePlaylist(c.Request.Context(), &p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdatePlaylist(c *gin.Context) {
	var upd domain.PlaylistUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.youtube.UpdatePlaylist(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePlaylist(c *gin.Context) {
	if err := h.youtube.DeletePlaylist(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Playlist membership ---

func (h *Handler) ListPlaylistVideos(c *gin.Context) {
	entries, err := h.youtube.ListPlaylistVideos(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) AddPlaylistVideo(c *gin.Context) {
	var pv domain.PlaylistVideo
	if err := c.ShouldBindJSON(&pv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pv.PlaylistID = c.Param("id")
	pv.ID = 0

	created, err := h.youtube.AddPlaylistVideo(c.Request.Context(), &pv)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetPlaylistVideo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	pv, err := h.youtube.GetPlaylistVideo(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pv)
}

func (h *Handler) UpdatePlaylistVideo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd domain.PlaylistVideoUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pv, err := h.youtube.UpdatePlaylistVideo(c.Request.Context(), id, upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pv)
}

func (h *Handler) RemovePlaylistVideo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.youtube.RemovePlaylistVideo(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
