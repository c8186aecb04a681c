package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"media_tracker/internal/domain"
)

// ListEpisodes handles GET /api/v1/tv-show-episodes.
//
// Query parameters: tv_show_id, offset, limit.
func (h *Handler) ListEpisodes(c *gin.Context) {
	filter := domain.EpisodeFilter{}
	if raw := c.Query("tv_show_id"); raw != "" {
		id, ok := queryID(c, "tv_show_id", raw)
		if !ok {
			return
		}
		filter.TVShowID = &id
	}
	var ok bool
	if filter.Offset, ok = queryInt(c, "offset", 0); !ok {
		return
	}
	if filter.Limit, ok = queryInt(c, "limit", 0); !ok {
		return
	}

	episodes, err := h.episodes.ListEpisodes(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, episodes)
}

func (h *Handler) GetEpisode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := domain.ParseEpisodeView(c.Query("view"))
	if err != nil {
		writeError(c, err)
		return
	}

	detail, err := h.episodes.GetEpisode(c.Request.Context(), id, view)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) CreateEpisode(c *gin.Context) {
	var e domain.Episode
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e.ID = 0

	created, err := h.episodes.CreateEpisode(c.Request.Context(), &e)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateEpisode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd domain.EpisodeUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.episodes.UpdateEpisode(c.Request.Context(), id, upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) DeleteEpisode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.episodes.DeleteEpisode(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Translations ---

func (h *Handler) ListEpisodeTranslations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	translations, err := h.episodes.ListTranslations(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, translations)
}

func (h *Handler) GetEpisodeTranslation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	withEpisode := c.Query("view") == "with_episode"

	detail, err := h.episodes.GetTranslation(c.Request.Context(), id, c.Param("lang"), withEpisode)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) CreateEpisodeTranslation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var t domain.EpisodeTranslation
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t.EpisodeID = id

	created, err := h.episodes.CreateTranslation(c.Request.Context(), &t)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateEpisodeTranslation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd domain.MediaTranslationUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.episodes.UpdateTranslation(c.Request.Context(), id, c.Param("lang"), upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteEpisodeTranslation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.episodes.DeleteTranslation(c.Request.Context(), id, c.Param("lang")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Visualizations ---

func (h *Handler) ListEpisodeVisualizations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	visualizations, err := h.episodes.ListVisualizations(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, visualizations)
}

func (h *Handler) CreateEpisodeVisualization(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var v domain.EpisodeVisualization
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v.EpisodeID = id

	created, err := h.episodes.RecordVisualization(c.Request.Context(), &v)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetEpisodeVisualization(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	withEpisode := c.Query("view") == "with_episode"

	detail, err := h.episodes.GetVisualization(c.Request.Context(), id, withEpisode)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) UpdateEpisodeVisualization(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd domain.VisualizationUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.episodes.UpdateVisualization(c.Request.Context(), id, upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) DeleteEpisodeVisualization(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.episodes.DeleteVisualization(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
