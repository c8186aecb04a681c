package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"media_tracker/internal/domain"
)

// ListMedia handles GET /api/v1/media.
//
// Query parameters: type (movie|tv_show|other), offset, limit, view.
func (h *Handler) ListMedia(c *gin.Context) {
	view, err := domain.ParseMediaView(c.Query("view"))
	if err != nil {
		writeError(c, err)
		return
	}

	filter := domain.MediaFilter{}
	if raw := c.Query("type"); raw != "" {
		t := domain.MediaType(raw)
		if !t.Valid() {
			writeError(c, &domain.ValidationError{Field: "type", Reason: "must be one of movie, tv_show, other"})
			return
		}
		filter.Type = &t
	}
	var ok bool
	if filter.Offset, ok = queryInt(c, "offset", 0); !ok {
		return
	}
	if filter.Limit, ok = queryInt(c, "limit", 0); !ok {
		return
	}

	media, err := h.media.ListMedia(c.Request.Context(), filter, view)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *Handler) GetMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := domain.ParseMediaView(c.Query("view"))
	if err != nil {
		writeError(c, err)
		return
	}

	detail, err := h.media.GetMedia(c.Request.Context(), id, view)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) CreateMedia(c *gin.Context) {
	var m domain.Media
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m.ID = 0 // assigned by the store

	created, err := h.media.CreateMedia(c.Request.Context(), &m)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd domain.MediaUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.media.UpdateMedia(c.Request.Context(), id, upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.media.DeleteMedia(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Translations ---

func (h *Handler) ListMediaTranslations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	translations, err := h.media.ListTranslations(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, translations)
}

func (h *Handler) GetMediaTranslation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	withMedia := c.Query("view") == "with_media"

	detail, err := h.media.GetTranslation(c.Request.Context(), id, c.Param("lang"), withMedia)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) CreateMediaTranslation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var t domain.MediaTranslation
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t.MediaID = id

	created, err := h.media.CreateTranslation(c.Request.Context(), &t)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateMediaTranslation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd domain.MediaTranslationUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.media.UpdateTranslation(c.Request.Context(), id, c.Param("lang"), upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteMediaTranslation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.media.DeleteTranslation(c.Request.Context(), id, c.Param("lang")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Visualizations ---

func (h *Handler) ListMediaVisualizations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	visualizations, err := h.media.ListVisualizations(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, visualizations)
}

func (h *Handler) CreateMediaVisualization(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var v domain.MediaVisualization
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v.MediaID = id

	created, err := h.media.RecordVisualization(c.Request.Context(), &v)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetMediaVisualization(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	withMedia := c.Query("view") == "with_media"

	detail, err := h.media.GetVisualization(c.Request.Context(), id, withMedia)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) UpdateMediaVisualization(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd domain.VisualizationUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.media.UpdateVisualization(c.Request.Context(), id, upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) DeleteMediaVisualization(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.media.DeleteVisualization(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
