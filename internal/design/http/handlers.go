package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/archfind/arch-backend/internal/auth"
	"github.com/archfind/arch-backend/internal/design/diagram"
	"github.com/archfind/arch-backend/internal/design/domain"
)

// respondErr maps the error taxonomy to status codes: validation → 400,
// not found → 404, anything else → logged 500 with a generic body.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "design not found"})
	default:
		log.Printf("[designs] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	q, err := domain.NewQuestionnaire(req.Questionnaire)
	if err != nil {
		respondErr(c, err)
		return
	}

	d, err := h.svc.Create(c.Request.Context(), auth.UserDBID(c), q, req.Preferences)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "design": d})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), auth.UserDBID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "designs": items})
}

func (h *Handler) get(c *gin.Context) {
	d, err := h.svc.Get(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "design": d})
}

func (h *Handler) modify(c *gin.Context) {
	var req modifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	d, err := h.svc.Modify(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"), req.Questionnaire, req.Preferences)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "design": d})
}

func (h *Handler) clone(c *gin.Context) {
	var req cloneReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	d, err := h.svc.Clone(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"),
		strings.TrimSpace(req.Name), req.Questionnaire, req.Preferences)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "design": d})
}

func (h *Handler) regenerate(c *gin.Context) {
	d, err := h.svc.Regenerate(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "design": d})
}

func (h *Handler) updateServiceConfig(c *gin.Context) {
	category, err := domain.ParseServiceCategory(c.Param("category"))
	if err != nil {
		respondErr(c, err)
		return
	}

	var req updateConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	d, err := h.svc.UpdateServiceConfiguration(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"), category, req.Configuration)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "design": d})
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.svc.Delete(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "design not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) diagramDOT(c *gin.Context) {
	d, err := h.svc.Get(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8",
		[]byte(diagram.ToDOT(d.Architecture.Diagram, d.Name)))
}

func (h *Handler) importSelection(c *gin.Context) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	res, err := h.svc.RenderImported(c.Request.Context(), req.ProjectName, req.Services, req.Preferences)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": res})
}
