// Package http exposes the project endpoints under /api/projects. List
// endpoints serve the reduced core view; single-project reads and mutations
// serve the full view including assigned users.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projectdesk/projectdesk-backend/internal/apperr"
	"github.com/projectdesk/projectdesk-backend/internal/projects/domain"
	"github.com/projectdesk/projectdesk-backend/internal/respond"
)

// Service is the project business surface the handlers call into.
type Service interface {
	FindAll(ctx context.Context, page, size int) ([]domain.Project, error)
	FindAllByName(ctx context.Context, name string, page, size int) ([]domain.Project, error)
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id int64, p *domain.Project) (*domain.Project, error)
	AssignUser(ctx context.Context, projectID int64, email string) (*domain.Project, error)
	Remove(ctx context.Context, id int64) (*domain.Project, error)
}

type Handler struct {
	svc Service
}

// Register attaches the project routes to the given router group.
func Register(rg *gin.RouterGroup, svc Service) {
	h := &Handler{svc: svc}

	rg.GET("", h.list)
	rg.GET("/:id", h.getByID)
	rg.GET("/name", h.listByName)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.PATCH("/:id/assign-user/:email", h.assignUser)
	rg.DELETE("/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	page, size, err := respond.PageQuery(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	projects, err := h.svc.FindAll(c.Request.Context(), page, size)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, coreViews(projects))
}

func (h *Handler) listByName(c *gin.Context) {
	name, err := respond.ValueQuery(c, "name")
	if err != nil {
		respond.Error(c, err)
		return
	}
	page, size, err := respond.PageQuery(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	projects, err := h.svc.FindAllByName(c.Request.Context(), name, page, size)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, coreViews(projects))
}

func (h *Handler) getByID(c *gin.Context) {
	id, err := respond.IDParam(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	p, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.fieldErrors(); len(errs) > 0 {
		respond.FieldErrors(c, errs)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, p)
}

func (h *Handler) update(c *gin.Context) {
	id, err := respond.IDParam(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.fieldErrors(); len(errs) > 0 {
		respond.FieldErrors(c, errs)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, p)
}

func (h *Handler) assignUser(c *gin.Context) {
	id, err := respond.IDParam(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	email := c.Param("email")
	if strings.TrimSpace(email) == "" {
		respond.Error(c, apperr.BadRequest("email must not be left blank"))
		return
	}

	p, err := h.svc.AssignUser(c.Request.Context(), id, email)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, p)
}

func (h *Handler) remove(c *gin.Context) {
	id, err := respond.IDParam(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	p, err := h.svc.Remove(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, p)
}
