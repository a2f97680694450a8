// Package http exposes the user endpoints under /api/users.
package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectdesk/projectdesk-backend/internal/respond"
	"github.com/projectdesk/projectdesk-backend/internal/users/domain"
)

// Service is the user business surface the handlers call into.
type Service interface {
	FindAll(ctx context.Context, page, size int) ([]domain.User, error)
	FindAllByName(ctx context.Context, name string, page, size int) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id int64, u *domain.User) (*domain.User, error)
	Remove(ctx context.Context, id int64) (*domain.User, error)
}

type Handler struct {
	svc Service
}

// Register attaches the user routes to the given router group.
func Register(rg *gin.RouterGroup, svc Service) {
	h := &Handler{svc: svc}

	rg.GET("", h.list)
	rg.GET("/:id", h.getByID)
	rg.GET("/name", h.listByName)
	rg.GET("/email", h.getByEmail)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	page, size, err := respond.PageQuery(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	users, err := h.svc.FindAll(c.Request.Context(), page, size)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, users)
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

	users, err := h.svc.FindAllByName(c.Request.Context(), name, page, size)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, users)
}

func (h *Handler) getByID(c *gin.Context) {
	id, err := respond.IDParam(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	u, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, u)
}

func (h *Handler) getByEmail(c *gin.Context) {
	email, err := respond.ValueQuery(c, "email")
	if err != nil {
		respond.Error(c, err)
		return
	}

	u, err := h.svc.FindByEmail(c.Request.Context(), email)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, u)
}

func (h *Handler) create(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.fieldErrors(); len(errs) > 0 {
		respond.FieldErrors(c, errs)
		return
	}

	u, err := h.svc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, u)
}

func (h *Handler) update(c *gin.Context) {
	id, err := respond.IDParam(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := req.fieldErrors(); len(errs) > 0 {
		respond.FieldErrors(c, errs)
		return
	}

	u, err := h.svc.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, u)
}

func (h *Handler) remove(c *gin.Context) {
	id, err := respond.IDParam(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	u, err := h.svc.Remove(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Data(c, http.StatusOK, u)
}
