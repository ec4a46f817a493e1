package handler

import (
	"net/http"

	"github.com/classifieds-board/backend/internal/model"
	"github.com/classifieds-board/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} model.User
// @Failure 400 {object} model.ErrorResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	skip, limit, ok := pageParams(c)
	if !ok {
		badRequest(c)
		return
	}

	users, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} model.ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		badRequest(c)
		return
	}

	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Me godoc
// @Summary Get current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} model.ErrorResponse
// @Router /api/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		writeError(c, service.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UserUpdate true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /api/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req model.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	user, err := h.svc.UpdateProfile(c.Request.Context(), GetAuthUser(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteMe godoc
// @Summary Delete own profile
// @Tags users
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} model.ErrorResponse
// @Router /api/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.svc.DeleteProfile(c.Request.Context(), GetAuthUser(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
