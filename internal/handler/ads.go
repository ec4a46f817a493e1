package handler

import (
	"net/http"

	"github.com/classifieds-board/backend/internal/model"
	"github.com/classifieds-board/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AdHandler struct {
	svc *service.AdService
}

func NewAdHandler(svc *service.AdService) *AdHandler {
	return &AdHandler{svc: svc}
}

// ListAds godoc
// @Summary List ads
// @Tags ads
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} model.Ad
// @Failure 400 {object} model.ErrorResponse
// @Router /api/ads [get]
func (h *AdHandler) ListAds(c *gin.Context) {
	skip, limit, ok := pageParams(c)
	if !ok {
		badRequest(c)
		return
	}

	ads, err := h.svc.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

// GetAd godoc
// @Summary Get an ad
// @Tags ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} model.Ad
// @Failure 404 {object} model.ErrorResponse
// @Router /api/ads/{id} [get]
func (h *AdHandler) GetAd(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		badRequest(c)
		return
	}

	ad, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

// ListUserAds godoc
// @Summary List a user's ads
// @Tags ads
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} model.Ad
// @Failure 404 {object} model.ErrorResponse
// @Router /api/users/{id}/ads [get]
func (h *AdHandler) ListUserAds(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		badRequest(c)
		return
	}

	ads, err := h.svc.ListByUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

// CreateAd godoc
// @Summary Create an ad owned by the caller
// @Tags ads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AdInput true "Ad fields"
// @Success 201 {object} model.Ad
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/ads [post]
func (h *AdHandler) CreateAd(c *gin.Context) {
	var req model.AdInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	ad, err := h.svc.Create(c.Request.Context(), GetAuthUser(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ad)
}

// UpdateAd godoc
// @Summary Update own ad
// @Tags ads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Param request body model.AdInput true "Ad fields"
// @Success 200 {object} model.Ad
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/ads/{id} [put]
func (h *AdHandler) UpdateAd(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		badRequest(c)
		return
	}
	var req model.AdInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	ad, err := h.svc.Update(c.Request.Context(), GetAuthUser(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

// DeleteAd godoc
// @Summary Delete own ad
// @Tags ads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ad ID"
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/ads/{id} [delete]
func (h *AdHandler) DeleteAd(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		badRequest(c)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), GetAuthUser(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "The ad was deleted successfully"})
}
