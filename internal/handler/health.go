package handler

import (
	"net/http"

	"github.com/classifieds-board/backend/internal/model"
	"github.com/gin-gonic/gin"
)

// Ping godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} model.PingResponse
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// Root godoc
// @Summary Welcome
// @Tags health
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Welcome to board"})
}
