package handler

import (
	"net/http"

	"flowdeck/dto"
	"flowdeck/middleware"
	"flowdeck/usecase"
	"flowdeck/utils"

	"github.com/gin-gonic/gin"
)

type PomodoroHandler struct {
	service *usecase.PomodoroService
}

func NewPomodoroHandler(service *usecase.PomodoroService) *PomodoroHandler {
	return &PomodoroHandler{service: service}
}

func (h *PomodoroHandler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListSessions(c.Request.Context()))
}

func (h *PomodoroHandler) CreateSession(c *gin.Context) {
	var req dto.CreatePomodoroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid session data", utils.ValidationDetails(err)...)
		return
	}

	session := h.service.CreateSession(c.Request.Context(), &req)
	middleware.TrackEntityOperation("pomodoro", "create")
	c.JSON(http.StatusCreated, session)
}
