package handler

import (
	"errors"
	"net/http"

	"flowdeck/dto"
	"flowdeck/middleware"
	"flowdeck/repository"
	"flowdeck/usecase"
	"flowdeck/utils"

	"github.com/gin-gonic/gin"
)

type KaizenHandler struct {
	service *usecase.KaizenService
}

func NewKaizenHandler(service *usecase.KaizenService) *KaizenHandler {
	return &KaizenHandler{service: service}
}

func (h *KaizenHandler) ListGoals(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListGoals(c.Request.Context()))
}

func (h *KaizenHandler) GoalsByDateRange(c *gin.Context) {
	goals, err := h.service.GoalsByDateRange(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		utils.BadRequest(c, "Invalid date range")
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *KaizenHandler) GetGoal(c *gin.Context) {
	goal, err := h.service.GetGoal(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Goal not found")
			return
		}
		utils.InternalError(c, "Failed to fetch kaizen goal")
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *KaizenHandler) CreateGoal(c *gin.Context) {
	var req dto.CreateKaizenGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid goal data", utils.ValidationDetails(err)...)
		return
	}

	goal := h.service.CreateGoal(c.Request.Context(), &req)
	middleware.TrackEntityOperation("kaizen", "create")
	c.JSON(http.StatusCreated, goal)
}

func (h *KaizenHandler) UpdateGoal(c *gin.Context) {
	var req dto.UpdateKaizenGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid goal data", utils.ValidationDetails(err)...)
		return
	}

	goal, err := h.service.UpdateGoal(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Goal not found")
			return
		}
		utils.InternalError(c, "Failed to update kaizen goal")
		return
	}
	middleware.TrackEntityOperation("kaizen", "update")
	c.JSON(http.StatusOK, goal)
}

func (h *KaizenHandler) DeleteGoal(c *gin.Context) {
	if err := h.service.DeleteGoal(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Goal not found")
			return
		}
		utils.InternalError(c, "Failed to delete kaizen goal")
		return
	}
	middleware.TrackEntityOperation("kaizen", "delete")
	c.Status(http.StatusNoContent)
}
