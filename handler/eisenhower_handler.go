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

type EisenhowerHandler struct {
	service *usecase.EisenhowerService
}

func NewEisenhowerHandler(service *usecase.EisenhowerService) *EisenhowerHandler {
	return &EisenhowerHandler{service: service}
}

func (h *EisenhowerHandler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListTasks(c.Request.Context()))
}

func (h *EisenhowerHandler) GetTask(c *gin.Context) {
	task, err := h.service.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.InternalError(c, "Failed to fetch eisenhower task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *EisenhowerHandler) CreateTask(c *gin.Context) {
	var req dto.CreateEisenhowerTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid task data", utils.ValidationDetails(err)...)
		return
	}

	task := h.service.CreateTask(c.Request.Context(), &req)
	middleware.TrackEntityOperation("eisenhower", "create")
	c.JSON(http.StatusCreated, task)
}

func (h *EisenhowerHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateEisenhowerTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid task data", utils.ValidationDetails(err)...)
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.InternalError(c, "Failed to update eisenhower task")
		return
	}
	middleware.TrackEntityOperation("eisenhower", "update")
	c.JSON(http.StatusOK, task)
}

func (h *EisenhowerHandler) DeleteTask(c *gin.Context) {
	if err := h.service.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.InternalError(c, "Failed to delete eisenhower task")
		return
	}
	middleware.TrackEntityOperation("eisenhower", "delete")
	c.Status(http.StatusNoContent)
}
