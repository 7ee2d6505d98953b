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

type NoteHandler struct {
	service *usecase.NotesService
}

func NewNoteHandler(service *usecase.NotesService) *NoteHandler {
	return &NoteHandler{service: service}
}

func (h *NoteHandler) ListNotes(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListNotes(c.Request.Context()))
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	note, err := h.service.GetNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to fetch note")
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid note data", utils.ValidationDetails(err)...)
		return
	}

	note := h.service.CreateNote(c.Request.Context(), &req)
	middleware.TrackEntityOperation("note", "create")
	c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid note data", utils.ValidationDetails(err)...)
		return
	}

	note, err := h.service.UpdateNote(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to update note")
		return
	}
	middleware.TrackEntityOperation("note", "update")
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	if err := h.service.DeleteNote(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to delete note")
		return
	}
	middleware.TrackEntityOperation("note", "delete")
	c.Status(http.StatusNoContent)
}

func (h *NoteHandler) SearchNotes(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.SearchNotes(c.Request.Context(), c.Param("query")))
}

func (h *NoteHandler) NotesByTag(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.NotesByTag(c.Request.Context(), c.Param("tag")))
}

func (h *NoteHandler) NotesByDate(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.NotesByDate(c.Request.Context(), c.Param("date")))
}
