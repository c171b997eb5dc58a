package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mrosati84/DetectiveBoard/internal/dto"
	apierrors "github.com/mrosati84/DetectiveBoard/internal/errors"
	"github.com/mrosati84/DetectiveBoard/internal/middleware"
	"github.com/mrosati84/DetectiveBoard/internal/services"
)

// NoteHandler coordinates note-related HTTP handlers.
type NoteHandler struct {
	noteService *services.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// CreateNote creates a note on a board.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, boardID, ok := boardRequestIDs(c)
	if !ok {
		return
	}

	type CreateNoteRequest struct {
		Content string   `json:"content"`
		PosX    *float64 `json:"pos_x"`
		PosY    *float64 `json:"pos_y"`
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.noteService.Create(userID, boardID, services.CreateNoteInput{
		Content: req.Content,
		PosX:    req.PosX,
		PosY:    req.PosY,
	})
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteDTO(*note))
}

// UpdateNote applies a partial update over content and position.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return
	}

	noteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid note ID")
		return
	}

	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	fields := map[string]any{}
	if content, ok := rawReq["content"].(string); ok {
		fields["content"] = content
	}
	if posX, ok := rawReq["pos_x"].(float64); ok {
		fields["pos_x"] = posX
	}
	if posY, ok := rawReq["pos_y"].(float64); ok {
		fields["pos_y"] = posY
	}

	note, err := h.noteService.Update(userID, noteID, fields)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTO(*note))
}

// DeleteNote deletes an owned note.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return
	}

	noteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid note ID")
		return
	}

	if err := h.noteService.Delete(userID, noteID); err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyUpdate):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBoardNotFound):
		apierrors.NotFound(c, "Board not found")
	case errors.Is(err, services.ErrNoteNotFound):
		apierrors.NotFound(c, "Note not found")
	default:
		apierrors.InternalError(c, "")
	}
}
