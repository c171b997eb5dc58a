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

// BoardHandler coordinates board-related HTTP handlers.
type BoardHandler struct {
	boardService *services.BoardService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(boardService *services.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// ListBoards returns all boards owned by the current user, newest first.
func (h *BoardHandler) ListBoards(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return
	}

	boards, err := h.boardService.List(userID)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardListDTO(boards))
}

// CreateBoard creates a new board.
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return
	}

	type CreateBoardRequest struct {
		Name string `json:"name"`
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	board, err := h.boardService.Create(userID, req.Name)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBoardDTO(*board))
}

// GetBoard returns the aggregate detail of an owned board.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	userID, boardID, ok := boardRequestIDs(c)
	if !ok {
		return
	}

	detail, err := h.boardService.Get(userID, boardID)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDetailDTO(*detail))
}

// RenameBoard updates the board name.
func (h *BoardHandler) RenameBoard(c *gin.Context) {
	userID, boardID, ok := boardRequestIDs(c)
	if !ok {
		return
	}

	type RenameBoardRequest struct {
		Name string `json:"name"`
	}

	var req RenameBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	board, err := h.boardService.Rename(userID, boardID, req.Name)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTO(*board))
}

// DeleteBoard deletes a board and everything on it. Idempotent.
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	userID, boardID, ok := boardRequestIDs(c)
	if !ok {
		return
	}

	if err := h.boardService.Delete(userID, boardID); err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// EnableSharing assigns the board a public share token.
func (h *BoardHandler) EnableSharing(c *gin.Context) {
	userID, boardID, ok := boardRequestIDs(c)
	if !ok {
		return
	}

	board, err := h.boardService.EnableSharing(userID, boardID)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ShareResponse{
		ShareToken: *board.ShareToken,
		ShareURL:   "/share/" + *board.ShareToken,
	})
}

// DisableSharing revokes the board's public share token.
func (h *BoardHandler) DisableSharing(c *gin.Context) {
	userID, boardID, ok := boardRequestIDs(c)
	if !ok {
		return
	}

	if err := h.boardService.DisableSharing(userID, boardID); err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSharedBoard returns the read-only detail of a shared board. Public.
func (h *BoardHandler) GetSharedBoard(c *gin.Context) {
	detail, err := h.boardService.GetShared(c.Param("token"))
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDetailDTO(*detail))
}

// boardRequestIDs pulls the caller's user ID and the :id path parameter,
// writing the error response itself when either is unusable.
func boardRequestIDs(c *gin.Context) (userID, boardID uint64, ok bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return 0, 0, false
	}

	boardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid board ID")
		return 0, 0, false
	}

	return userID, boardID, true
}

func respondBoardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBoardNameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBoardNotFound):
		apierrors.NotFound(c, "Board not found")
	default:
		apierrors.InternalError(c, "")
	}
}
