package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrosati84/DetectiveBoard/internal/dto"
	apierrors "github.com/mrosati84/DetectiveBoard/internal/errors"
	"github.com/mrosati84/DetectiveBoard/internal/middleware"
	"github.com/mrosati84/DetectiveBoard/internal/services"
)

// ConnectionHandler coordinates connection-related HTTP handlers.
type ConnectionHandler struct {
	connService *services.ConnectionService
}

// NewConnectionHandler creates a new ConnectionHandler.
func NewConnectionHandler(connService *services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{
		connService: connService,
	}
}

type connectionRequest struct {
	CardID1 uint64 `json:"card_id_1"`
	CardID2 uint64 `json:"card_id_2"`
}

// CreateConnection links two owned cards.
func (h *ConnectionHandler) CreateConnection(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return
	}

	var req connectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	conn, err := h.connService.Create(userID, req.CardID1, req.CardID2)
	if err != nil {
		respondConnectionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToConnectionDTO(*conn))
}

// DeleteConnection unlinks two owned cards. Idempotent.
func (h *ConnectionHandler) DeleteConnection(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return
	}

	var req connectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.connService.Delete(userID, req.CardID1, req.CardID2); err != nil {
		respondConnectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondConnectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCardIDsRequired),
		errors.Is(err, services.ErrSelfConnection):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCardNotFound):
		apierrors.NotFound(c, "Card not found")
	case errors.Is(err, services.ErrConnectionExists):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
