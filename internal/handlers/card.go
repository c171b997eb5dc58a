package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mrosati84/DetectiveBoard/internal/dto"
	apierrors "github.com/mrosati84/DetectiveBoard/internal/errors"
	"github.com/mrosati84/DetectiveBoard/internal/middleware"
	"github.com/mrosati84/DetectiveBoard/internal/services"
	"github.com/mrosati84/DetectiveBoard/internal/storage"
)

// CardHandler coordinates card-related HTTP handlers.
type CardHandler struct {
	cardService *services.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService *services.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// CreateCard creates a card on a board from a multipart form.
func (h *CardHandler) CreateCard(c *gin.Context) {
	userID, boardID, ok := boardRequestIDs(c)
	if !ok {
		return
	}

	input := services.CreateCardInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		PinPosition: c.PostForm("pin_position"),
	}

	var bad bool
	input.PosX, bad = formFloat(c, "pos_x")
	if bad {
		return
	}
	input.PosY, bad = formFloat(c, "pos_y")
	if bad {
		return
	}

	file, cleanup, ok := formImage(c)
	if !ok {
		return
	}
	if cleanup != nil {
		defer cleanup()
	}
	if file != nil {
		input.ImageName = file.name
		input.Image = file.reader
	}

	card, err := h.cardService.Create(userID, boardID, input)
	if err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCardDTO(*card))
}

// UpdateCard updates a card. Multipart requests carry the form-style edit
// (title mandatory); JSON requests carry a structured partial update.
func (h *CardHandler) UpdateCard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return
	}

	cardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid card ID")
		return
	}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		h.updateCardForm(c, userID, cardID)
		return
	}
	h.updateCardPartial(c, userID, cardID)
}

func (h *CardHandler) updateCardForm(c *gin.Context, userID, cardID uint64) {
	input := services.FormUpdateInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		PinPosition: c.PostForm("pin_position"),
	}

	if raw, present := c.GetPostForm("inactive"); present {
		inactive := raw == "true" || raw == "1" || raw == "on"
		input.Inactive = &inactive
	}
	if raw, present := c.GetPostForm("color"); present {
		input.Color = &raw
	}

	file, cleanup, ok := formImage(c)
	if !ok {
		return
	}
	if cleanup != nil {
		defer cleanup()
	}
	if file != nil {
		input.ImageName = file.name
		input.Image = file.reader
	}

	card, err := h.cardService.UpdateForm(userID, cardID, input)
	if err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCardDTO(*card))
}

func (h *CardHandler) updateCardPartial(c *gin.Context, userID, cardID uint64) {
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	// Pick out the recognized fields; anything else in the body is ignored.
	fields := map[string]any{}
	if posX, ok := rawReq["pos_x"].(float64); ok {
		fields["pos_x"] = posX
	}
	if posY, ok := rawReq["pos_y"].(float64); ok {
		fields["pos_y"] = posY
	}
	if title, ok := rawReq["title"].(string); ok {
		fields["title"] = title
	}
	if raw, present := rawReq["description"]; present {
		if desc, ok := raw.(string); ok {
			fields["description"] = desc
		} else if raw == nil {
			fields["description"] = nil
		}
	}
	if raw, present := rawReq["color"]; present {
		if color, ok := raw.(string); ok && color != "" {
			fields["color"] = color
		} else {
			fields["color"] = nil
		}
	}
	if inactive, ok := rawReq["inactive"].(bool); ok {
		fields["inactive"] = inactive
	}

	card, err := h.cardService.UpdatePartial(userID, cardID, fields)
	if err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCardDTO(*card))
}

// DeleteCard deletes a card and its connections.
func (h *CardHandler) DeleteCard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthenticated(c, "")
		return
	}

	cardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid card ID")
		return
	}

	if err := h.cardService.Delete(userID, cardID); err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type uploadedFile struct {
	name   string
	reader multipart.File
}

// formImage extracts the optional "image" form file. The third return is
// false when a response has already been written.
func formImage(c *gin.Context) (*uploadedFile, func(), bool) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, true
		}
		apierrors.BadRequest(c, "Invalid image upload")
		return nil, nil, false
	}

	src, err := header.Open()
	if err != nil {
		apierrors.InternalError(c, "Failed to read image upload")
		return nil, nil, false
	}

	file := &uploadedFile{
		name:   header.Filename,
		reader: src,
	}
	return file, func() { src.Close() }, true
}

// formFloat parses an optional float form field. The second return is true
// when the value was present but malformed (response already written).
func formFloat(c *gin.Context, key string) (*float64, bool) {
	raw, present := c.GetPostForm(key)
	if !present || raw == "" {
		return nil, false
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+key)
		return nil, true
	}
	return &value, false
}

func respondCardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCardTitleRequired),
		errors.Is(err, services.ErrEmptyUpdate),
		errors.Is(err, storage.ErrUnsupportedImageType):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBoardNotFound):
		apierrors.NotFound(c, "Board not found")
	case errors.Is(err, services.ErrCardNotFound):
		apierrors.NotFound(c, "Card not found")
	default:
		apierrors.InternalError(c, "")
	}
}
