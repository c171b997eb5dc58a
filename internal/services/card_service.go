package services

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mrosati84/DetectiveBoard/internal/constants"
	"github.com/mrosati84/DetectiveBoard/internal/models"
	"github.com/mrosati84/DetectiveBoard/internal/repository"
	"github.com/mrosati84/DetectiveBoard/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrCardNotFound      = errors.New("card not found")
	ErrCardTitleRequired = errors.New("title is required")
	ErrEmptyUpdate       = errors.New("nothing to update")
)

// CardService provides business logic for card operations.
type CardService struct {
	cardRepo  repository.CardRepository
	boardRepo repository.BoardRepository
	images    *storage.ImageStore
}

// NewCardService creates a new CardService.
func NewCardService(cardRepo repository.CardRepository, boardRepo repository.BoardRepository, images *storage.ImageStore) *CardService {
	return &CardService{
		cardRepo:  cardRepo,
		boardRepo: boardRepo,
		images:    images,
	}
}

// CreateCardInput represents parameters to create a new card. Image is nil
// when no file was uploaded.
type CreateCardInput struct {
	Title       string
	Description string
	PosX        *float64
	PosY        *float64
	PinPosition string
	ImageName   string
	Image       io.Reader
}

// Create creates a card on an owned board.
func (s *CardService) Create(userID, boardID uint64, input CreateCardInput) (*models.Card, error) {
	if _, err := s.boardRepo.FindOwned(userID, boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrCardTitleRequired
	}

	card := &models.Card{
		BoardID:     boardID,
		Title:       title,
		Description: optionalText(input.Description),
		PosX:        constants.DefaultPosX,
		PosY:        constants.DefaultPosY,
		PinPosition: coercePinPosition(input.PinPosition),
	}
	if input.PosX != nil {
		card.PosX = *input.PosX
	}
	if input.PosY != nil {
		card.PosY = *input.PosY
	}

	if input.Image != nil {
		path, err := s.images.Save(input.ImageName, input.Image)
		if err != nil {
			return nil, err
		}
		card.ImagePath = &path
	}

	if err := s.cardRepo.Create(card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return card, nil
}

// FormUpdateInput is the form-style card update (edit panel submit): title is
// mandatory, the rest replace the stored values when present.
type FormUpdateInput struct {
	Title       string
	Description string
	PinPosition string
	ImageName   string
	Image       io.Reader
	Inactive    *bool
	Color       *string
}

// UpdateForm replaces a card's content fields from a form submission.
func (s *CardService) UpdateForm(userID, cardID uint64, input FormUpdateInput) (*models.Card, error) {
	if _, err := s.cardRepo.FindOwned(userID, cardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to find card: %w", err)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrCardTitleRequired
	}

	fields := map[string]any{
		"title":       title,
		"description": optionalText(input.Description),
	}

	if input.Image != nil {
		path, err := s.images.Save(input.ImageName, input.Image)
		if err != nil {
			return nil, err
		}
		fields["image_path"] = path
	}

	// Unknown pin values leave the stored side untouched.
	if pin := models.PinPosition(input.PinPosition); pin.Valid() {
		fields["pin_position"] = pin
	}
	if input.Inactive != nil {
		fields["inactive"] = *input.Inactive
	}
	if input.Color != nil {
		fields["color"] = optionalText(*input.Color)
	}

	return s.applyUpdate(userID, cardID, fields)
}

// UpdatePartial applies a structured partial update. The fields map holds
// whitelisted column updates extracted from the request body; an empty map
// is a validation error.
func (s *CardService) UpdatePartial(userID, cardID uint64, fields map[string]any) (*models.Card, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	if raw, ok := fields["title"]; ok {
		title, _ := raw.(string)
		title = strings.TrimSpace(title)
		if title == "" {
			return nil, ErrCardTitleRequired
		}
		fields["title"] = title
	}

	return s.applyUpdate(userID, cardID, fields)
}

// Delete removes the card and every connection touching it.
func (s *CardService) Delete(userID, cardID uint64) error {
	if err := s.cardRepo.DeleteOwned(userID, cardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}

func (s *CardService) applyUpdate(userID, cardID uint64, fields map[string]any) (*models.Card, error) {
	rows, err := s.cardRepo.UpdateOwned(userID, cardID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}
	if rows == 0 {
		return nil, ErrCardNotFound
	}

	card, err := s.cardRepo.FindOwned(userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload card: %w", err)
	}
	return card, nil
}

func coercePinPosition(raw string) models.PinPosition {
	if pin := models.PinPosition(raw); pin.Valid() {
		return pin
	}
	return models.PinCenter
}

// optionalText trims s and maps the empty result to a NULL column value.
func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
