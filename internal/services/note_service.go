package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrosati84/DetectiveBoard/internal/constants"
	"github.com/mrosati84/DetectiveBoard/internal/models"
	"github.com/mrosati84/DetectiveBoard/internal/repository"
	"gorm.io/gorm"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteService provides business logic for note operations.
type NoteService struct {
	noteRepo  repository.NoteRepository
	boardRepo repository.BoardRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(noteRepo repository.NoteRepository, boardRepo repository.BoardRepository) *NoteService {
	return &NoteService{
		noteRepo:  noteRepo,
		boardRepo: boardRepo,
	}
}

// CreateNoteInput represents parameters to create a new note. Content may be
// empty; a note starts blank.
type CreateNoteInput struct {
	Content string
	PosX    *float64
	PosY    *float64
}

// Create creates a note on an owned board.
func (s *NoteService) Create(userID, boardID uint64, input CreateNoteInput) (*models.Note, error) {
	if _, err := s.boardRepo.FindOwned(userID, boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	note := &models.Note{
		BoardID: boardID,
		Content: strings.TrimSpace(input.Content),
		PosX:    constants.DefaultPosX,
		PosY:    constants.DefaultPosY,
	}
	if input.PosX != nil {
		note.PosX = *input.PosX
	}
	if input.PosY != nil {
		note.PosY = *input.PosY
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// Update applies a partial update over {content, pos_x, pos_y}. An empty
// field set is a validation error.
func (s *NoteService) Update(userID, noteID uint64, fields map[string]any) (*models.Note, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	rows, err := s.noteRepo.UpdateOwned(userID, noteID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	if rows == 0 {
		return nil, ErrNoteNotFound
	}

	note, err := s.noteRepo.FindOwned(userID, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload note: %w", err)
	}
	return note, nil
}

// Delete removes an owned note.
func (s *NoteService) Delete(userID, noteID uint64) error {
	rows, err := s.noteRepo.DeleteOwned(userID, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if rows == 0 {
		return ErrNoteNotFound
	}
	return nil
}
