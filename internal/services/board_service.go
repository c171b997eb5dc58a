package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrosati84/DetectiveBoard/internal/models"
	"github.com/mrosati84/DetectiveBoard/internal/repository"
	"github.com/mrosati84/DetectiveBoard/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrBoardNameRequired = errors.New("board name cannot be empty")
	ErrBoardNotFound     = errors.New("board not found")
)

// BoardDetail is the aggregate read of a board: the board row plus every
// card, note and connection on it, fetched in one go.
type BoardDetail struct {
	Board       models.Board
	Cards       []models.Card
	Notes       []models.Note
	Connections []models.Connection
}

// BoardService provides business logic for board operations.
type BoardService struct {
	boardRepo repository.BoardRepository
	cardRepo  repository.CardRepository
	noteRepo  repository.NoteRepository
	connRepo  repository.ConnectionRepository
}

// NewBoardService creates a new BoardService.
func NewBoardService(
	boardRepo repository.BoardRepository,
	cardRepo repository.CardRepository,
	noteRepo repository.NoteRepository,
	connRepo repository.ConnectionRepository,
) *BoardService {
	return &BoardService{
		boardRepo: boardRepo,
		cardRepo:  cardRepo,
		noteRepo:  noteRepo,
		connRepo:  connRepo,
	}
}

// List returns all boards owned by the user, newest first.
func (s *BoardService) List(userID uint64) ([]models.Board, error) {
	boards, err := s.boardRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

// Create creates a new board for the user.
func (s *BoardService) Create(userID uint64, name string) (*models.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBoardNameRequired
	}

	board := &models.Board{
		Name:   name,
		UserID: userID,
	}

	if err := s.boardRepo.Create(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return board, nil
}

// Get returns the aggregate detail of an owned board.
func (s *BoardService) Get(userID, boardID uint64) (*BoardDetail, error) {
	board, err := s.boardRepo.FindOwned(userID, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	return s.detail(board)
}

// Rename updates the board name in place.
func (s *BoardService) Rename(userID, boardID uint64, name string) (*models.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBoardNameRequired
	}

	board, err := s.boardRepo.FindOwned(userID, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	board.Name = name
	if err := s.boardRepo.Save(board); err != nil {
		return nil, fmt.Errorf("failed to rename board: %w", err)
	}

	return board, nil
}

// Delete removes the board and everything on it. Deleting a missing or
// foreign board reports success without side effects.
func (s *BoardService) Delete(userID, boardID uint64) error {
	if err := s.boardRepo.DeleteOwned(userID, boardID); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	return nil
}

// EnableSharing assigns the board a share token if it has none and returns
// the board. Enabling sharing on an already-shared board keeps its token.
func (s *BoardService) EnableSharing(userID, boardID uint64) (*models.Board, error) {
	board, err := s.boardRepo.FindOwned(userID, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	if board.ShareToken != nil {
		return board, nil
	}

	token := utils.GenerateShareToken()
	board.ShareToken = &token
	if err := s.boardRepo.Save(board); err != nil {
		return nil, fmt.Errorf("failed to enable sharing: %w", err)
	}

	return board, nil
}

// DisableSharing clears the board's share token. Idempotent.
func (s *BoardService) DisableSharing(userID, boardID uint64) error {
	board, err := s.boardRepo.FindOwned(userID, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBoardNotFound
		}
		return fmt.Errorf("failed to find board: %w", err)
	}

	if board.ShareToken == nil {
		return nil
	}

	board.ShareToken = nil
	if err := s.boardRepo.Save(board); err != nil {
		return fmt.Errorf("failed to disable sharing: %w", err)
	}

	return nil
}

// GetShared returns the aggregate detail of a board by its public share token.
func (s *BoardService) GetShared(token string) (*BoardDetail, error) {
	board, err := s.boardRepo.FindByShareToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	return s.detail(board)
}

func (s *BoardService) detail(board *models.Board) (*BoardDetail, error) {
	cards, err := s.cardRepo.ListByBoard(board.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	notes, err := s.noteRepo.ListByBoard(board.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	conns, err := s.connRepo.ListByBoard(board.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	return &BoardDetail{
		Board:       *board,
		Cards:       cards,
		Notes:       notes,
		Connections: conns,
	}, nil
}
