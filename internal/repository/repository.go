package repository

import (
	"github.com/mrosati84/DetectiveBoard/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by normalized email
	FindByEmail(email string) (*models.User, error)
}

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	// Create creates a new board
	Create(board *models.Board) error

	// ListByUser lists all boards owned by the user, newest first
	ListByUser(userID uint64) ([]models.Board, error)

	// FindOwned finds a board by ID scoped to its owner
	FindOwned(userID, boardID uint64) (*models.Board, error)

	// FindByShareToken finds a board by its public share token
	FindByShareToken(token string) (*models.Board, error)

	// Save persists in-place changes to a board
	Save(board *models.Board) error

	// DeleteOwned deletes a board and all its cards, notes and connections.
	// Deleting a missing or foreign board is a no-op.
	DeleteOwned(userID, boardID uint64) error
}

// CardRepository defines the interface for card data access
type CardRepository interface {
	// Create creates a new card
	Create(card *models.Card) error

	// FindOwned finds a card by ID scoped to its board's owner
	FindOwned(userID, cardID uint64) (*models.Card, error)

	// ListByBoard lists all cards on a board
	ListByBoard(boardID uint64) ([]models.Card, error)

	// UpdateOwned applies the given column updates to a card scoped to its
	// board's owner, returning the number of rows touched
	UpdateOwned(userID, cardID uint64, fields map[string]any) (int64, error)

	// DeleteOwned deletes a card and every connection incident on it.
	// Returns gorm.ErrRecordNotFound if the card is absent or foreign.
	DeleteOwned(userID, cardID uint64) error

	// CountOwned counts how many of the given card IDs belong to boards
	// owned by the user
	CountOwned(userID uint64, cardIDs []uint64) (int64, error)
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	// Create creates a new note
	Create(note *models.Note) error

	// FindOwned finds a note by ID scoped to its board's owner
	FindOwned(userID, noteID uint64) (*models.Note, error)

	// ListByBoard lists all notes on a board
	ListByBoard(boardID uint64) ([]models.Note, error)

	// UpdateOwned applies the given column updates to a note scoped to its
	// board's owner, returning the number of rows touched
	UpdateOwned(userID, noteID uint64, fields map[string]any) (int64, error)

	// DeleteOwned deletes a note scoped to its board's owner, returning the
	// number of rows touched
	DeleteOwned(userID, noteID uint64) (int64, error)
}

// ConnectionRepository defines the interface for connection data access
type ConnectionRepository interface {
	// Create inserts a canonically ordered pair. A duplicate pair surfaces
	// as gorm.ErrDuplicatedKey.
	Create(conn *models.Connection) error

	// ListByBoard lists connections whose both endpoints sit on the board
	ListByBoard(boardID uint64) ([]models.Connection, error)

	// DeletePair deletes the row for a canonically ordered pair if present
	DeletePair(cardID1, cardID2 uint64) error
}
