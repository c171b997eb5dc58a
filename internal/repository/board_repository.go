package repository

import (
	"errors"

	"github.com/mrosati84/DetectiveBoard/internal/models"
	"gorm.io/gorm"
)

// GormBoardRepository is a GORM implementation of BoardRepository
type GormBoardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &GormBoardRepository{db: db}
}

// Create creates a new board
func (r *GormBoardRepository) Create(board *models.Board) error {
	return r.db.Create(board).Error
}

// ListByUser lists all boards owned by the user, newest first
func (r *GormBoardRepository) ListByUser(userID uint64) ([]models.Board, error) {
	var boards []models.Board
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// FindOwned finds a board by ID scoped to its owner
func (r *GormBoardRepository) FindOwned(userID, boardID uint64) (*models.Board, error) {
	var board models.Board
	if err := r.db.
		Where("id = ? AND user_id = ?", boardID, userID).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByShareToken finds a board by its public share token
func (r *GormBoardRepository) FindByShareToken(token string) (*models.Board, error) {
	var board models.Board
	if err := r.db.
		Where("share_token = ?", token).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// Save persists in-place changes to a board
func (r *GormBoardRepository) Save(board *models.Board) error {
	return r.db.Save(board).Error
}

// DeleteOwned deletes a board and all its children in one transaction.
// Connections go first (they reference cards), then notes, cards, and the
// board row itself. A missing or foreign board is a no-op.
func (r *GormBoardRepository) DeleteOwned(userID, boardID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var board models.Board
		err := tx.Where("id = ? AND user_id = ?", boardID, userID).First(&board).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		boardCards := tx.Model(&models.Card{}).Select("id").Where("board_id = ?", board.ID)
		if err := tx.
			Where("card_id_1 IN (?) OR card_id_2 IN (?)", boardCards, boardCards).
			Delete(&models.Connection{}).Error; err != nil {
			return err
		}

		if err := tx.Where("board_id = ?", board.ID).Delete(&models.Note{}).Error; err != nil {
			return err
		}

		if err := tx.Where("board_id = ?", board.ID).Delete(&models.Card{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Board{}, board.ID).Error
	})
}
