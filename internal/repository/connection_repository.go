package repository

import (
	"github.com/mrosati84/DetectiveBoard/internal/models"
	"gorm.io/gorm"
)

// GormConnectionRepository is a GORM implementation of ConnectionRepository
type GormConnectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new ConnectionRepository
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &GormConnectionRepository{db: db}
}

// Create inserts a canonically ordered pair
func (r *GormConnectionRepository) Create(conn *models.Connection) error {
	return r.db.Create(conn).Error
}

// ListByBoard lists connections whose both endpoints sit on the board
func (r *GormConnectionRepository) ListByBoard(boardID uint64) ([]models.Connection, error) {
	var conns []models.Connection
	if err := r.db.
		Joins("JOIN cards c1 ON c1.id = connections.card_id_1").
		Joins("JOIN cards c2 ON c2.id = connections.card_id_2").
		Where("c1.board_id = ? AND c2.board_id = ?", boardID, boardID).
		Find(&conns).Error; err != nil {
		return nil, err
	}
	return conns, nil
}

// DeletePair deletes the row for a canonically ordered pair if present
func (r *GormConnectionRepository) DeletePair(cardID1, cardID2 uint64) error {
	return r.db.
		Where("card_id_1 = ? AND card_id_2 = ?", cardID1, cardID2).
		Delete(&models.Connection{}).Error
}
