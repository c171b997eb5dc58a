package repository

import (
	"github.com/mrosati84/DetectiveBoard/internal/models"
	"gorm.io/gorm"
)

// GormCardRepository is a GORM implementation of CardRepository
type GormCardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &GormCardRepository{db: db}
}

// Create creates a new card
func (r *GormCardRepository) Create(card *models.Card) error {
	return r.db.Create(card).Error
}

// FindOwned finds a card by ID scoped to its board's owner
func (r *GormCardRepository) FindOwned(userID, cardID uint64) (*models.Card, error) {
	var card models.Card
	if err := r.db.
		Joins("JOIN boards ON boards.id = cards.board_id").
		Where("cards.id = ? AND boards.user_id = ?", cardID, userID).
		First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// ListByBoard lists all cards on a board
func (r *GormCardRepository) ListByBoard(boardID uint64) ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.
		Where("board_id = ?", boardID).
		Order("id ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// UpdateOwned applies column updates with the owner filter folded into the
// statement itself, so a card deleted or re-owned between check and write
// simply results in zero rows touched.
func (r *GormCardRepository) UpdateOwned(userID, cardID uint64, fields map[string]any) (int64, error) {
	ownedBoards := r.db.Model(&models.Board{}).Select("id").Where("user_id = ?", userID)
	res := r.db.Model(&models.Card{}).
		Where("id = ? AND board_id IN (?)", cardID, ownedBoards).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// DeleteOwned deletes a card and every connection incident on it
func (r *GormCardRepository) DeleteOwned(userID, cardID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var card models.Card
		if err := tx.
			Joins("JOIN boards ON boards.id = cards.board_id").
			Where("cards.id = ? AND boards.user_id = ?", cardID, userID).
			First(&card).Error; err != nil {
			return err
		}

		if err := tx.
			Where("card_id_1 = ? OR card_id_2 = ?", card.ID, card.ID).
			Delete(&models.Connection{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Card{}, card.ID).Error
	})
}

// CountOwned counts how many of the given card IDs belong to boards owned by the user
func (r *GormCardRepository) CountOwned(userID uint64, cardIDs []uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Card{}).
		Joins("JOIN boards ON boards.id = cards.board_id").
		Where("boards.user_id = ? AND cards.id IN ?", userID, cardIDs).
		Count(&count).Error
	return count, err
}
