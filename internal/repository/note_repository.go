package repository

import (
	"github.com/mrosati84/DetectiveBoard/internal/models"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

// Create creates a new note
func (r *GormNoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// FindOwned finds a note by ID scoped to its board's owner
func (r *GormNoteRepository) FindOwned(userID, noteID uint64) (*models.Note, error) {
	var note models.Note
	if err := r.db.
		Joins("JOIN boards ON boards.id = notes.board_id").
		Where("notes.id = ? AND boards.user_id = ?", noteID, userID).
		First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// ListByBoard lists all notes on a board
func (r *GormNoteRepository) ListByBoard(boardID uint64) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.
		Where("board_id = ?", boardID).
		Order("id ASC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateOwned applies column updates scoped to the note's board owner
func (r *GormNoteRepository) UpdateOwned(userID, noteID uint64, fields map[string]any) (int64, error) {
	ownedBoards := r.db.Model(&models.Board{}).Select("id").Where("user_id = ?", userID)
	res := r.db.Model(&models.Note{}).
		Where("id = ? AND board_id IN (?)", noteID, ownedBoards).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// DeleteOwned deletes a note scoped to its board owner
func (r *GormNoteRepository) DeleteOwned(userID, noteID uint64) (int64, error) {
	ownedBoards := r.db.Model(&models.Board{}).Select("id").Where("user_id = ?", userID)
	res := r.db.
		Where("id = ? AND board_id IN (?)", noteID, ownedBoards).
		Delete(&models.Note{})
	return res.RowsAffected, res.Error
}
