package models

import "time"

type Note struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	BoardID   uint64    `gorm:"not null;index" json:"board_id"`
	Content   string    `gorm:"type:text;not null;default:''" json:"content"`
	PosX      float64   `gorm:"not null;default:100" json:"pos_x"`
	PosY      float64   `gorm:"not null;default:100" json:"pos_y"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Board Board `gorm:"foreignKey:BoardID" json:"-"`
}
