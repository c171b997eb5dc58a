package models

import "time"

type PinPosition string

const (
	PinLeft   PinPosition = "left"
	PinCenter PinPosition = "center"
	PinRight  PinPosition = "right"
)

// Valid reports whether p is one of the three known pin sides.
func (p PinPosition) Valid() bool {
	return p == PinLeft || p == PinCenter || p == PinRight
}

type Card struct {
	ID          uint64      `gorm:"primarykey" json:"id"`
	BoardID     uint64      `gorm:"not null;index" json:"board_id"`
	Title       string      `gorm:"type:text;not null" json:"title"`
	Description *string     `gorm:"type:text" json:"description"`
	ImagePath   *string     `gorm:"type:text" json:"image_path"`
	PosX        float64     `gorm:"not null;default:100" json:"pos_x"`
	PosY        float64     `gorm:"not null;default:100" json:"pos_y"`
	PinPosition PinPosition `gorm:"type:varchar(10);not null;default:'center'" json:"pin_position"`
	Inactive    bool        `gorm:"not null;default:false" json:"inactive"`
	Color       *string     `gorm:"type:varchar(20)" json:"color"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Relations
	Board Board `gorm:"foreignKey:BoardID" json:"-"`
}
