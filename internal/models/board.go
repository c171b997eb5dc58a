package models

import "time"

type Board struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	UserID     uint64    `gorm:"not null;index" json:"user_id"`
	ShareToken *string   `gorm:"type:varchar(64);uniqueIndex" json:"share_token,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	User  User   `gorm:"foreignKey:UserID" json:"-"`
	Cards []Card `gorm:"foreignKey:BoardID" json:"cards,omitempty"`
	Notes []Note `gorm:"foreignKey:BoardID" json:"notes,omitempty"`
}
