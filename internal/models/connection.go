package models

import "time"

// Connection is an undirected link between two cards. Rows are stored with the
// numerically smaller card id in CardID1 so {A,B} and {B,A} map to the same
// record; the composite unique index enforces at most one row per pair.
type Connection struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	CardID1   uint64    `gorm:"column:card_id_1;not null;uniqueIndex:idx_connections_pair" json:"card_id_1"`
	CardID2   uint64    `gorm:"column:card_id_2;not null;uniqueIndex:idx_connections_pair" json:"card_id_2"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Card1 Card `gorm:"foreignKey:CardID1" json:"-"`
	Card2 Card `gorm:"foreignKey:CardID2" json:"-"`
}
