package dto

import (
	"time"

	"github.com/mrosati84/DetectiveBoard/internal/models"
	"github.com/mrosati84/DetectiveBoard/internal/services"
)

// BoardDTO represents a board in API responses
type BoardDTO struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	ShareToken *string   `json:"share_token,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CardDTO represents a card in API responses
type CardDTO struct {
	ID          uint64             `json:"id"`
	BoardID     uint64             `json:"board_id"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	ImagePath   *string            `json:"image_path"`
	PosX        float64            `json:"pos_x"`
	PosY        float64            `json:"pos_y"`
	PinPosition models.PinPosition `json:"pin_position"`
	Inactive    bool               `json:"inactive"`
	Color       *string            `json:"color"`
}

// NoteDTO represents a note in API responses
type NoteDTO struct {
	ID      uint64  `json:"id"`
	BoardID uint64  `json:"board_id"`
	Content string  `json:"content"`
	PosX    float64 `json:"pos_x"`
	PosY    float64 `json:"pos_y"`
}

// ConnectionDTO represents an undirected card link in API responses
type ConnectionDTO struct {
	ID      uint64 `json:"id"`
	CardID1 uint64 `json:"card_id_1"`
	CardID2 uint64 `json:"card_id_2"`
}

// BoardDetailDTO is the aggregate board read: the board plus everything on it.
type BoardDetailDTO struct {
	Board       BoardDTO        `json:"board"`
	Cards       []CardDTO       `json:"cards"`
	Notes       []NoteDTO       `json:"notes"`
	Connections []ConnectionDTO `json:"connections"`
}

// ShareResponse is the payload returned when sharing is enabled.
type ShareResponse struct {
	ShareToken string `json:"share_token"`
	ShareURL   string `json:"share_url"`
}

// Conversion functions

// ToBoardDTO converts a Board model to BoardDTO
func ToBoardDTO(board models.Board) BoardDTO {
	return BoardDTO{
		ID:         board.ID,
		Name:       board.Name,
		ShareToken: board.ShareToken,
		CreatedAt:  board.CreatedAt,
	}
}

// ToBoardListDTO converts a slice of boards
func ToBoardListDTO(boards []models.Board) []BoardDTO {
	out := make([]BoardDTO, len(boards))
	for i, b := range boards {
		out[i] = ToBoardDTO(b)
	}
	return out
}

// ToCardDTO converts a Card model to CardDTO
func ToCardDTO(card models.Card) CardDTO {
	return CardDTO{
		ID:          card.ID,
		BoardID:     card.BoardID,
		Title:       card.Title,
		Description: card.Description,
		ImagePath:   card.ImagePath,
		PosX:        card.PosX,
		PosY:        card.PosY,
		PinPosition: card.PinPosition,
		Inactive:    card.Inactive,
		Color:       card.Color,
	}
}

// ToNoteDTO converts a Note model to NoteDTO
func ToNoteDTO(note models.Note) NoteDTO {
	return NoteDTO{
		ID:      note.ID,
		BoardID: note.BoardID,
		Content: note.Content,
		PosX:    note.PosX,
		PosY:    note.PosY,
	}
}

// ToConnectionDTO converts a Connection model to ConnectionDTO
func ToConnectionDTO(conn models.Connection) ConnectionDTO {
	return ConnectionDTO{
		ID:      conn.ID,
		CardID1: conn.CardID1,
		CardID2: conn.CardID2,
	}
}

// ToBoardDetailDTO converts the aggregate board read
func ToBoardDetailDTO(detail services.BoardDetail) BoardDetailDTO {
	cards := make([]CardDTO, len(detail.Cards))
	for i, c := range detail.Cards {
		cards[i] = ToCardDTO(c)
	}

	notes := make([]NoteDTO, len(detail.Notes))
	for i, n := range detail.Notes {
		notes[i] = ToNoteDTO(n)
	}

	conns := make([]ConnectionDTO, len(detail.Connections))
	for i, cn := range detail.Connections {
		conns[i] = ToConnectionDTO(cn)
	}

	return BoardDetailDTO{
		Board:       ToBoardDTO(detail.Board),
		Cards:       cards,
		Notes:       notes,
		Connections: conns,
	}
}
