package services

import (
	"errors"
	"fmt"

	"github.com/mrosati84/DetectiveBoard/internal/models"
	"github.com/mrosati84/DetectiveBoard/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCardIDsRequired  = errors.New("both card IDs are required")
	ErrSelfConnection   = errors.New("cannot connect a card to itself")
	ErrConnectionExists = errors.New("connection already exists")
)

// ConnectionService provides business logic for undirected card links.
type ConnectionService struct {
	connRepo repository.ConnectionRepository
	cardRepo repository.CardRepository
}

// NewConnectionService creates a new ConnectionService.
func NewConnectionService(connRepo repository.ConnectionRepository, cardRepo repository.CardRepository) *ConnectionService {
	return &ConnectionService{
		connRepo: connRepo,
		cardRepo: cardRepo,
	}
}

// Create links two owned cards. The pair is stored canonically (smaller id
// first) so {A,B} and {B,A} are the same connection.
func (s *ConnectionService) Create(userID, cardID1, cardID2 uint64) (*models.Connection, error) {
	id1, id2, err := canonicalPair(cardID1, cardID2)
	if err != nil {
		return nil, err
	}

	if err := s.requireOwnedPair(userID, id1, id2); err != nil {
		return nil, err
	}

	conn := &models.Connection{
		CardID1: id1,
		CardID2: id2,
	}

	if err := s.connRepo.Create(conn); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConnectionExists
		}
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	return conn, nil
}

// Delete unlinks two owned cards. Deleting a link that does not exist is
// not an error.
func (s *ConnectionService) Delete(userID, cardID1, cardID2 uint64) error {
	id1, id2, err := canonicalPair(cardID1, cardID2)
	if err != nil {
		return err
	}

	if err := s.requireOwnedPair(userID, id1, id2); err != nil {
		return err
	}

	if err := s.connRepo.DeletePair(id1, id2); err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}

	return nil
}

func (s *ConnectionService) requireOwnedPair(userID, id1, id2 uint64) error {
	count, err := s.cardRepo.CountOwned(userID, []uint64{id1, id2})
	if err != nil {
		return fmt.Errorf("failed to check card ownership: %w", err)
	}
	if count != 2 {
		return ErrCardNotFound
	}
	return nil
}

func canonicalPair(id1, id2 uint64) (uint64, uint64, error) {
	if id1 == 0 || id2 == 0 {
		return 0, 0, ErrCardIDsRequired
	}
	if id1 == id2 {
		return 0, 0, ErrSelfConnection
	}
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return id1, id2, nil
}
