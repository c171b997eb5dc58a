package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mrosati84/DetectiveBoard/internal/dto"
	"github.com/mrosati84/DetectiveBoard/internal/models"
	"github.com/mrosati84/DetectiveBoard/internal/repository"
	"github.com/mrosati84/DetectiveBoard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectionHandlerTestSuite defines the test suite for ConnectionHandler
type ConnectionHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *ConnectionHandler
}

// SetupTest runs before each test
func (suite *ConnectionHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.Card{},
		&models.Connection{},
	)
	suite.Require().NoError(err)

	connRepo := repository.NewConnectionRepository(suite.db)
	cardRepo := repository.NewCardRepository(suite.db)
	connService := services.NewConnectionService(connRepo, cardRepo)

	suite.handler = NewConnectionHandler(connService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *ConnectionHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper functions to create test data

func (suite *ConnectionHandlerTestSuite) createTestUser(email string) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *ConnectionHandlerTestSuite) createTestBoard(name string, userID uint64) *models.Board {
	board := &models.Board{
		Name:   name,
		UserID: userID,
	}
	suite.db.Create(board)
	return board
}

func (suite *ConnectionHandlerTestSuite) createTestCard(boardID uint64, title string) *models.Card {
	card := &models.Card{
		BoardID:     boardID,
		Title:       title,
		PinPosition: models.PinCenter,
	}
	suite.db.Create(card)
	return card
}

// Helper function to create authenticated context
func (suite *ConnectionHandlerTestSuite) createAuthContext(method string, cardID1, cardID2 uint64, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	body, _ := json.Marshal(map[string]uint64{
		"card_id_1": cardID1,
		"card_id_2": cardID2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/api/connections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", userID)

	return c, w
}

func (suite *ConnectionHandlerTestSuite) TestCreateConnection_CanonicalOrder() {
	user := suite.createTestUser("test@example.com")
	board := suite.createTestBoard("Case", user.ID)
	lower := suite.createTestCard(board.ID, "Suspect A")
	higher := suite.createTestCard(board.ID, "Suspect B")

	// Submit the pair in reversed order
	c, w := suite.createAuthContext("POST", higher.ID, lower.ID, user.ID)

	suite.handler.CreateConnection(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.ConnectionDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), lower.ID, response.CardID1)
	assert.Equal(suite.T(), higher.ID, response.CardID2)
}

func (suite *ConnectionHandlerTestSuite) TestCreateConnection_Duplicate() {
	user := suite.createTestUser("test@example.com")
	board := suite.createTestBoard("Case", user.ID)
	card1 := suite.createTestCard(board.ID, "Suspect A")
	card2 := suite.createTestCard(board.ID, "Suspect B")

	c, w := suite.createAuthContext("POST", card1.ID, card2.ID, user.ID)
	suite.handler.CreateConnection(c)
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	// Same pair again, reversed
	c, w = suite.createAuthContext("POST", card2.ID, card1.ID, user.ID)
	suite.handler.CreateConnection(c)
	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	var count int64
	suite.db.Model(&models.Connection{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *ConnectionHandlerTestSuite) TestCreateConnection_SelfConnection() {
	user := suite.createTestUser("test@example.com")
	board := suite.createTestBoard("Case", user.ID)
	card := suite.createTestCard(board.ID, "Suspect A")

	c, w := suite.createAuthContext("POST", card.ID, card.ID, user.ID)

	suite.handler.CreateConnection(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ConnectionHandlerTestSuite) TestCreateConnection_MissingIDs() {
	user := suite.createTestUser("test@example.com")

	c, w := suite.createAuthContext("POST", 0, 5, user.ID)

	suite.handler.CreateConnection(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ConnectionHandlerTestSuite) TestCreateConnection_ForeignCard() {
	owner := suite.createTestUser("owner@example.com")
	intruder := suite.createTestUser("intruder@example.com")
	ownerBoard := suite.createTestBoard("Secret", owner.ID)
	intruderBoard := suite.createTestBoard("Mine", intruder.ID)
	foreign := suite.createTestCard(ownerBoard.ID, "Private suspect")
	mine := suite.createTestCard(intruderBoard.ID, "My suspect")

	c, w := suite.createAuthContext("POST", mine.ID, foreign.ID, intruder.ID)

	suite.handler.CreateConnection(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var count int64
	suite.db.Model(&models.Connection{}).Count(&count)
	assert.Zero(suite.T(), count)
}

func (suite *ConnectionHandlerTestSuite) TestCreateConnection_MissingCard() {
	user := suite.createTestUser("test@example.com")
	board := suite.createTestBoard("Case", user.ID)
	card := suite.createTestCard(board.ID, "Suspect A")

	c, w := suite.createAuthContext("POST", card.ID, 999, user.ID)

	suite.handler.CreateConnection(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ConnectionHandlerTestSuite) TestCreateConnection_AcrossOwnBoards() {
	user := suite.createTestUser("test@example.com")
	board1 := suite.createTestBoard("Case 1", user.ID)
	board2 := suite.createTestBoard("Case 2", user.ID)
	card1 := suite.createTestCard(board1.ID, "Suspect A")
	card2 := suite.createTestCard(board2.ID, "Suspect B")

	c, w := suite.createAuthContext("POST", card1.ID, card2.ID, user.ID)

	suite.handler.CreateConnection(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *ConnectionHandlerTestSuite) TestDeleteConnection_ReversedInput() {
	user := suite.createTestUser("test@example.com")
	board := suite.createTestBoard("Case", user.ID)
	card1 := suite.createTestCard(board.ID, "Suspect A")
	card2 := suite.createTestCard(board.ID, "Suspect B")
	suite.db.Create(&models.Connection{CardID1: card1.ID, CardID2: card2.ID})

	c, w := suite.createAuthContext("DELETE", card2.ID, card1.ID, user.ID)

	suite.handler.DeleteConnection(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Connection{}).Count(&count)
	assert.Zero(suite.T(), count)
}

func (suite *ConnectionHandlerTestSuite) TestDeleteConnection_MissingPairIsNoOp() {
	user := suite.createTestUser("test@example.com")
	board := suite.createTestBoard("Case", user.ID)
	card1 := suite.createTestCard(board.ID, "Suspect A")
	card2 := suite.createTestCard(board.ID, "Suspect B")

	c, w := suite.createAuthContext("DELETE", card1.ID, card2.ID, user.ID)

	suite.handler.DeleteConnection(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ConnectionHandlerTestSuite) TestDeleteConnection_ForeignCards() {
	owner := suite.createTestUser("owner@example.com")
	intruder := suite.createTestUser("intruder@example.com")
	board := suite.createTestBoard("Secret", owner.ID)
	card1 := suite.createTestCard(board.ID, "Suspect A")
	card2 := suite.createTestCard(board.ID, "Suspect B")
	suite.db.Create(&models.Connection{CardID1: card1.ID, CardID2: card2.ID})

	c, w := suite.createAuthContext("DELETE", card1.ID, card2.ID, intruder.ID)

	suite.handler.DeleteConnection(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var count int64
	suite.db.Model(&models.Connection{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

// TestConnectionHandlerTestSuite runs the test suite
func TestConnectionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConnectionHandlerTestSuite))
}
