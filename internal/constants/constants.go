package constants

import "time"

// ContextKeyUserID is the gin context key holding the authenticated user's ID.
const ContextKeyUserID = "user_id"

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

// TokenLifetime is how long an issued session token stays valid.
const TokenLifetime = 30 * 24 * time.Hour

// Default canvas position for newly created cards and notes when the client
// does not supply one.
const (
	DefaultPosX = 200
	DefaultPosY = 150
)
