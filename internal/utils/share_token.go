package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateShareToken generates an opaque token used in public board share URLs.
func GenerateShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
