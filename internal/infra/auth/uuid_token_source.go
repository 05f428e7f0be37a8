package auth

import (
	"github.com/google/uuid"

	"rolodex/internal/domain/service"
)

// uuidTokenSource mints opaque session tokens from random UUIDs. The token
// carries no decodable structure; it is only ever compared against the
// stored value.
type uuidTokenSource struct{}

// NewUUIDTokenSource is the constructor for uuidTokenSource.
func NewUUIDTokenSource() service.TokenSource {
	return &uuidTokenSource{}
}

// Generate returns a fresh random token string.
func (s *uuidTokenSource) Generate() string {
	return uuid.NewString()
}
