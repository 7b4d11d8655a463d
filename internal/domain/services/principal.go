package services

import (
	"errors"

	"github.com/KCP2005/date-collection/internal/domain/models"
)

// Principal is the authenticated actor behind a request
type Principal struct {
	UserID uint
	Role   string
	TeamID *uint
}

// IsAdmin reports whether the principal carries the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// ErrInvalidQuery marks listing failures caused by bad query parameters.
// Callers wrap the detail, controllers answer 400.
var ErrInvalidQuery = errors.New("invalid query parameters")
