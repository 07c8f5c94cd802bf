// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"github.com/Yakorrr/merchandising-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsManager reports whether the actor may act on every merchandiser's records.
func (a Actor) IsManager() bool {
	return a.Role == entity.RoleManager
}

// CanAccess reports whether the actor may see records owned by merchandiserID.
func (a Actor) CanAccess(merchandiserID uuid.UUID) bool {
	return a.IsManager() || a.UserID == merchandiserID
}
