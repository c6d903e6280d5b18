// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "github.com/google/uuid"

// Actor is the authenticated caller together with the farm they act on.
type Actor struct {
	UID     string
	Email   string
	FarmID  uuid.UUID
	IsOwner bool
}
