package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/topaz-jewels/backoffice_app/internal/apperrors"
)

// requireUUID guards service entry points that take a bare identifier
// argument instead of a validated request struct.
func requireUUID(field, value string) error {
	if value == "" {
		return apperrors.NewValidationError(fmt.Sprintf("Field %s is empty", field))
	}
	if uuid.Validate(value) != nil {
		return apperrors.NewValidationError(fmt.Sprintf("The value in the field %s is not a unique identifier", field))
	}
	return nil
}

// isUUID tells the by-data lookups whether to resolve by id or by name.
func isUUID(data string) bool {
	return uuid.Validate(data) == nil
}
