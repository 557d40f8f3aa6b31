package services

import (
	"errors"

	apperrors "budgetplan/internal/errors"
)

// asAppError passes AppErrors through and classifies anything else as a database failure.
func asAppError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Database(err)
}
