package services

import (
	"errors"
	"fmt"

	"abc-retail/libs"
	"abc-retail/models"
)

func translateFileError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, libs.ErrFileNotFound):
		return fmt.Errorf("%w: %w", models.ErrNotFound, err)
	case errors.Is(err, libs.ErrInvalidFileName):
		return fmt.Errorf("%w: %w", models.ErrValidation, err)
	}
	return err
}

func validationError(message string) error {
	return fmt.Errorf("%w: %s", models.ErrValidation, message)
}
