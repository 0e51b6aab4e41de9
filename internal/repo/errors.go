package repo

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the key does not resolve to a stored entity.
	ErrNotFound = errors.New("not found")
	// ErrValidation means a constraint was violated: uniqueness, a missing
	// required field, an out-of-range value or a dangling reference.
	ErrValidation = errors.New("validation failed")
)

// translate maps gorm errors onto the repository error taxonomy. Constraint
// violations come through gorm's TranslateError support, so this works the
// same against PostgreSQL and the sqlite databases used in tests.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", ErrValidation, err)
	default:
		return err
	}
}
