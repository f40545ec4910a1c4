package postgres

import (
	"database/sql"

	"exchanger/models"

	"github.com/pkg/errors"
)

// wrap turns driver errors into the domain taxonomy. sql.ErrNoRows becomes
// NotFoundError for the given entity.
func wrap(err error, op, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &models.NotFoundError{Entity: entity, ID: id}
	}

	return &models.PersistenceError{Op: op, Err: errors.WithStack(err)}
}
