package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pulseline/pulseline/internal/domain/errs"
)

// translateErr converts expected store-level failures into the domain
// taxonomy. Unique violations are a first-class outcome here: they are the
// authoritative arbiter of the check-then-insert race, so they must map to
// the same error as the pre-check. Anything unclassified passes through and
// is treated as an internal failure by the caller.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errs.ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			// Parent row vanished between the existence check and the
			// insert (concurrent cascade delete).
			return errs.ErrNotFound
		}
	}
	return err
}
