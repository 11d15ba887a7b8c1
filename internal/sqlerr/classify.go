package sqlerr

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"net"

	"github.com/lib/pq"

	"rideshare/internal/repository"
)

// SQLSTATE classes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	classIntegrityConstraint  pq.ErrorClass = "23"
	classConnectionException  pq.ErrorClass = "08"
	classOperatorIntervention pq.ErrorClass = "57"
)

// Classify returns the repository error kind for err, or nil when err does
// not fall into any kind.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return repository.ErrNotFound
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return repository.ErrConnectivity
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case classIntegrityConstraint:
			return repository.ErrConstraintViolation
		case classConnectionException, classOperatorIntervention:
			return repository.ErrConnectivity
		}
		return nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return repository.ErrConnectivity
	}

	return nil
}

// Wrap annotates err with the operation that failed and its kind. Errors
// that are already *repository.Error are returned unchanged.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	var repoErr *repository.Error
	if errors.As(err, &repoErr) {
		return err
	}

	return &repository.Error{Op: op, Kind: Classify(err), Err: err}
}

// Constraint returns the name of the violated constraint, or "" when err is
// not a constraint violation reported by the server.
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == classIntegrityConstraint {
		return pqErr.Constraint
	}
	return ""
}
