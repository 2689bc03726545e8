package repo

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Every error returned by a repo wraps exactly one of these kinds.
var (
	ErrNotFound    = errors.New("record not found")
	ErrConflict    = errors.New("constraint violation")
	ErrUnavailable = errors.New("database unavailable")
	ErrInternal    = errors.New("database error")
)

// classify wraps err with its kind so callers can use errors.Is.
func classify(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", kindOf(err), err)
}

func kindOf(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConflict
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrUnavailable
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23": // integrity_constraint_violation
			return ErrConflict
		case "08", "53", "57": // connection_exception, insufficient_resources, operator_intervention
			return ErrUnavailable
		}
		return ErrInternal
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrUnavailable
	}
	// sqlite reports constraint failures only in the message text
	if msg := err.Error(); strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return ErrConflict
	}
	return ErrInternal
}

// Kind names the kind of a repo error for logs and metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "internal"
	}
}
