package catalog

import (
	"errors"
	"strings"

	"github.com/ludotrove/catalog/internal/ports"
)

// Domain errors surfaced by the command handlers. The HTTP layer owns the
// mapping to status codes and client-facing messages.
var (
	ErrGameNotFound      = errors.New("game not found")
	ErrPublisherNotFound = errors.New("publisher not found")
	ErrCategoryNotFound  = errors.New("category not found")

	// ErrConstraintViolation reports a write the store refused.
	ErrConstraintViolation = errors.New("database constraint violation")

	// In-use errors guard lookup-table deletes while games still reference
	// the row.
	ErrPublisherInUse = errors.New("publisher referenced by existing games")
	ErrCategoryInUse  = errors.New("category referenced by existing games")
)

// MissingFieldsError lists create-payload fields that were absent or null,
// preserving the required-field order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// notFoundAs narrows a repository lookup failure to the entity the caller was
// addressing; other errors pass through untouched.
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, ports.ErrNotFound) {
		return sentinel
	}
	return err
}

// writeErr converts store rejections into the domain constraint error.
func writeErr(err error) error {
	if errors.Is(err, ports.ErrConstraint) {
		return ErrConstraintViolation
	}
	return err
}
