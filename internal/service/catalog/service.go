// Package catalog implements the command handlers of the catalog API: every
// operation validates and resolves its inputs, then runs as a single store
// transaction that either commits completely or leaves no trace.
package catalog

import (
	"github.com/ludotrove/catalog/internal/ports"
)

type Service struct {
	uow ports.UnitOfWork
}

func NewService(uow ports.UnitOfWork) *Service {
	return &Service{uow: uow}
}

// GamePage is one page of the paginated game listing.
type GamePage struct {
	Games      []*ports.Game
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}

// PublisherPage is one page of the paginated publisher listing.
type PublisherPage struct {
	Publishers []*ports.Publisher
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}

// CategoryPage is one page of the paginated category listing.
type CategoryPage struct {
	Categories []*ports.Category
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}
