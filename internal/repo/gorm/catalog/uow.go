package catalog

import (
	"context"

	"github.com/ludotrove/catalog/internal/ports"
	"gorm.io/gorm"
)

// UnitOfWork maps the one-transaction-per-request contract onto
// gorm's Transaction: fn gets a repository bound to the transaction and a
// non-nil return rolls the whole request back.
type UnitOfWork struct{ db *gorm.DB }

func NewUnitOfWork(db *gorm.DB) *UnitOfWork { return &UnitOfWork{db: db} }

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repo ports.CatalogRepository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewRepo(tx))
	})
}
