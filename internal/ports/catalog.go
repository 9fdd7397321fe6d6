package ports

import (
	"context"
	"errors"
	"time"
)

// Store-level error sentinels. Repositories translate driver errors into
// these so services stay independent of the storage backend.
var (
	// ErrNotFound is returned by lookups when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrConstraint is returned by writes the store rejects (uniqueness,
	// NOT NULL, foreign keys).
	ErrConstraint = errors.New("constraint violated")
)

// Game is the domain DTO used by services/handlers. It mirrors the DB model
// but avoids GORM tags. Publisher/Category are populated on joined reads and
// otherwise nil.
type Game struct {
	ID          uint
	Title       string
	Description *string
	StarRating  *float64
	CategoryID  uint
	PublisherID uint
	Category    *Category
	Publisher   *Publisher
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Publisher owns a collection of games. GameCount is a read-side projection
// and is ignored on writes.
type Publisher struct {
	ID          uint
	Name        string
	Description *string
	GameCount   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category owns a collection of games. GameCount is a read-side projection
// and is ignored on writes.
type Category struct {
	ID          uint
	Name        string
	Description *string
	GameCount   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CatalogRepository defines persistence for the catalog entities. List
// methods return joined read views ordered by id; Get methods report
// ErrNotFound for unknown ids.
type CatalogRepository interface {
	// Games
	GetGame(ctx context.Context, id uint) (*Game, error)
	GetGameView(ctx context.Context, id uint) (*Game, error)
	ListGameViews(ctx context.Context, offset, limit int) ([]*Game, error)
	CountGames(ctx context.Context) (int64, error)
	CreateGame(ctx context.Context, g *Game) error
	SaveGame(ctx context.Context, g *Game) error
	DeleteGame(ctx context.Context, id uint) error

	// Publishers
	GetPublisher(ctx context.Context, id uint) (*Publisher, error)
	ListPublishers(ctx context.Context, offset, limit int) ([]*Publisher, error)
	CountPublishers(ctx context.Context) (int64, error)
	CreatePublisher(ctx context.Context, p *Publisher) error
	SavePublisher(ctx context.Context, p *Publisher) error
	DeletePublisher(ctx context.Context, id uint) error

	// Categories
	GetCategory(ctx context.Context, id uint) (*Category, error)
	ListCategories(ctx context.Context, offset, limit int) ([]*Category, error)
	CountCategories(ctx context.Context) (int64, error)
	CreateCategory(ctx context.Context, c *Category) error
	SaveCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id uint) error
}

// UnitOfWork runs fn inside one store transaction. The repository passed to
// fn is bound to that transaction; returning an error rolls everything back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repo CatalogRepository) error) error
}
