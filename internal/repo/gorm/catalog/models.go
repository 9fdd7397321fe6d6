package catalog

import (
	"time"

	"github.com/ludotrove/catalog/internal/ports"
)

// DB models declare ids and timestamps explicitly instead of embedding
// gorm.Model: the API contract is hard deletes, so no DeletedAt column.

type Game struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:100;not null"`
	Description *string `gorm:"type:text;not null"`
	StarRating  *float64
	CategoryID  uint       `gorm:"not null;index"`
	PublisherID uint       `gorm:"not null;index"`
	Category    *Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Publisher   *Publisher `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Game) TableName() string { return "games" }

type Publisher struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null;uniqueIndex"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Publisher) TableName() string { return "publishers" }

type Category struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null;uniqueIndex"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Category) TableName() string { return "categories" }

func (m *Game) toDomain() *ports.Game {
	g := &ports.Game{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		StarRating:  m.StarRating,
		CategoryID:  m.CategoryID,
		PublisherID: m.PublisherID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Publisher != nil {
		g.Publisher = m.Publisher.toDomain()
	}
	if m.Category != nil {
		g.Category = m.Category.toDomain()
	}
	return g
}

func (m *Publisher) toDomain() *ports.Publisher {
	return &ports.Publisher{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (m *Category) toDomain() *ports.Category {
	return &ports.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// gameModel carries only scalar columns so saves never touch associations.
func gameModel(g *ports.Game) *Game {
	return &Game{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		StarRating:  g.StarRating,
		CategoryID:  g.CategoryID,
		PublisherID: g.PublisherID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func publisherModel(p *ports.Publisher) *Publisher {
	return &Publisher{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func categoryModel(c *ports.Category) *Category {
	return &Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
