package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ludotrove/catalog/internal/ports"
	"gorm.io/gorm"
)

// Repo provides GORM-based persistence for the catalog entities.
type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Publisher{}, &Category{}, &Game{})
}

var _ ports.CatalogRepository = (*Repo)(nil)

// gameQuery is the joined base query every game read goes through, so views
// always carry their publisher and category rows.
func (r *Repo) gameQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&Game{}).Joins("Publisher").Joins("Category")
}

// Games

func (r *Repo) GetGame(ctx context.Context, id uint) (*ports.Game, error) {
	var m Game
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFound(err)
	}
	return m.toDomain(), nil
}

func (r *Repo) GetGameView(ctx context.Context, id uint) (*ports.Game, error) {
	var m Game
	if err := r.gameQuery(ctx).Where("games.id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	return m.toDomain(), nil
}

func (r *Repo) ListGameViews(ctx context.Context, offset, limit int) ([]*ports.Game, error) {
	var arr []*Game
	if err := r.gameQuery(ctx).Order("games.id").Offset(offset).Limit(limit).Find(&arr).Error; err != nil {
		return nil, err
	}
	out := make([]*ports.Game, 0, len(arr))
	for _, m := range arr {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *Repo) CountGames(ctx context.Context) (int64, error) {
	var n int64
	if err := r.gameQuery(ctx).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) CreateGame(ctx context.Context, g *ports.Game) error {
	m := gameModel(g)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storeErr(err)
	}
	g.ID = m.ID
	return nil
}

func (r *Repo) SaveGame(ctx context.Context, g *ports.Game) error {
	return storeErr(r.db.WithContext(ctx).Save(gameModel(g)).Error)
}

func (r *Repo) DeleteGame(ctx context.Context, id uint) error {
	return storeErr(r.db.WithContext(ctx).Delete(&Game{}, id).Error)
}

// Publishers

func (r *Repo) GetPublisher(ctx context.Context, id uint) (*ports.Publisher, error) {
	var m Publisher
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFound(err)
	}
	p := m.toDomain()
	n, err := r.countGamesBy(ctx, "publisher_id", id)
	if err != nil {
		return nil, err
	}
	p.GameCount = n
	return p, nil
}

func (r *Repo) ListPublishers(ctx context.Context, offset, limit int) ([]*ports.Publisher, error) {
	var arr []*Publisher
	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&arr).Error; err != nil {
		return nil, err
	}
	counts, err := r.gameCounts(ctx, "publisher_id")
	if err != nil {
		return nil, err
	}
	out := make([]*ports.Publisher, 0, len(arr))
	for _, m := range arr {
		p := m.toDomain()
		p.GameCount = counts[m.ID]
		out = append(out, p)
	}
	return out, nil
}

func (r *Repo) CountPublishers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Publisher{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) CreatePublisher(ctx context.Context, p *ports.Publisher) error {
	m := publisherModel(p)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storeErr(err)
	}
	p.ID = m.ID
	return nil
}

func (r *Repo) SavePublisher(ctx context.Context, p *ports.Publisher) error {
	return storeErr(r.db.WithContext(ctx).Save(publisherModel(p)).Error)
}

func (r *Repo) DeletePublisher(ctx context.Context, id uint) error {
	return storeErr(r.db.WithContext(ctx).Delete(&Publisher{}, id).Error)
}

// Categories

func (r *Repo) GetCategory(ctx context.Context, id uint) (*ports.Category, error) {
	var m Category
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFound(err)
	}
	c := m.toDomain()
	n, err := r.countGamesBy(ctx, "category_id", id)
	if err != nil {
		return nil, err
	}
	c.GameCount = n
	return c, nil
}

func (r *Repo) ListCategories(ctx context.Context, offset, limit int) ([]*ports.Category, error) {
	var arr []*Category
	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&arr).Error; err != nil {
		return nil, err
	}
	counts, err := r.gameCounts(ctx, "category_id")
	if err != nil {
		return nil, err
	}
	out := make([]*ports.Category, 0, len(arr))
	for _, m := range arr {
		c := m.toDomain()
		c.GameCount = counts[m.ID]
		out = append(out, c)
	}
	return out, nil
}

func (r *Repo) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Category{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) CreateCategory(ctx context.Context, c *ports.Category) error {
	m := categoryModel(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storeErr(err)
	}
	c.ID = m.ID
	return nil
}

func (r *Repo) SaveCategory(ctx context.Context, c *ports.Category) error {
	return storeErr(r.db.WithContext(ctx).Save(categoryModel(c)).Error)
}

func (r *Repo) DeleteCategory(ctx context.Context, id uint) error {
	return storeErr(r.db.WithContext(ctx).Delete(&Category{}, id).Error)
}

func (r *Repo) countGamesBy(ctx context.Context, column string, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Game{}).Where(column+" = ?", id).Count(&n).Error
	return n, err
}

type refCount struct {
	RefID uint  `gorm:"column:ref_id"`
	N     int64 `gorm:"column:n"`
}

func (r *Repo) gameCounts(ctx context.Context, column string) (map[uint]int64, error) {
	var rows []refCount
	err := r.db.WithContext(ctx).Model(&Game{}).
		Select(column + " AS ref_id, COUNT(*) AS n").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, rc := range rows {
		counts[rc.RefID] = rc.N
	}
	return counts, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.ErrNotFound
	}
	return err
}

// storeErr folds the constraint errors of the supported drivers into
// ports.ErrConstraint: gorm's translated sentinels, sqlite's "constraint
// failed" family, postgres SQLSTATE class 23 and the mysql 1048/1062/1452
// codes.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return fmt.Errorf("%w: %v", ports.ErrConstraint, err)
	}
	msg := err.Error()
	if strings.Contains(msg, "constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23") ||
		strings.Contains(msg, "Error 1048") ||
		strings.Contains(msg, "Error 1062") ||
		strings.Contains(msg, "Error 1452") {
		return fmt.Errorf("%w: %v", ports.ErrConstraint, err)
	}
	return err
}
