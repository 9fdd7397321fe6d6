package logic

import (
	"github.com/ludotrove/catalog/internal/ports"
	"github.com/ludotrove/catalog/internal/types"
)

func gameView(g *ports.Game) types.GameView {
	v := types.GameView{
		Id:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		StarRating:  g.StarRating,
	}
	if g.Publisher != nil {
		v.Publisher = &types.GameRef{Id: g.Publisher.ID, Name: g.Publisher.Name}
	}
	if g.Category != nil {
		v.Category = &types.GameRef{Id: g.Category.ID, Name: g.Category.Name}
	}
	return v
}

// gameViews always allocates so an empty page marshals as [] rather than null.
func gameViews(games []*ports.Game) []types.GameView {
	out := make([]types.GameView, 0, len(games))
	for _, g := range games {
		out = append(out, gameView(g))
	}
	return out
}

func publisherView(p *ports.Publisher) types.PublisherView {
	return types.PublisherView{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		GameCount:   p.GameCount,
	}
}

func publisherViews(publishers []*ports.Publisher) []types.PublisherView {
	out := make([]types.PublisherView, 0, len(publishers))
	for _, p := range publishers {
		out = append(out, publisherView(p))
	}
	return out
}

func categoryView(c *ports.Category) types.CategoryView {
	return types.CategoryView{
		Id:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		GameCount:   c.GameCount,
	}
}

func categoryViews(categories []*ports.Category) []types.CategoryView {
	out := make([]types.CategoryView, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryView(c))
	}
	return out
}
