package catalog

import (
	"context"

	"github.com/ludotrove/catalog/internal/pagination"
	"github.com/ludotrove/catalog/internal/ports"
	"github.com/ludotrove/catalog/internal/validation"
)

// requiredGameFields is also the order missing fields are reported in.
var requiredGameFields = []string{"title", "description", "category_id", "publisher_id"}

func (s *Service) ListGames(ctx context.Context, rawPage, rawPerPage string) (*GamePage, error) {
	page, perPage := pagination.Normalize(rawPage, rawPerPage)
	out := &GamePage{Page: page, PerPage: perPage}
	err := s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		total, err := repo.CountGames(ctx)
		if err != nil {
			return err
		}
		games, err := repo.ListGameViews(ctx, pagination.Offset(page, perPage), perPage)
		if err != nil {
			return err
		}
		out.Games = games
		out.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	out.TotalPages = pagination.TotalPages(out.Total, perPage)
	return out, nil
}

func (s *Service) GetGame(ctx context.Context, id uint) (*ports.Game, error) {
	var out *ports.Game
	err := s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		game, err := repo.GetGameView(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrGameNotFound)
		}
		out = game
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateGame requires title, description, category_id and publisher_id to be
// present and non-null. References are resolved before any field is
// validated, publisher first; the response is re-read through the joined
// view so it reflects the resolved rows rather than the submitted ids.
func (s *Service) CreateGame(ctx context.Context, payload Payload) (*ports.Game, error) {
	if missing := payload.Missing(requiredGameFields...); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}
	var out *ports.Game
	err := s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		publisherID, err := resolvePublisher(ctx, repo, payload.Get("publisher_id"))
		if err != nil {
			return err
		}
		categoryID, err := resolveCategory(ctx, repo, payload.Get("category_id"))
		if err != nil {
			return err
		}
		title, err := validation.String("Game title", payload.Get("title"), 2, false)
		if err != nil {
			return err
		}
		description, err := validation.String("Description", payload.Get("description"), 10, true)
		if err != nil {
			return err
		}
		rating, err := payload.Float("star_rating", "Star rating")
		if err != nil {
			return err
		}
		game := &ports.Game{
			Title:       *title,
			Description: description,
			StarRating:  rating,
			CategoryID:  categoryID,
			PublisherID: publisherID,
		}
		if err := repo.CreateGame(ctx, game); err != nil {
			return writeErr(err)
		}
		view, err := repo.GetGameView(ctx, game.ID)
		if err != nil {
			return err
		}
		out = view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateGame applies a partial payload: only supplied fields change, an
// explicit null clears nullable ones. References are resolved before being
// assigned, publisher before category; any failure after that point rolls
// the already-assigned fields back with the transaction. payloadErr is
// checked after the game lookup so an unknown id answers NotFound no matter
// how broken the request body is.
func (s *Service) UpdateGame(ctx context.Context, id uint, payload Payload, payloadErr error) (*ports.Game, error) {
	var out *ports.Game
	err := s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		game, err := repo.GetGame(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrGameNotFound)
		}
		if payloadErr != nil {
			return payloadErr
		}
		if payload.Has("publisher_id") {
			publisherID, err := resolvePublisher(ctx, repo, payload.Get("publisher_id"))
			if err != nil {
				return err
			}
			game.PublisherID = publisherID
		}
		if payload.Has("category_id") {
			categoryID, err := resolveCategory(ctx, repo, payload.Get("category_id"))
			if err != nil {
				return err
			}
			game.CategoryID = categoryID
		}
		if payload.Has("title") {
			title, err := validation.String("Game title", payload.Get("title"), 2, false)
			if err != nil {
				return err
			}
			game.Title = *title
		}
		if payload.Has("description") {
			// Null passes the validator; the store's NOT NULL constraint is
			// what rejects it.
			description, err := validation.String("Description", payload.Get("description"), 10, true)
			if err != nil {
				return err
			}
			game.Description = description
		}
		if payload.Has("star_rating") {
			rating, err := payload.Float("star_rating", "Star rating")
			if err != nil {
				return err
			}
			game.StarRating = rating
		}
		if err := repo.SaveGame(ctx, game); err != nil {
			return writeErr(err)
		}
		view, err := repo.GetGameView(ctx, game.ID)
		if err != nil {
			return err
		}
		out = view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) DeleteGame(ctx context.Context, id uint) error {
	return s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		game, err := repo.GetGame(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrGameNotFound)
		}
		return repo.DeleteGame(ctx, game.ID)
	})
}
