package catalog

import (
	"context"

	"github.com/ludotrove/catalog/internal/pagination"
	"github.com/ludotrove/catalog/internal/ports"
	"github.com/ludotrove/catalog/internal/validation"
)

func (s *Service) ListCategories(ctx context.Context, rawPage, rawPerPage string) (*CategoryPage, error) {
	page, perPage := pagination.Normalize(rawPage, rawPerPage)
	out := &CategoryPage{Page: page, PerPage: perPage}
	err := s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		total, err := repo.CountCategories(ctx)
		if err != nil {
			return err
		}
		categories, err := repo.ListCategories(ctx, pagination.Offset(page, perPage), perPage)
		if err != nil {
			return err
		}
		out.Categories = categories
		out.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	out.TotalPages = pagination.TotalPages(out.Total, perPage)
	return out, nil
}

func (s *Service) GetCategory(ctx context.Context, id uint) (*ports.Category, error) {
	var out *ports.Category
	err := s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		category, err := repo.GetCategory(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrCategoryNotFound)
		}
		out = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateCategory(ctx context.Context, payload Payload) (*ports.Category, error) {
	if missing := payload.Missing("name"); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}
	var out *ports.Category
	err := s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		name, err := validation.String("Category name", payload.Get("name"), 2, false)
		if err != nil {
			return err
		}
		description, err := validation.String("Description", payload.Get("description"), 10, true)
		if err != nil {
			return err
		}
		category := &ports.Category{Name: *name, Description: description}
		if err := repo.CreateCategory(ctx, category); err != nil {
			return writeErr(err)
		}
		created, err := repo.GetCategory(ctx, category.ID)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id uint, payload Payload, payloadErr error) (*ports.Category, error) {
	var out *ports.Category
	err := s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		category, err := repo.GetCategory(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrCategoryNotFound)
		}
		if payloadErr != nil {
			return payloadErr
		}
		if payload.Has("name") {
			name, err := validation.String("Category name", payload.Get("name"), 2, false)
			if err != nil {
				return err
			}
			category.Name = *name
		}
		if payload.Has("description") {
			description, err := validation.String("Description", payload.Get("description"), 10, true)
			if err != nil {
				return err
			}
			category.Description = description
		}
		if err := repo.SaveCategory(ctx, category); err != nil {
			return writeErr(err)
		}
		saved, err := repo.GetCategory(ctx, category.ID)
		if err != nil {
			return err
		}
		out = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id uint) error {
	return s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		category, err := repo.GetCategory(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrCategoryNotFound)
		}
		if category.GameCount > 0 {
			return ErrCategoryInUse
		}
		return repo.DeleteCategory(ctx, category.ID)
	})
}
