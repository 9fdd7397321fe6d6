package catalog

import (
	"context"

	"github.com/ludotrove/catalog/internal/pagination"
	"github.com/ludotrove/catalog/internal/ports"
	"github.com/ludotrove/catalog/internal/validation"
)

func (s *Service) ListPublishers(ctx context.Context, rawPage, rawPerPage string) (*PublisherPage, error) {
	page, perPage := pagination.Normalize(rawPage, rawPerPage)
	out := &PublisherPage{Page: page, PerPage: perPage}
	err := s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		total, err := repo.CountPublishers(ctx)
		if err != nil {
			return err
		}
		publishers, err := repo.ListPublishers(ctx, pagination.Offset(page, perPage), perPage)
		if err != nil {
			return err
		}
		out.Publishers = publishers
		out.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	out.TotalPages = pagination.TotalPages(out.Total, perPage)
	return out, nil
}

func (s *Service) GetPublisher(ctx context.Context, id uint) (*ports.Publisher, error) {
	var out *ports.Publisher
	err := s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		publisher, err := repo.GetPublisher(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrPublisherNotFound)
		}
		out = publisher
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreatePublisher(ctx context.Context, payload Payload) (*ports.Publisher, error) {
	if missing := payload.Missing("name"); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}
	var out *ports.Publisher
	err := s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		name, err := validation.String("Publisher name", payload.Get("name"), 2, false)
		if err != nil {
			return err
		}
		description, err := validation.String("Description", payload.Get("description"), 10, true)
		if err != nil {
			return err
		}
		publisher := &ports.Publisher{Name: *name, Description: description}
		if err := repo.CreatePublisher(ctx, publisher); err != nil {
			return writeErr(err)
		}
		created, err := repo.GetPublisher(ctx, publisher.ID)
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

func (s *Service) UpdatePublisher(ctx context.Context, id uint, payload Payload, payloadErr error) (*ports.Publisher, error) {
	var out *ports.Publisher
	err := s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		publisher, err := repo.GetPublisher(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrPublisherNotFound)
		}
		if payloadErr != nil {
			return payloadErr
		}
		if payload.Has("name") {
			name, err := validation.String("Publisher name", payload.Get("name"), 2, false)
			if err != nil {
				return err
			}
			publisher.Name = *name
		}
		if payload.Has("description") {
			description, err := validation.String("Description", payload.Get("description"), 10, true)
			if err != nil {
				return err
			}
			publisher.Description = description
		}
		if err := repo.SavePublisher(ctx, publisher); err != nil {
			return writeErr(err)
		}
		saved, err := repo.GetPublisher(ctx, publisher.ID)
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

// DeletePublisher refuses to remove a publisher that still has games; the
// check answers before the store's RESTRICT rule so the caller gets a
// message naming the reason instead of a bare constraint failure.
func (s *Service) DeletePublisher(ctx context.Context, id uint) error {
	return s.uow.Do(ctx, func(ctx context.Context, repo ports.CatalogRepository) error {
		publisher, err := repo.GetPublisher(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrPublisherNotFound)
		}
		if publisher.GameCount > 0 {
			return ErrPublisherInUse
		}
		return repo.DeletePublisher(ctx, publisher.ID)
	})
}
