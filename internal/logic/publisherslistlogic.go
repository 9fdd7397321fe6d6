package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type PublishersListLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPublishersListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PublishersListLogic {
	return &PublishersListLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PublishersListLogic) PublishersList(req *types.PublishersListRequest) (*types.PublishersListResponse, error) {
	page, err := l.svcCtx.Catalog.ListPublishers(l.ctx, req.Page, req.PerPage)
	if err != nil {
		return nil, err
	}
	return &types.PublishersListResponse{
		Data:       publisherViews(page.Publishers),
		Page:       page.Page,
		PerPage:    page.PerPage,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}, nil
}
