package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type PublisherDetailLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPublisherDetailLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PublisherDetailLogic {
	return &PublisherDetailLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PublisherDetailLogic) PublisherDetail(req *types.PublisherDetailRequest) (*types.PublisherView, error) {
	publisher, err := l.svcCtx.Catalog.GetPublisher(l.ctx, req.Id)
	if err != nil {
		return nil, err
	}
	view := publisherView(publisher)
	return &view, nil
}
