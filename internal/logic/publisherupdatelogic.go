package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/service/catalog"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type PublisherUpdateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPublisherUpdateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PublisherUpdateLogic {
	return &PublisherUpdateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PublisherUpdateLogic) PublisherUpdate(req *types.PublisherUpdateRequest, payload catalog.Payload, payloadErr error) (*types.PublisherView, error) {
	publisher, err := l.svcCtx.Catalog.UpdatePublisher(l.ctx, req.Id, payload, payloadErr)
	if err != nil {
		return nil, err
	}
	view := publisherView(publisher)
	return &view, nil
}
