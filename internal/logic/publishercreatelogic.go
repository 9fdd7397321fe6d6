package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/service/catalog"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type PublisherCreateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPublisherCreateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PublisherCreateLogic {
	return &PublisherCreateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PublisherCreateLogic) PublisherCreate(payload catalog.Payload) (*types.PublisherView, error) {
	publisher, err := l.svcCtx.Catalog.CreatePublisher(l.ctx, payload)
	if err != nil {
		return nil, err
	}
	view := publisherView(publisher)
	return &view, nil
}
