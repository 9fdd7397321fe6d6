package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type PublisherDeleteLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPublisherDeleteLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PublisherDeleteLogic {
	return &PublisherDeleteLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PublisherDeleteLogic) PublisherDelete(req *types.PublisherDeleteRequest) (*types.MessageResponse, error) {
	if err := l.svcCtx.Catalog.DeletePublisher(l.ctx, req.Id); err != nil {
		return nil, err
	}
	return &types.MessageResponse{Message: "Publisher deleted successfully"}, nil
}
