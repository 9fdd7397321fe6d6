package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/service/catalog"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type CategoryUpdateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCategoryUpdateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CategoryUpdateLogic {
	return &CategoryUpdateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CategoryUpdateLogic) CategoryUpdate(req *types.CategoryUpdateRequest, payload catalog.Payload, payloadErr error) (*types.CategoryView, error) {
	category, err := l.svcCtx.Catalog.UpdateCategory(l.ctx, req.Id, payload, payloadErr)
	if err != nil {
		return nil, err
	}
	view := categoryView(category)
	return &view, nil
}
