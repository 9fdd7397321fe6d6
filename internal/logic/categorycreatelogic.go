package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/service/catalog"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type CategoryCreateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCategoryCreateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CategoryCreateLogic {
	return &CategoryCreateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CategoryCreateLogic) CategoryCreate(payload catalog.Payload) (*types.CategoryView, error) {
	category, err := l.svcCtx.Catalog.CreateCategory(l.ctx, payload)
	if err != nil {
		return nil, err
	}
	view := categoryView(category)
	return &view, nil
}
