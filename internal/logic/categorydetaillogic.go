package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type CategoryDetailLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCategoryDetailLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CategoryDetailLogic {
	return &CategoryDetailLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CategoryDetailLogic) CategoryDetail(req *types.CategoryDetailRequest) (*types.CategoryView, error) {
	category, err := l.svcCtx.Catalog.GetCategory(l.ctx, req.Id)
	if err != nil {
		return nil, err
	}
	view := categoryView(category)
	return &view, nil
}
