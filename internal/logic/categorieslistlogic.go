package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type CategoriesListLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCategoriesListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CategoriesListLogic {
	return &CategoriesListLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CategoriesListLogic) CategoriesList(req *types.CategoriesListRequest) (*types.CategoriesListResponse, error) {
	page, err := l.svcCtx.Catalog.ListCategories(l.ctx, req.Page, req.PerPage)
	if err != nil {
		return nil, err
	}
	return &types.CategoriesListResponse{
		Data:       categoryViews(page.Categories),
		Page:       page.Page,
		PerPage:    page.PerPage,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}, nil
}
