package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type CategoryDeleteLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCategoryDeleteLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CategoryDeleteLogic {
	return &CategoryDeleteLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CategoryDeleteLogic) CategoryDelete(req *types.CategoryDeleteRequest) (*types.MessageResponse, error) {
	if err := l.svcCtx.Catalog.DeleteCategory(l.ctx, req.Id); err != nil {
		return nil, err
	}
	return &types.MessageResponse{Message: "Category deleted successfully"}, nil
}
