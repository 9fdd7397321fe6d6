package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GameDeleteLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGameDeleteLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GameDeleteLogic {
	return &GameDeleteLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GameDeleteLogic) GameDelete(req *types.GameDeleteRequest) (*types.MessageResponse, error) {
	if err := l.svcCtx.Catalog.DeleteGame(l.ctx, req.Id); err != nil {
		return nil, err
	}
	return &types.MessageResponse{Message: "Game deleted successfully"}, nil
}
