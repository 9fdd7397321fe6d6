package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/service/catalog"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GameCreateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGameCreateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GameCreateLogic {
	return &GameCreateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GameCreateLogic) GameCreate(payload catalog.Payload) (*types.GameView, error) {
	game, err := l.svcCtx.Catalog.CreateGame(l.ctx, payload)
	if err != nil {
		return nil, err
	}
	view := gameView(game)
	return &view, nil
}
