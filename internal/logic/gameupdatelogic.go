package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/service/catalog"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GameUpdateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGameUpdateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GameUpdateLogic {
	return &GameUpdateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GameUpdate carries the body parse outcome alongside the payload so the
// service can answer NotFound for unknown ids before complaining about the
// body.
func (l *GameUpdateLogic) GameUpdate(req *types.GameUpdateRequest, payload catalog.Payload, payloadErr error) (*types.GameView, error) {
	game, err := l.svcCtx.Catalog.UpdateGame(l.ctx, req.Id, payload, payloadErr)
	if err != nil {
		return nil, err
	}
	view := gameView(game)
	return &view, nil
}
