package logic

import (
	"context"

	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type HealthzLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHealthzLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HealthzLogic {
	return &HealthzLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Healthz pings the backing store so a green check means requests can
// actually be served.
func (l *HealthzLogic) Healthz() (*types.HealthzResponse, error) {
	sqlDB, err := l.svcCtx.DB.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(l.ctx); err != nil {
		return nil, err
	}
	return &types.HealthzResponse{Status: "ok"}, nil
}
