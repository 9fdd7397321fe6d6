package handler

import (
	"net/http"

	"github.com/ludotrove/catalog/internal/logic"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func GameDetailHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GameDetailRequest
		if err := httpx.ParsePath(r, &req); err != nil {
			// a non-numeric id can never name a game
			writeError(w, r, http.StatusNotFound, "Game not found")
			return
		}

		l := logic.NewGameDetailLogic(r.Context(), svcCtx)
		resp, err := l.GameDetail(&req)
		if err != nil {
			writeCatalogError(w, r, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
