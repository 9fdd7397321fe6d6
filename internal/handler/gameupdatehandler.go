package handler

import (
	"net/http"

	"github.com/ludotrove/catalog/internal/logic"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func GameUpdateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GameUpdateRequest
		if err := httpx.ParsePath(r, &req); err != nil {
			writeError(w, r, http.StatusNotFound, "Game not found")
			return
		}

		// The body outcome rides along instead of failing fast so an
		// unknown id still answers NotFound.
		payload, payloadErr := parseJSONBody(r)

		l := logic.NewGameUpdateLogic(r.Context(), svcCtx)
		resp, err := l.GameUpdate(&req, payload, payloadErr)
		if err != nil {
			writeCatalogError(w, r, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
