package handler

import (
	"net/http"

	"github.com/ludotrove/catalog/internal/logic"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func CategoryUpdateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CategoryUpdateRequest
		if err := httpx.ParsePath(r, &req); err != nil {
			writeError(w, r, http.StatusNotFound, "Category not found")
			return
		}

		payload, payloadErr := parseJSONBody(r)

		l := logic.NewCategoryUpdateLogic(r.Context(), svcCtx)
		resp, err := l.CategoryUpdate(&req, payload, payloadErr)
		if err != nil {
			writeCatalogError(w, r, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
