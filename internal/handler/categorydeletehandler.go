package handler

import (
	"net/http"

	"github.com/ludotrove/catalog/internal/logic"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func CategoryDeleteHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CategoryDeleteRequest
		if err := httpx.ParsePath(r, &req); err != nil {
			writeError(w, r, http.StatusNotFound, "Category not found")
			return
		}

		l := logic.NewCategoryDeleteLogic(r.Context(), svcCtx)
		resp, err := l.CategoryDelete(&req)
		if err != nil {
			writeCatalogError(w, r, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
