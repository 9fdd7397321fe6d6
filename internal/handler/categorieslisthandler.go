package handler

import (
	"net/http"

	"github.com/ludotrove/catalog/internal/logic"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func CategoriesListHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CategoriesListRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewCategoriesListLogic(r.Context(), svcCtx)
		resp, err := l.CategoriesList(&req)
		if err != nil {
			writeCatalogError(w, r, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
