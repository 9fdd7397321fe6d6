package handler

import (
	"net/http"

	"github.com/ludotrove/catalog/internal/logic"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func CategoryCreateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := parseJSONBody(r)
		if err != nil {
			writeCatalogError(w, r, err)
			return
		}

		l := logic.NewCategoryCreateLogic(r.Context(), svcCtx)
		resp, err := l.CategoryCreate(payload)
		if err != nil {
			writeCatalogError(w, r, err)
		} else {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusCreated, resp)
		}
	}
}
