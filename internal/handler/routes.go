package handler

import (
	"net/http"

	"github.com/ludotrove/catalog/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/games",
				Handler: GamesListHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/games/:id",
				Handler: GameDetailHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/games",
				Handler: GameCreateHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/api/games/:id",
				Handler: GameUpdateHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/games/:id",
				Handler: GameDeleteHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/publishers",
				Handler: PublishersListHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/publishers/:id",
				Handler: PublisherDetailHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/publishers",
				Handler: PublisherCreateHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/api/publishers/:id",
				Handler: PublisherUpdateHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/publishers/:id",
				Handler: PublisherDeleteHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/categories",
				Handler: CategoriesListHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/categories/:id",
				Handler: CategoryDetailHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/categories",
				Handler: CategoryCreateHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/api/categories/:id",
				Handler: CategoryUpdateHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/categories/:id",
				Handler: CategoryDeleteHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/healthz",
				Handler: HealthzHandler(serverCtx),
			},
		},
	)
}
