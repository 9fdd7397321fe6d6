package types

type (
	GameRef struct {
		Id   uint   `json:"id"`
		Name string `json:"name"`
	}

	GameView struct {
		Id          uint     `json:"id"`
		Title       string   `json:"title"`
		Description *string  `json:"description"`
		Publisher   *GameRef `json:"publisher"`
		Category    *GameRef `json:"category"`
		StarRating  *float64 `json:"starRating"`
	}

	GamesListRequest struct {
		Page    string `form:"page,optional"`
		PerPage string `form:"per_page,optional"`
	}

	GamesListResponse struct {
		Data       []GameView `json:"data"`
		Page       int        `json:"page"`
		PerPage    int        `json:"per_page"`
		Total      int64      `json:"total"`
		TotalPages int        `json:"total_pages"`
	}

	GameDetailRequest struct {
		Id uint `path:"id"`
	}

	GameUpdateRequest struct {
		Id uint `path:"id"`
	}

	GameDeleteRequest struct {
		Id uint `path:"id"`
	}

	PublisherView struct {
		Id          uint    `json:"id"`
		Name        string  `json:"name"`
		Description *string `json:"description"`
		GameCount   int64   `json:"game_count"`
	}

	PublishersListRequest struct {
		Page    string `form:"page,optional"`
		PerPage string `form:"per_page,optional"`
	}

	PublishersListResponse struct {
		Data       []PublisherView `json:"data"`
		Page       int             `json:"page"`
		PerPage    int             `json:"per_page"`
		Total      int64           `json:"total"`
		TotalPages int             `json:"total_pages"`
	}

	PublisherDetailRequest struct {
		Id uint `path:"id"`
	}

	PublisherUpdateRequest struct {
		Id uint `path:"id"`
	}

	PublisherDeleteRequest struct {
		Id uint `path:"id"`
	}

	CategoryView struct {
		Id          uint    `json:"id"`
		Name        string  `json:"name"`
		Description *string `json:"description"`
		GameCount   int64   `json:"game_count"`
	}

	CategoriesListRequest struct {
		Page    string `form:"page,optional"`
		PerPage string `form:"per_page,optional"`
	}

	CategoriesListResponse struct {
		Data       []CategoryView `json:"data"`
		Page       int            `json:"page"`
		PerPage    int            `json:"per_page"`
		Total      int64          `json:"total"`
		TotalPages int            `json:"total_pages"`
	}

	CategoryDetailRequest struct {
		Id uint `path:"id"`
	}

	CategoryUpdateRequest struct {
		Id uint `path:"id"`
	}

	CategoryDeleteRequest struct {
		Id uint `path:"id"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}

	HealthzResponse struct {
		Status string `json:"status"`
	}
)
