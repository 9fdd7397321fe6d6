package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zeromicro/go-zero/rest/pathvar"

	"github.com/ludotrove/catalog/internal/config"
	"github.com/ludotrove/catalog/internal/svc"
	"github.com/ludotrove/catalog/internal/types"
)

func newTestServiceContext(t *testing.T) *svc.ServiceContext {
	t.Helper()
	return svc.NewServiceContext(config.Config{
		Database: config.DatabaseConf{DataSource: ":memory:"},
	})
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withID plants the :id path variable the router would have extracted.
func withID(req *http.Request, id string) *http.Request {
	return pathvar.WithVars(req, map[string]string{"id": id})
}

func perform(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func wantError(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	var e types.ErrorResponse
	decodeBody(t, rec, &e)
	if e.Error != msg {
		t.Fatalf("error = %q, want %q", e.Error, msg)
	}
}

func createPublisher(t *testing.T, svcCtx *svc.ServiceContext, name string) types.PublisherView {
	t.Helper()
	rec := perform(PublisherCreateHandler(svcCtx),
		jsonRequest(http.MethodPost, "/api/publishers", fmt.Sprintf(`{"name":%q}`, name)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create publisher %s: %d %s", name, rec.Code, rec.Body.String())
	}
	var v types.PublisherView
	decodeBody(t, rec, &v)
	return v
}

func createCategory(t *testing.T, svcCtx *svc.ServiceContext, name string) types.CategoryView {
	t.Helper()
	rec := perform(CategoryCreateHandler(svcCtx),
		jsonRequest(http.MethodPost, "/api/categories", fmt.Sprintf(`{"name":%q}`, name)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category %s: %d %s", name, rec.Code, rec.Body.String())
	}
	var v types.CategoryView
	decodeBody(t, rec, &v)
	return v
}

func createGameHTTP(t *testing.T, svcCtx *svc.ServiceContext, title string, publisherID, categoryID uint) types.GameView {
	t.Helper()
	body := fmt.Sprintf(
		`{"title":%q,"description":"A long enough description for the shelf","publisher_id":%d,"category_id":%d,"star_rating":4.5}`,
		title, publisherID, categoryID)
	rec := perform(GameCreateHandler(svcCtx), jsonRequest(http.MethodPost, "/api/games", body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create game %s: %d %s", title, rec.Code, rec.Body.String())
	}
	var v types.GameView
	decodeBody(t, rec, &v)
	return v
}

func TestGamesHTTP_EmptyList(t *testing.T) {
	svcCtx := newTestServiceContext(t)

	rec := perform(GamesListHandler(svcCtx), httptest.NewRequest(http.MethodGet, "/api/games", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	// the empty page must carry [], not null
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
	var resp types.GamesListResponse
	decodeBody(t, rec, &resp)
	if resp.Page != 1 || resp.PerPage != 20 || resp.Total != 0 || resp.TotalPages != 0 {
		t.Fatalf("page meta = %+v", resp)
	}
}

func TestGamesHTTP_CreateAndFetch(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	p := createPublisher(t, svcCtx, "DevGames Inc")
	c := createCategory(t, svcCtx, "Strategy")

	// 1) create
	body := fmt.Sprintf(
		`{"title":"Pipeline Panic","description":"Build your DevOps pipeline before chaos ensues","publisher_id":%d,"category_id":%d,"star_rating":4.5}`,
		p.Id, c.Id)
	rec := perform(GameCreateHandler(svcCtx), jsonRequest(http.MethodPost, "/api/games", body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"starRating":4.5`) {
		t.Fatalf("star rating key: %s", rec.Body.String())
	}
	var created types.GameView
	decodeBody(t, rec, &created)
	if created.Id == 0 || created.Title != "Pipeline Panic" {
		t.Fatalf("created = %+v", created)
	}
	if created.Publisher == nil || created.Publisher.Name != "DevGames Inc" {
		t.Fatalf("publisher = %+v", created.Publisher)
	}
	if created.Category == nil || created.Category.Name != "Strategy" {
		t.Fatalf("category = %+v", created.Category)
	}

	// 2) fetch it back by id
	rec = perform(GameDetailHandler(svcCtx),
		withID(httptest.NewRequest(http.MethodGet, "/api/games/1", nil), fmt.Sprint(created.Id)))
	if rec.Code != http.StatusOK {
		t.Fatalf("detail status = %d: %s", rec.Code, rec.Body.String())
	}
	var fetched types.GameView
	decodeBody(t, rec, &fetched)
	if fetched.Id != created.Id || fetched.Title != created.Title {
		t.Fatalf("fetched = %+v", fetched)
	}
	if fetched.StarRating == nil || *fetched.StarRating != 4.5 {
		t.Fatalf("star rating = %v", fetched.StarRating)
	}

	// 3) it shows up in the list envelope
	rec = perform(GamesListHandler(svcCtx), httptest.NewRequest(http.MethodGet, "/api/games", nil))
	var listed types.GamesListResponse
	decodeBody(t, rec, &listed)
	if listed.Total != 1 || len(listed.Data) != 1 {
		t.Fatalf("list = %+v", listed)
	}
}

func TestGamesHTTP_BodyContract(t *testing.T) {
	svcCtx := newTestServiceContext(t)

	cases := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{"no content type", "", `{"title":"ok"}`, "Content-Type must be application/json"},
		{"wrong content type", "text/plain", `{"title":"ok"}`, "Content-Type must be application/json"},
		{"malformed", "application/json", `{invalid`, "Invalid JSON format"},
		{"empty body", "application/json", ``, "Invalid JSON format"},
		{"array body", "application/json", `[1,2]`, "Invalid JSON format"},
		{"scalar body", "application/json", `"just a string"`, "Invalid JSON format"},
		{"empty object", "application/json", `{}`, "Request body cannot be empty"},
		{"null body", "application/json", `null`, "Request body cannot be empty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/games", strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			wantError(t, perform(GameCreateHandler(svcCtx), req), http.StatusBadRequest, tc.want)
		})
	}
}

func TestGamesHTTP_MissingFields(t *testing.T) {
	svcCtx := newTestServiceContext(t)

	rec := perform(GameCreateHandler(svcCtx),
		jsonRequest(http.MethodPost, "/api/games", `{"title":"Pipeline Panic"}`))
	wantError(t, rec, http.StatusBadRequest,
		"Missing required fields: description, category_id, publisher_id")
}

// Field lengths are measured in characters, so a one-character multibyte
// title is rejected even though it is two bytes long.
func TestGamesHTTP_MultibyteTitleLength(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	p := createPublisher(t, svcCtx, "DevGames Inc")
	c := createCategory(t, svcCtx, "Strategy")

	body := fmt.Sprintf(
		`{"title":"é","description":"A long enough description for the shelf","publisher_id":%d,"category_id":%d}`,
		p.Id, c.Id)
	rec := perform(GameCreateHandler(svcCtx), jsonRequest(http.MethodPost, "/api/games", body))
	wantError(t, rec, http.StatusBadRequest, "Game title must be at least 2 characters")
}

func TestGamesHTTP_UnknownReferences(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	p := createPublisher(t, svcCtx, "DevGames Inc")

	body := `{"title":"Orphan","description":"A game with no publisher","publisher_id":999,"category_id":1}`
	rec := perform(GameCreateHandler(svcCtx), jsonRequest(http.MethodPost, "/api/games", body))
	wantError(t, rec, http.StatusNotFound, "Publisher not found")

	body = fmt.Sprintf(`{"title":"Orphan","description":"A game with no category","publisher_id":%d,"category_id":999}`, p.Id)
	rec = perform(GameCreateHandler(svcCtx), jsonRequest(http.MethodPost, "/api/games", body))
	wantError(t, rec, http.StatusNotFound, "Category not found")
}

func TestGamesHTTP_DetailNotFound(t *testing.T) {
	svcCtx := newTestServiceContext(t)

	rec := perform(GameDetailHandler(svcCtx),
		withID(httptest.NewRequest(http.MethodGet, "/api/games/9999", nil), "9999"))
	wantError(t, rec, http.StatusNotFound, "Game not found")

	// a non-numeric id never names a game
	rec = perform(GameDetailHandler(svcCtx),
		withID(httptest.NewRequest(http.MethodGet, "/api/games/abc", nil), "abc"))
	wantError(t, rec, http.StatusNotFound, "Game not found")
}

func TestGamesHTTP_Update(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	p := createPublisher(t, svcCtx, "DevGames Inc")
	c := createCategory(t, svcCtx, "Strategy")
	g := createGameHTTP(t, svcCtx, "Pipeline Panic", p.Id, c.Id)
	id := fmt.Sprint(g.Id)

	// 1) validation still applies to updated fields
	rec := perform(GameUpdateHandler(svcCtx),
		withID(jsonRequest(http.MethodPut, "/api/games/"+id, `{"description":"Short"}`), id))
	wantError(t, rec, http.StatusBadRequest, "Description must be at least 10 characters")

	// 2) null description slips past validation and hits the store constraint
	rec = perform(GameUpdateHandler(svcCtx),
		withID(jsonRequest(http.MethodPut, "/api/games/"+id, `{"description":null}`), id))
	wantError(t, rec, http.StatusBadRequest, "Database constraint violation")

	// 3) an unknown id answers before the body is judged
	rec = perform(GameUpdateHandler(svcCtx),
		withID(jsonRequest(http.MethodPut, "/api/games/9999", `{invalid`), "9999"))
	wantError(t, rec, http.StatusNotFound, "Game not found")

	// 4) with a known id the body error surfaces
	rec = perform(GameUpdateHandler(svcCtx),
		withID(jsonRequest(http.MethodPut, "/api/games/"+id, `{invalid`), id))
	wantError(t, rec, http.StatusBadRequest, "Invalid JSON format")

	badCT := httptest.NewRequest(http.MethodPut, "/api/games/"+id, strings.NewReader(`{}`))
	badCT.Header.Set("Content-Type", "text/plain")
	rec = perform(GameUpdateHandler(svcCtx), withID(badCT, id))
	wantError(t, rec, http.StatusBadRequest, "Content-Type must be application/json")

	// 5) reassigning the publisher takes effect in the response
	other := createPublisher(t, svcCtx, "Scrum Masters")
	rec = perform(GameUpdateHandler(svcCtx),
		withID(jsonRequest(http.MethodPut, "/api/games/"+id, fmt.Sprintf(`{"publisher_id":%d}`, other.Id)), id))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var updated types.GameView
	decodeBody(t, rec, &updated)
	if updated.Publisher == nil || updated.Publisher.Name != "Scrum Masters" {
		t.Fatalf("publisher = %+v", updated.Publisher)
	}
	if updated.Title != "Pipeline Panic" {
		t.Fatalf("title changed: %q", updated.Title)
	}
}

func TestGamesHTTP_Delete(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	p := createPublisher(t, svcCtx, "DevGames Inc")
	c := createCategory(t, svcCtx, "Strategy")
	g := createGameHTTP(t, svcCtx, "Pipeline Panic", p.Id, c.Id)
	id := fmt.Sprint(g.Id)

	rec := perform(GameDeleteHandler(svcCtx),
		withID(httptest.NewRequest(http.MethodDelete, "/api/games/"+id, nil), id))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var msg types.MessageResponse
	decodeBody(t, rec, &msg)
	if msg.Message != "Game deleted successfully" {
		t.Fatalf("message = %q", msg.Message)
	}

	rec = perform(GameDetailHandler(svcCtx),
		withID(httptest.NewRequest(http.MethodGet, "/api/games/"+id, nil), id))
	wantError(t, rec, http.StatusNotFound, "Game not found")

	rec = perform(GameDeleteHandler(svcCtx),
		withID(httptest.NewRequest(http.MethodDelete, "/api/games/"+id, nil), id))
	wantError(t, rec, http.StatusNotFound, "Game not found")
}

func TestGamesHTTP_Pagination(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	p := createPublisher(t, svcCtx, "DevGames Inc")
	c := createCategory(t, svcCtx, "Strategy")
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		createGameHTTP(t, svcCtx, title, p.Id, c.Id)
	}

	rec := perform(GamesListHandler(svcCtx),
		httptest.NewRequest(http.MethodGet, "/api/games?page=2&per_page=1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp types.GamesListResponse
	decodeBody(t, rec, &resp)
	if resp.Page != 2 || resp.PerPage != 1 || resp.Total != 3 || resp.TotalPages != 3 {
		t.Fatalf("page meta = %+v", resp)
	}
	if len(resp.Data) != 1 || resp.Data[0].Title != "Beta" {
		t.Fatalf("data = %+v", resp.Data)
	}

	// junk paging values fall back to the defaults instead of failing
	rec = perform(GamesListHandler(svcCtx),
		httptest.NewRequest(http.MethodGet, "/api/games?page=abc&per_page=0", nil))
	decodeBody(t, rec, &resp)
	if resp.Page != 1 || resp.PerPage != 20 || len(resp.Data) != 3 {
		t.Fatalf("fallback meta = %+v", resp)
	}
}

func TestHealthzHTTP(t *testing.T) {
	svcCtx := newTestServiceContext(t)

	rec := perform(HealthzHandler(svcCtx), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp types.HealthzResponse
	decodeBody(t, rec, &resp)
	if resp.Status != "ok" {
		t.Fatalf("status = %q", resp.Status)
	}
}
