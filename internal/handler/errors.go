package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/ludotrove/catalog/internal/service/catalog"
	"github.com/ludotrove/catalog/internal/types"
	"github.com/ludotrove/catalog/internal/validation"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

var (
	errNotJSON   = errors.New("content type must be application/json")
	errBadJSON   = errors.New("invalid json format")
	errEmptyBody = errors.New("request body cannot be empty")
)

// parseJSONBody decodes the request body into a payload map. The three
// failure modes are reported in a fixed order: wrong content type, then
// malformed JSON, then an empty document (including null and {}).
func parseJSONBody(r *http.Request) (catalog.Payload, error) {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || (ct != "application/json" && !strings.HasSuffix(ct, "+json")) {
		return nil, errNotJSON
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errBadJSON
	}
	var payload catalog.Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errBadJSON
	}
	if len(payload) == 0 {
		return nil, errEmptyBody
	}
	return payload, nil
}

// writeCatalogError maps domain errors onto the wire contract. Anything
// unrecognized is logged and answered as a plain internal error so store
// details never leak to clients.
func writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *validation.Error
	var mf *catalog.MissingFieldsError
	switch {
	case errors.Is(err, errNotJSON):
		writeError(w, r, http.StatusBadRequest, "Content-Type must be application/json")
	case errors.Is(err, errBadJSON):
		writeError(w, r, http.StatusBadRequest, "Invalid JSON format")
	case errors.Is(err, errEmptyBody):
		writeError(w, r, http.StatusBadRequest, "Request body cannot be empty")
	case errors.As(err, &mf):
		writeError(w, r, http.StatusBadRequest, "Missing required fields: "+strings.Join(mf.Fields, ", "))
	case errors.As(err, &ve):
		writeError(w, r, http.StatusBadRequest, ve.Message)
	case errors.Is(err, catalog.ErrGameNotFound):
		writeError(w, r, http.StatusNotFound, "Game not found")
	case errors.Is(err, catalog.ErrPublisherNotFound):
		writeError(w, r, http.StatusNotFound, "Publisher not found")
	case errors.Is(err, catalog.ErrCategoryNotFound):
		writeError(w, r, http.StatusNotFound, "Category not found")
	case errors.Is(err, catalog.ErrPublisherInUse):
		writeError(w, r, http.StatusBadRequest, "Publisher is referenced by existing games")
	case errors.Is(err, catalog.ErrCategoryInUse):
		writeError(w, r, http.StatusBadRequest, "Category is referenced by existing games")
	case errors.Is(err, catalog.ErrConstraintViolation):
		writeError(w, r, http.StatusBadRequest, "Database constraint violation")
	default:
		logx.WithContext(r.Context()).Errorf("request failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	httpx.WriteJsonCtx(r.Context(), w, status, types.ErrorResponse{Error: msg})
}
