package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

// RequestIDMiddleware tags every request with an X-Request-Id, minting one
// when the client did not send any, and attaches it to the context log
// fields so all lines for a request correlate.
type RequestIDMiddleware struct{}

func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

func (m *RequestIDMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", rid)
		ctx := logx.ContextWithFields(r.Context(), logx.Field("request_id", rid))
		next(w, r.WithContext(ctx))
	}
}
