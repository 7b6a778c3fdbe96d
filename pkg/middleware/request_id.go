package middleware

import (
	"net/http"

	"outlet-seating/pkg/utils"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderActor     = "X-Actor"
)

// RequestID tags every request with an id, reusing the caller's when it is a
// UUID, and carries the gateway supplied actor into the context.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(HeaderRequestID)
			if !utils.ValidRequestID(requestID) {
				requestID = utils.GenerateRequestID()
			}
			w.Header().Set(HeaderRequestID, requestID)

			ctx := utils.SetRequestID(r.Context(), requestID)
			if actor := r.Header.Get(HeaderActor); actor != "" {
				ctx = utils.SetActor(ctx, actor)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
