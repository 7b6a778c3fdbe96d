package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"outlet-seating/internal/dto/request"
	"outlet-seating/pkg/utils"

	"go.uber.org/zap"
)

const maxPayloadBytes = 1 << 20

// PayloadGuard decodes the JSON body into an untyped payload and runs guard
// over it before the handler. Rejected payloads stop here with 400; accepted
// ones are handed to the handler through the context, unchanged.
func PayloadGuard(guard request.PayloadGuard, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
			dec.UseNumber()

			var payload any
			if err := dec.Decode(&payload); err != nil {
				utils.ResponseBadRequest(w, "Invalid request body", nil)
				return
			}

			accepted, err := guard(payload)
			if err != nil {
				var verr *request.ValidationError
				if errors.As(err, &verr) {
					logger.Warn("Payload rejected",
						zap.String("request_id", utils.GetRequestID(r.Context())),
						zap.String("path", r.URL.Path),
						zap.Error(err),
					)
					utils.ResponseValidationFailed(w, verr.Messages())
					return
				}

				logger.Error("Payload guard failed",
					zap.String("request_id", utils.GetRequestID(r.Context())),
					zap.Error(err),
				)
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetPayload(r.Context(), accepted)))
		})
	}
}

// PayloadFromContext returns the payload accepted by PayloadGuard.
func PayloadFromContext(r *http.Request) (any, bool) {
	return utils.GetPayload(r.Context())
}
