package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"outlet-seating/internal/usecase"
	"outlet-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Outlet  *OutletHandler
	Seating *SeatingHandler
	Table   *TableHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Outlet:  NewOutletHandler(service.Outlet, log),
		Seating: NewSeatingHandler(service.Seating, log),
		Table:   NewTableHandler(service.Table, log),
	}
}

// idParam parses a numeric path parameter, answering 400 itself when it is not one.
func idParam(w http.ResponseWriter, r *http.Request, name, label string) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, label+" ID must be a positive number", nil)
		return 0, false
	}
	return id, true
}

// decodeAndValidate reads a JSON body into req and runs its validate tags.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, log *zap.Logger, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		log.Debug("Request body rejected",
			zap.String("request_id", utils.GetRequestID(r.Context())),
			zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseValidationFailed(w, validationErrors)
		return false
	}

	return true
}

// handleServiceError maps use case errors onto the response envelope
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
