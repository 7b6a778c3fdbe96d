package adaptor

import (
	"net/http"

	"outlet-seating/internal/dto/request"
	"outlet-seating/internal/usecase"
	"outlet-seating/pkg/utils"

	"go.uber.org/zap"
)

// SeatingHandler serves both seating types and seat types of an outlet.
type SeatingHandler struct {
	service usecase.SeatingService
	log     *zap.Logger
}

func NewSeatingHandler(service usecase.SeatingService, log *zap.Logger) *SeatingHandler {
	return &SeatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "seating")),
	}
}

// ==================== SEATING TYPES ====================

// ListSeatingTypes handles GET /api/outlets/{id}/seating-types
func (h *SeatingHandler) ListSeatingTypes(w http.ResponseWriter, r *http.Request) {
	outletID, ok := idParam(w, r, "id", "Outlet")
	if !ok {
		return
	}

	seatingTypes, err := h.service.ListSeatingTypes(r.Context(), outletID)
	if err != nil {
		handleServiceError(w, h.log, err, "list seating types")
		return
	}

	utils.ResponseSuccess(w, "success", seatingTypes)
}

// CreateSeatingType handles POST /api/outlets/{id}/seating-types
func (h *SeatingHandler) CreateSeatingType(w http.ResponseWriter, r *http.Request) {
	outletID, ok := idParam(w, r, "id", "Outlet")
	if !ok {
		return
	}

	var req request.SeatingTypeRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	seatingType, err := h.service.CreateSeatingType(r.Context(), outletID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create seating type")
		return
	}

	utils.ResponseCreated(w, "success", seatingType)
}

// UpdateSeatingType handles PUT /api/seating-types/{id}
func (h *SeatingHandler) UpdateSeatingType(w http.ResponseWriter, r *http.Request) {
	seatingTypeID, ok := idParam(w, r, "id", "Seating type")
	if !ok {
		return
	}

	var req request.SeatingTypeUpdateRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	seatingType, err := h.service.UpdateSeatingType(r.Context(), seatingTypeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update seating type")
		return
	}

	utils.ResponseSuccess(w, "success", seatingType)
}

// DeleteSeatingType handles DELETE /api/seating-types/{id}
func (h *SeatingHandler) DeleteSeatingType(w http.ResponseWriter, r *http.Request) {
	seatingTypeID, ok := idParam(w, r, "id", "Seating type")
	if !ok {
		return
	}

	if err := h.service.DeleteSeatingType(r.Context(), seatingTypeID); err != nil {
		handleServiceError(w, h.log, err, "delete seating type")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== SEAT TYPES ====================

// ListSeatTypes handles GET /api/outlets/{id}/seat-types
func (h *SeatingHandler) ListSeatTypes(w http.ResponseWriter, r *http.Request) {
	outletID, ok := idParam(w, r, "id", "Outlet")
	if !ok {
		return
	}

	seatTypes, err := h.service.ListSeatTypes(r.Context(), outletID)
	if err != nil {
		handleServiceError(w, h.log, err, "list seat types")
		return
	}

	utils.ResponseSuccess(w, "success", seatTypes)
}

// CreateSeatType handles POST /api/outlets/{id}/seat-types
func (h *SeatingHandler) CreateSeatType(w http.ResponseWriter, r *http.Request) {
	outletID, ok := idParam(w, r, "id", "Outlet")
	if !ok {
		return
	}

	var req request.SeatTypeRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	seatType, err := h.service.CreateSeatType(r.Context(), outletID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create seat type")
		return
	}

	utils.ResponseCreated(w, "success", seatType)
}

// UpdateSeatType handles PUT /api/seat-types/{id}
func (h *SeatingHandler) UpdateSeatType(w http.ResponseWriter, r *http.Request) {
	seatTypeID, ok := idParam(w, r, "id", "Seat type")
	if !ok {
		return
	}

	var req request.SeatTypeUpdateRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	seatType, err := h.service.UpdateSeatType(r.Context(), seatTypeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update seat type")
		return
	}

	utils.ResponseSuccess(w, "success", seatType)
}

// DeleteSeatType handles DELETE /api/seat-types/{id}
func (h *SeatingHandler) DeleteSeatType(w http.ResponseWriter, r *http.Request) {
	seatTypeID, ok := idParam(w, r, "id", "Seat type")
	if !ok {
		return
	}

	if err := h.service.DeleteSeatType(r.Context(), seatTypeID); err != nil {
		handleServiceError(w, h.log, err, "delete seat type")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
