package adaptor

import (
	"net/http"

	"outlet-seating/internal/dto/request"
	"outlet-seating/internal/usecase"
	"outlet-seating/pkg/utils"

	"go.uber.org/zap"
)

type OutletHandler struct {
	service usecase.OutletService
	log     *zap.Logger
}

func NewOutletHandler(service usecase.OutletService, log *zap.Logger) *OutletHandler {
	return &OutletHandler{
		service: service,
		log:     log.With(zap.String("handler", "outlet")),
	}
}

// GetOutlets handles GET /api/outlets
func (h *OutletHandler) GetOutlets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	var cityFilter *string
	if city := query.Get("city"); city != "" {
		cityFilter = &city
	}

	outlets, err := h.service.GetOutlets(r.Context(), req, cityFilter)
	if err != nil {
		handleServiceError(w, h.log, err, "get outlets")
		return
	}

	utils.ResponseSuccess(w, "success", outlets)
}

// GetOutletByID handles GET /api/outlets/{id}
func (h *OutletHandler) GetOutletByID(w http.ResponseWriter, r *http.Request) {
	outletID, ok := idParam(w, r, "id", "Outlet")
	if !ok {
		return
	}

	outlet, err := h.service.GetOutletByID(r.Context(), outletID)
	if err != nil {
		handleServiceError(w, h.log, err, "get outlet by ID")
		return
	}

	utils.ResponseSuccess(w, "success", outlet)
}

// CreateOutlet handles POST /api/outlets
func (h *OutletHandler) CreateOutlet(w http.ResponseWriter, r *http.Request) {
	var req request.OutletRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	outlet, err := h.service.CreateOutlet(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create outlet")
		return
	}

	utils.ResponseCreated(w, "success", outlet)
}

// UpdateOutlet handles PUT /api/outlets/{id}
func (h *OutletHandler) UpdateOutlet(w http.ResponseWriter, r *http.Request) {
	outletID, ok := idParam(w, r, "id", "Outlet")
	if !ok {
		return
	}

	var req request.OutletUpdateRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	outlet, err := h.service.UpdateOutlet(r.Context(), outletID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update outlet")
		return
	}

	utils.ResponseSuccess(w, "success", outlet)
}

// SetOutletStatus handles PATCH /api/outlets/{id}/status
func (h *OutletHandler) SetOutletStatus(w http.ResponseWriter, r *http.Request) {
	outletID, ok := idParam(w, r, "id", "Outlet")
	if !ok {
		return
	}

	var req request.StatusRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	outlet, err := h.service.SetOutletStatus(r.Context(), outletID, req.Status)
	if err != nil {
		handleServiceError(w, h.log, err, "set outlet status")
		return
	}

	utils.ResponseSuccess(w, "success", outlet)
}

// DeleteOutlet handles DELETE /api/outlets/{id}
func (h *OutletHandler) DeleteOutlet(w http.ResponseWriter, r *http.Request) {
	outletID, ok := idParam(w, r, "id", "Outlet")
	if !ok {
		return
	}

	if err := h.service.DeleteOutlet(r.Context(), outletID); err != nil {
		handleServiceError(w, h.log, err, "delete outlet")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
