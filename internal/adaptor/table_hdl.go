package adaptor

import (
	"errors"
	"net/http"

	"outlet-seating/internal/dto/request"
	"outlet-seating/internal/usecase"
	"outlet-seating/pkg/middleware"
	"outlet-seating/pkg/utils"

	"go.uber.org/zap"
)

type TableHandler struct {
	service usecase.TableService
	log     *zap.Logger
}

func NewTableHandler(service usecase.TableService, log *zap.Logger) *TableHandler {
	return &TableHandler{
		service: service,
		log:     log.With(zap.String("handler", "table")),
	}
}

// GetTables handles GET /api/outlets/{id}/tables
func (h *TableHandler) GetTables(w http.ResponseWriter, r *http.Request) {
	outletID, ok := idParam(w, r, "id", "Outlet")
	if !ok {
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	tables, err := h.service.GetTables(r.Context(), outletID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get tables")
		return
	}

	utils.ResponseSuccess(w, "success", tables)
}

// GetTableByID handles GET /api/tables/{id}
func (h *TableHandler) GetTableByID(w http.ResponseWriter, r *http.Request) {
	tableID, ok := idParam(w, r, "id", "Table")
	if !ok {
		return
	}

	table, err := h.service.GetTableByID(r.Context(), tableID)
	if err != nil {
		handleServiceError(w, h.log, err, "get table by ID")
		return
	}

	utils.ResponseSuccess(w, "success", table)
}

// SearchTables handles POST /api/outlets/{id}/tables/search.
// The body has already passed middleware.PayloadGuard.
func (h *TableHandler) SearchTables(w http.ResponseWriter, r *http.Request) {
	outletID, ok := idParam(w, r, "id", "Outlet")
	if !ok {
		return
	}

	payload, ok := middleware.PayloadFromContext(r)
	if !ok {
		h.log.Error("Search reached handler without a checked payload")
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	filter, err := request.SeatingFilterFromPayload(payload)
	if err != nil {
		var verr *request.ValidationError
		if errors.As(err, &verr) {
			utils.ResponseValidationFailed(w, verr.Messages())
			return
		}
		handleServiceError(w, h.log, err, "search tables")
		return
	}

	result, err := h.service.SearchTables(r.Context(), outletID, filter)
	if err != nil {
		handleServiceError(w, h.log, err, "search tables")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// CreateTable handles POST /api/outlets/{id}/tables
func (h *TableHandler) CreateTable(w http.ResponseWriter, r *http.Request) {
	outletID, ok := idParam(w, r, "id", "Outlet")
	if !ok {
		return
	}

	var req request.TableRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	table, err := h.service.CreateTable(r.Context(), outletID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create table")
		return
	}

	utils.ResponseCreated(w, "success", table)
}

// UpdateTable handles PUT /api/tables/{id}
func (h *TableHandler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	tableID, ok := idParam(w, r, "id", "Table")
	if !ok {
		return
	}

	var req request.TableUpdateRequest
	if !decodeAndValidate(w, r, h.log, &req) {
		return
	}

	table, err := h.service.UpdateTable(r.Context(), tableID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update table")
		return
	}

	utils.ResponseSuccess(w, "success", table)
}

// DeleteTable handles DELETE /api/tables/{id}
func (h *TableHandler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	tableID, ok := idParam(w, r, "id", "Table")
	if !ok {
		return
	}

	if err := h.service.DeleteTable(r.Context(), tableID); err != nil {
		handleServiceError(w, h.log, err, "delete table")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
