package response

import (
	"time"

	"outlet-seating/internal/data/entity"
)

// AuditResponse flattens the audit and lifecycle columns every record carries.
type AuditResponse struct {
	IsActive  bool       `json:"is_active"`
	Status    string     `json:"status"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	CreatedBy *string    `json:"created_by,omitempty"`
	UpdatedBy *string    `json:"updated_by,omitempty"`
}

type OutletResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Phone   *string `json:"phone,omitempty"`
	AuditResponse
}

type OutletDetailResponse struct {
	OutletResponse
	SeatingTypes []SeatingTypeResponse `json:"seating_types"`
	SeatTypes    []SeatTypeResponse    `json:"seat_types"`
	TableCount   int64                 `json:"table_count"`
}

func auditToResponse(base entity.Base) AuditResponse {
	return AuditResponse{
		IsActive:  base.IsActive(),
		Status:    string(base.Status()),
		DeletedAt: base.DeletedAt(),
		CreatedAt: base.CreatedAt,
		UpdatedAt: base.UpdatedAt,
		CreatedBy: base.CreatedBy,
		UpdatedBy: base.UpdatedBy,
	}
}

func OutletToResponse(outlet *entity.Outlet) OutletResponse {
	return OutletResponse{
		ID:            outlet.ID,
		Name:          outlet.Name,
		Address:       outlet.Address,
		City:          outlet.City,
		Phone:         outlet.Phone,
		AuditResponse: auditToResponse(outlet.Base),
	}
}
