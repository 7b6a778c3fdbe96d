package response

import (
	"outlet-seating/internal/data/entity"

	"github.com/samber/lo"
)

type TableResponse struct {
	ID            int64  `json:"id"`
	OutletID      int64  `json:"outlet_id"`
	SeatingTypeID int64  `json:"seating_type_id"`
	SeatTypeID    int64  `json:"seat_type_id"`
	Name          string `json:"name"`
	Floor         int    `json:"floor"`
	Capacity      int    `json:"capacity"`
	MinCapacity   int    `json:"min_capacity"`
	AuditResponse
}

// TableSearchResponse echoes the effective filter next to the matching tables.
type TableSearchResponse struct {
	OutletID       int64           `json:"outlet_id"`
	SeatingTypeIDs []int64         `json:"seating_type_ids"`
	SeatTypeIDs    []int64         `json:"seat_type_ids"`
	Total          int             `json:"total"`
	Tables         []TableResponse `json:"tables"`
}

func TableToResponse(table *entity.Table) TableResponse {
	return TableResponse{
		ID:            table.ID,
		OutletID:      table.OutletID,
		SeatingTypeID: table.SeatingTypeID,
		SeatTypeID:    table.SeatTypeID,
		Name:          table.Name,
		Floor:         table.Floor,
		Capacity:      table.Capacity,
		MinCapacity:   table.MinCapacity,
		AuditResponse: auditToResponse(table.Base),
	}
}

func TablesToResponse(tables []*entity.Table) []TableResponse {
	return lo.Map(tables, func(t *entity.Table, _ int) TableResponse {
		return TableToResponse(t)
	})
}
