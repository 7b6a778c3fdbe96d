package response

import (
	"outlet-seating/internal/data/entity"

	"github.com/samber/lo"
)

type SeatingTypeResponse struct {
	ID          int64   `json:"id"`
	OutletID    int64   `json:"outlet_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	AuditResponse
}

type SeatTypeResponse struct {
	ID          int64   `json:"id"`
	OutletID    int64   `json:"outlet_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	AuditResponse
}

func SeatingTypeToResponse(st *entity.SeatingType) SeatingTypeResponse {
	return SeatingTypeResponse{
		ID:            st.ID,
		OutletID:      st.OutletID,
		Name:          st.Name,
		Description:   st.Description,
		AuditResponse: auditToResponse(st.Base),
	}
}

func SeatTypeToResponse(st *entity.SeatType) SeatTypeResponse {
	return SeatTypeResponse{
		ID:            st.ID,
		OutletID:      st.OutletID,
		Name:          st.Name,
		Description:   st.Description,
		AuditResponse: auditToResponse(st.Base),
	}
}

func SeatingTypesToResponse(items []*entity.SeatingType) []SeatingTypeResponse {
	return lo.Map(items, func(st *entity.SeatingType, _ int) SeatingTypeResponse {
		return SeatingTypeToResponse(st)
	})
}

func SeatTypesToResponse(items []*entity.SeatType) []SeatTypeResponse {
	return lo.Map(items, func(st *entity.SeatType, _ int) SeatTypeResponse {
		return SeatTypeToResponse(st)
	})
}
