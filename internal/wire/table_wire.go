package wire

import (
	"outlet-seating/internal/adaptor"
	"outlet-seating/internal/dto/request"
	"outlet-seating/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTable(r chi.Router, tableHandler *adaptor.TableHandler, log *zap.Logger) {
	r.Get("/api/outlets/{id}/tables", tableHandler.GetTables)
	r.Post("/api/outlets/{id}/tables", tableHandler.CreateTable)

	// POST /api/outlets/{id}/tables/search
	// Body: {"seatingType":[1,2],"seatType":[3]}; rejected before the handler when malformed
	r.With(middleware.PayloadGuard(request.ValidateSeatingFilter, log)).
		Post("/api/outlets/{id}/tables/search", tableHandler.SearchTables)

	r.Get("/api/tables/{id}", tableHandler.GetTableByID)
	r.Put("/api/tables/{id}", tableHandler.UpdateTable)
	r.Delete("/api/tables/{id}", tableHandler.DeleteTable)
}
