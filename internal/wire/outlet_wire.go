package wire

import (
	"outlet-seating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOutlet(r chi.Router, outletHandler *adaptor.OutletHandler) {
	r.Get("/api/outlets", outletHandler.GetOutlets)
	r.Post("/api/outlets", outletHandler.CreateOutlet)

	r.Get("/api/outlets/{id}", outletHandler.GetOutletByID)
	r.Put("/api/outlets/{id}", outletHandler.UpdateOutlet)
	r.Delete("/api/outlets/{id}", outletHandler.DeleteOutlet)

	// PATCH /api/outlets/{id}/status - body {"status":"active"|"inactive"}
	r.Patch("/api/outlets/{id}/status", outletHandler.SetOutletStatus)
}
