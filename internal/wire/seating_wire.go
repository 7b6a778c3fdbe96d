package wire

import (
	"outlet-seating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeating(r chi.Router, seatingHandler *adaptor.SeatingHandler) {
	// Listing and creating are scoped to an outlet
	r.Get("/api/outlets/{id}/seating-types", seatingHandler.ListSeatingTypes)
	r.Post("/api/outlets/{id}/seating-types", seatingHandler.CreateSeatingType)
	r.Get("/api/outlets/{id}/seat-types", seatingHandler.ListSeatTypes)
	r.Post("/api/outlets/{id}/seat-types", seatingHandler.CreateSeatType)

	r.Put("/api/seating-types/{id}", seatingHandler.UpdateSeatingType)
	r.Delete("/api/seating-types/{id}", seatingHandler.DeleteSeatingType)
	r.Put("/api/seat-types/{id}", seatingHandler.UpdateSeatType)
	r.Delete("/api/seat-types/{id}", seatingHandler.DeleteSeatType)
}
