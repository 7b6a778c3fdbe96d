package request

type SeatingTypeRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200"`
}

type SeatingTypeUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type SeatTypeRequest = SeatingTypeRequest

type SeatTypeUpdateRequest = SeatingTypeUpdateRequest
