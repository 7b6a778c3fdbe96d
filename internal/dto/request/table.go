package request

type TableRequest struct {
	SeatingTypeID int64  `json:"seating_type_id" validate:"required,min=1"`
	SeatTypeID    int64  `json:"seat_type_id" validate:"required,min=1"`
	Name          string `json:"name" validate:"required,min=1,max=20"`
	Floor         int    `json:"floor" validate:"gte=0"`
	Capacity      int    `json:"capacity" validate:"required,min=1,max=100"`
	MinCapacity   int    `json:"min_capacity" validate:"omitempty,min=1,ltefield=Capacity"`
}

type TableUpdateRequest struct {
	SeatingTypeID *int64  `json:"seating_type_id,omitempty" validate:"omitempty,min=1"`
	SeatTypeID    *int64  `json:"seat_type_id,omitempty" validate:"omitempty,min=1"`
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=20"`
	Floor         *int    `json:"floor,omitempty" validate:"omitempty,gte=0"`
	Capacity      *int    `json:"capacity,omitempty" validate:"omitempty,min=1,max=100"`
	MinCapacity   *int    `json:"min_capacity,omitempty" validate:"omitempty,min=1"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
