package request

type OutletRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=100"`
	Address string  `json:"address" validate:"required,min=1,max=200"`
	City    string  `json:"city" validate:"required,min=1,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,e164"`
}

type OutletUpdateRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address,omitempty" validate:"omitempty,min=1,max=200"`
	City    *string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,e164"`
}

// StatusRequest switches a record between active and inactive.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}
