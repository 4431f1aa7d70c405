package request

type CreateBookingRequest struct {
	SevakarthaName string `json:"sevakartha_name" validate:"required"`
	Department     string `json:"department" validate:"required"`
	SevaType       string `json:"seva_type" validate:"required"`
	// Validated as required only; the date shape is checked by the service
	// so a malformed value reports as an invalid date, not a missing field.
	PoojaDate string `json:"pooja_date" validate:"required"`
}
