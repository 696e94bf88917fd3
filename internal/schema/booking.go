package schema

import "strings"

// BookingInput carries the client-settable fields of a booking.
type BookingInput struct {
	Email string `json:"email" validate:"required,email"`
}

func (b *BookingInput) Normalize() error {
	b.Email = strings.ToLower(strings.TrimSpace(b.Email))

	return nil
}

func (b *BookingInput) Validate() error {
	return validate.Struct(b)
}
