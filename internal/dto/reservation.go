package dto

type CreateReservationRequestDTO struct {
	BoatID string `json:"boat_id" validate:"required"`
	Date   string `json:"date" validate:"required" example:"2026-07-15"`
	Kind   string `json:"kind" validate:"required" example:"Standard"`
	Notes  string `json:"notes,omitempty"`
}

type ReservationResponseDTO struct {
	ID        string `json:"id" example:"7b4a1f0e-9c2d-4e8a-b1f3-0d6c5a8e2f91"`
	UserID    string `json:"user_id"`
	BoatID    string `json:"boat_id"`
	Date      string `json:"date" example:"2026-07-15"`
	Kind      string `json:"kind" example:"Standard"`
	Status    string `json:"status" example:"Unconfirmed"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at" example:"2026-07-01T12:30:00Z"`
}

type SweepResponseDTO struct {
	Transitions int `json:"transitions" example:"3"`
}
