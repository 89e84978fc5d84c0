package dto

type CreateBoatRequestDTO struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

type BoatResponseDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name" example:"Vento Sul"`
	Capacity      int    `json:"capacity" example:"12"`
	AssignedUsers int    `json:"assigned_users" example:"7"`
}
