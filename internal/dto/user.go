package dto

type UserResponseDTO struct {
	ID                string `json:"id"`
	Email             string `json:"email" example:"member@club.org"`
	Name              string `json:"name" example:"Ana Souza"`
	Role              string `json:"role" example:"Member"`
	BoatID            string `json:"boat_id"`
	StandardQuota     int    `json:"standard_quota" example:"2"`
	SubstitutionQuota int    `json:"substitution_quota" example:"2"`
	ContingencyQuota  int    `json:"contingency_quota" example:"1"`
}
