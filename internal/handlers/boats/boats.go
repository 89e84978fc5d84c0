package boats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marinaclub/boatshare/internal/domain"
	"github.com/marinaclub/boatshare/internal/dto"
	boatservice "github.com/marinaclub/boatshare/internal/service/boatservice"
	"github.com/marinaclub/boatshare/pkg/utils"
)

type Service interface {
	CreateBoat(ctx context.Context, name string, capacity int) (*domain.Boat, error)
	GetBoat(ctx context.Context, id string) (*domain.Boat, error)
	ListBoats(ctx context.Context) ([]domain.Boat, error)
}

type BoatHandler struct {
	boatService Service
}

func New(boatService Service) *BoatHandler {
	return &BoatHandler{
		boatService: boatService,
	}
}

func toDTO(boat domain.Boat) dto.BoatResponseDTO {
	return dto.BoatResponseDTO{
		ID:            boat.ID,
		Name:          boat.Name,
		Capacity:      boat.Capacity,
		AssignedUsers: boat.AssignedUsers,
	}
}

// CreateBoat godoc
//
//	@Summary		Register a new boat
//	@Description	Add a boat with a fixed member capacity. Admin only.
//	@Tags			Boats
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateBoatRequestDTO	true	"Boat request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.BoatResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		422	{object}	utils.Response	"Capacity must be positive"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/boats [post]
func (h *BoatHandler) CreateBoat(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBoatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	boat, err := h.boatService.CreateBoat(r.Context(), req.Name, req.Capacity)
	if err != nil {
		if errors.Is(err, boatservice.ErrInvalidCapacity) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(*boat))
}

// GetBoat godoc
//
//	@Summary		Get one boat
//	@Tags			Boats
//	@Produce		json
//	@Param			id	path	string	true	"Boat ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BoatResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Boat not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/boats/{id} [get]
func (h *BoatHandler) GetBoat(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	boat, err := h.boatService.GetBoat(r.Context(), id)
	if err != nil {
		if errors.Is(err, boatservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*boat))
}

// ListBoats godoc
//
//	@Summary		List the club's boats
//	@Tags			Boats
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.BoatResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/boats [get]
func (h *BoatHandler) ListBoats(w http.ResponseWriter, r *http.Request) {
	boats, err := h.boatService.ListBoats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.BoatResponseDTO, 0, len(boats))
	for _, boat := range boats {
		response = append(response, toDTO(boat))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
