package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marinaclub/boatshare/internal/domain"
	"github.com/marinaclub/boatshare/internal/dto"
	userservice "github.com/marinaclub/boatshare/internal/service/userservice"
	"github.com/marinaclub/boatshare/pkg/utils"
)

type Service interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func toDTO(user domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:                user.ID,
		Email:             user.Email,
		Name:              user.Name,
		Role:              user.Role,
		BoatID:            user.BoatID,
		StandardQuota:     user.StandardQuota,
		SubstitutionQuota: user.SubstitutionQuota,
		ContingencyQuota:  user.ContingencyQuota,
	}
}

// GetUser godoc
//
//	@Summary		Get one member with their remaining quotas
//	@Tags			Users
//	@Produce		json
//	@Param			id	path	string	true	"User ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, userservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*user))
}

// ListUsers godoc
//
//	@Summary		List the club's members
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UserResponseDTO, 0, len(users))
	for _, user := range users {
		response = append(response, toDTO(user))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
