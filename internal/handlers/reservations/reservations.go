package reservations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marinaclub/boatshare/internal/domain"
	"github.com/marinaclub/boatshare/internal/dto"
	"github.com/marinaclub/boatshare/internal/service/quotaservice"
	reservationservice "github.com/marinaclub/boatshare/internal/service/reservationservice"
	"github.com/marinaclub/boatshare/pkg/auth"
	"github.com/marinaclub/boatshare/pkg/utils"
	"github.com/marinaclub/boatshare/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, userID, boatID string, date time.Time, kind domain.Kind, notes string) (*domain.Reservation, error)
	Confirm(ctx context.Context, id, callerID string, isAdmin bool) (*domain.Reservation, error)
	Delete(ctx context.Context, id, callerID string, isAdmin bool) error
	Cancel(ctx context.Context, id string) error
	Queue(ctx context.Context, boatID string, date time.Time) ([]domain.Reservation, error)
	ByUser(ctx context.Context, userID string) ([]domain.Reservation, error)
	ByBoat(ctx context.Context, boatID string) ([]domain.Reservation, error)
	OccupiedYear(ctx context.Context, year int) ([]domain.Reservation, error)
	RunArchivalSweep(ctx context.Context) (int, error)
}

type ReservationHandler struct {
	reservationService Service
}

func New(reservationService Service) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
	}
}

func toDTO(res domain.Reservation) dto.ReservationResponseDTO {
	return dto.ReservationResponseDTO{
		ID:        res.ID,
		UserID:    res.UserID,
		BoatID:    res.BoatID,
		Date:      validate.FormatDay(res.Date),
		Kind:      string(res.Kind),
		Status:    string(res.Status),
		Notes:     res.Notes,
		CreatedAt: res.CreatedAt.Format(time.RFC3339),
	}
}

func toDTOList(list []domain.Reservation) []dto.ReservationResponseDTO {
	response := make([]dto.ReservationResponseDTO, 0, len(list))
	for _, res := range list {
		response = append(response, toDTO(res))
	}
	return response
}

// CreateReservation godoc
//
//	@Summary		Book a boat for a day
//	@Description	Reserve one calendar day of a boat, drawing one unit from the caller's quota for the chosen kind
//	@Tags			Reservations
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateReservationRequestDTO	true	"Reservation request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ReservationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or past date"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"No quota left for this kind"
//	@Failure		404	{object}	utils.Response	"Boat not found"
//	@Failure		422	{object}	utils.Response	"Unknown reservation kind or bad date format"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations [post]
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateReservationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := validate.ParseDay(req.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid date, expected YYYY-MM-DD")
		return
	}
	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res, err := h.reservationService.Create(r.Context(), userID, req.BoatID, date, kind, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, reservationservice.ErrDateInPast):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, reservationservice.ErrBoatNotFound), errors.Is(err, reservationservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, quotaservice.ErrInsufficientQuota):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(*res))
}

// ConfirmReservation godoc
//
//	@Summary		Confirm a reservation
//	@Description	Move an Unconfirmed reservation to Confirmed. Only the owner or an admin may confirm.
//	@Tags			Reservations
//	@Produce		json
//	@Param			id	path	string	true	"Reservation ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ReservationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Reservation belongs to another user"
//	@Failure		404	{object}	utils.Response	"Reservation not found"
//	@Failure		409	{object}	utils.Response	"Reservation is not awaiting confirmation"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations/{id}/confirm [put]
func (h *ReservationHandler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	id := chi.URLParam(r, "id")

	res, err := h.reservationService.Confirm(r.Context(), id, userID, auth.IsAdmin(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, reservationservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, reservationservice.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, reservationservice.ErrNotUnconfirmed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*res))
}

// DeleteReservation godoc
//
//	@Summary		Delete a reservation
//	@Description	Remove a Pending or Unconfirmed reservation, restoring its quota and promoting the next reservation in the queue
//	@Tags			Reservations
//	@Produce		json
//	@Param			id	path	string	true	"Reservation ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Reservation deleted"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Reservation belongs to another user"
//	@Failure		404	{object}	utils.Response	"Reservation not found"
//	@Failure		409	{object}	utils.Response	"Confirmed or legacy reservations cannot be deleted"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	id := chi.URLParam(r, "id")

	err := h.reservationService.Delete(r.Context(), id, userID, auth.IsAdmin(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, reservationservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, reservationservice.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, reservationservice.ErrCannotDeleteConfirmed),
			errors.Is(err, reservationservice.ErrCannotDeleteLegacy):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Reservation deleted"})
}

// CancelReservation godoc
//
//	@Summary		Cancel a reservation
//	@Description	Park a reservation in the terminal Cancelled status, restoring its quota once. Admin only.
//	@Tags			Reservations
//	@Produce		json
//	@Param			id	path	string	true	"Reservation ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Reservation cancelled"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Reservation not found"
//	@Failure		409	{object}	utils.Response	"Reservation is already cancelled or archived"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations/{id}/cancel [put]
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.reservationService.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservationservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, reservationservice.ErrAlreadyFinalized):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Reservation cancelled"})
}

// GetUserReservations godoc
//
//	@Summary		List a member's reservations
//	@Tags			Reservations
//	@Produce		json
//	@Param			userId	path	string	true	"User ID"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ReservationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations/user/{userId} [get]
func (h *ReservationHandler) GetUserReservations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	list, err := h.reservationService.ByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOList(list))
}

// GetBoatReservations godoc
//
//	@Summary		List a boat's reservations
//	@Tags			Reservations
//	@Produce		json
//	@Param			boatId	path	string	true	"Boat ID"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ReservationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations/boat/{boatId} [get]
func (h *ReservationHandler) GetBoatReservations(w http.ResponseWriter, r *http.Request) {
	boatID := chi.URLParam(r, "boatId")

	list, err := h.reservationService.ByBoat(r.Context(), boatID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOList(list))
}

// GetQueue godoc
//
//	@Summary		List the reservation queue for a boat and day
//	@Description	Live reservations for the boat and day in queue order, earliest created first
//	@Tags			Reservations
//	@Produce		json
//	@Param			boatId	path	string	true	"Boat ID"
//	@Param			date	path	string	true	"Day in YYYY-MM-DD"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ReservationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Bad date format"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations/boat/{boatId}/date/{date} [get]
func (h *ReservationHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	boatID := chi.URLParam(r, "boatId")
	date, err := validate.ParseDay(chi.URLParam(r, "date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid date, expected YYYY-MM-DD")
		return
	}

	list, err := h.reservationService.Queue(r.Context(), boatID, date)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOList(list))
}

// GetOccupiedYear godoc
//
//	@Summary		List every reservation falling in a calendar year
//	@Tags			Reservations
//	@Produce		json
//	@Param			year	path	int	true	"Calendar year"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ReservationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Bad year"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations/occupied/{year} [get]
func (h *ReservationHandler) GetOccupiedYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid year")
		return
	}

	list, err := h.reservationService.OccupiedYear(r.Context(), year)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOList(list))
}

// RunSweep godoc
//
//	@Summary		Run the archival sweep now
//	@Description	Archive elapsed reservations and promote newly eligible ones, returning the number of transitions applied. Admin only.
//	@Tags			Reservations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SweepResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations/sweep [post]
func (h *ReservationHandler) RunSweep(w http.ResponseWriter, r *http.Request) {
	transitions, err := h.reservationService.RunArchivalSweep(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SweepResponseDTO{Transitions: transitions})
}
