package handlers

import (
	"net/http"

	_ "github.com/marinaclub/boatshare/docs"
	authhandlers "github.com/marinaclub/boatshare/internal/handlers/auth"
	boathandlers "github.com/marinaclub/boatshare/internal/handlers/boats"
	reservationhandlers "github.com/marinaclub/boatshare/internal/handlers/reservations"
	userhandlers "github.com/marinaclub/boatshare/internal/handlers/users"
	"github.com/marinaclub/boatshare/internal/service"
	"github.com/marinaclub/boatshare/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ReservationHandler interface {
	CreateReservation(w http.ResponseWriter, r *http.Request)
	ConfirmReservation(w http.ResponseWriter, r *http.Request)
	DeleteReservation(w http.ResponseWriter, r *http.Request)
	CancelReservation(w http.ResponseWriter, r *http.Request)
	GetUserReservations(w http.ResponseWriter, r *http.Request)
	GetBoatReservations(w http.ResponseWriter, r *http.Request)
	GetQueue(w http.ResponseWriter, r *http.Request)
	GetOccupiedYear(w http.ResponseWriter, r *http.Request)
	RunSweep(w http.ResponseWriter, r *http.Request)
}

type BoatHandler interface {
	CreateBoat(w http.ResponseWriter, r *http.Request)
	GetBoat(w http.ResponseWriter, r *http.Request)
	ListBoats(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	ReservationHandler ReservationHandler
	BoatHandler        BoatHandler
	UserHandler        UserHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		ReservationHandler: reservationhandlers.New(s.ReservationService),
		BoatHandler:        boathandlers.New(s.BoatService),
		UserHandler:        userhandlers.New(s.UserService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/reservations", func(r chi.Router) {
				r.Post("/", h.ReservationHandler.CreateReservation)
				r.Put("/{id}/confirm", h.ReservationHandler.ConfirmReservation)
				r.Delete("/{id}", h.ReservationHandler.DeleteReservation)
				r.Get("/user/{userId}", h.ReservationHandler.GetUserReservations)
				r.Get("/boat/{boatId}", h.ReservationHandler.GetBoatReservations)
				r.Get("/boat/{boatId}/date/{date}", h.ReservationHandler.GetQueue)
				r.Get("/occupied/{year}", h.ReservationHandler.GetOccupiedYear)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminOnly)
					r.Put("/{id}/cancel", h.ReservationHandler.CancelReservation)
					r.Post("/sweep", h.ReservationHandler.RunSweep)
				})
			})
			r.Route("/boats", func(r chi.Router) {
				r.Get("/", h.BoatHandler.ListBoats)
				r.Get("/{id}", h.BoatHandler.GetBoat)
				r.With(auth.AdminOnly).Post("/", h.BoatHandler.CreateBoat)
			})
			r.Route("/users", func(r chi.Router) {
				r.Get("/{id}", h.UserHandler.GetUser)
				r.With(auth.AdminOnly).Get("/", h.UserHandler.ListUsers)
			})
		})
	})

	return r
}
