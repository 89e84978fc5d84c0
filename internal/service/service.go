package service

import (
	"github.com/marinaclub/boatshare/internal/handlers/auth"
	"github.com/marinaclub/boatshare/internal/handlers/boats"
	"github.com/marinaclub/boatshare/internal/handlers/reservations"
	"github.com/marinaclub/boatshare/internal/handlers/users"

	pkgauth "github.com/marinaclub/boatshare/pkg/auth"

	"github.com/marinaclub/boatshare/internal/pg"
	"github.com/marinaclub/boatshare/internal/repo"
	authservice "github.com/marinaclub/boatshare/internal/service/authservice"
	boatservice "github.com/marinaclub/boatshare/internal/service/boatservice"
	quotaservice "github.com/marinaclub/boatshare/internal/service/quotaservice"
	reservationservice "github.com/marinaclub/boatshare/internal/service/reservationservice"
	userservice "github.com/marinaclub/boatshare/internal/service/userservice"
)

type Services struct {
	AuthService        auth.Service
	ReservationService reservations.Service
	BoatService        boats.Service
	UserService        users.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	quotaService := quotaservice.New(repo.UserRepo)
	reservationService := reservationservice.New(repo.ReservationRepo, quotaService, repo.UserRepo, repo.BoatRepo, txManager)
	boatService := boatservice.New(repo.BoatRepo)
	userService := userservice.New(repo.UserRepo)
	authService := authservice.New(repo.UserRepo, repo.BoatRepo, txManager, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:        authService,
		ReservationService: reservationService,
		BoatService:        boatService,
		UserService:        userService,
	}
}
