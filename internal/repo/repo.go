package repo

import (
	"github.com/marinaclub/boatshare/internal/pg"
	boatrepo "github.com/marinaclub/boatshare/internal/repo/boat-repo"
	reservationrepo "github.com/marinaclub/boatshare/internal/repo/reservation-repo"
	userrepo "github.com/marinaclub/boatshare/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	BoatRepo        *boatrepo.Repository
	ReservationRepo *reservationrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		BoatRepo:        boatrepo.New(conn),
		ReservationRepo: reservationrepo.New(conn),
	}
}
