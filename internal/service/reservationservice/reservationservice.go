package reservationservice

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/marinaclub/boatshare/internal/domain"
	"github.com/marinaclub/boatshare/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// ConfirmationWindowDays is the trailing period before a reservation's
	// day during which its owner must confirm it. A reservation for today
	// is always inside the window.
	ConfirmationWindowDays = 7

	// governingTimeZone is the boat's local timezone. All day arithmetic
	// happens here, not in the caller's timezone.
	governingTimeZone = "America/Sao_Paulo"

	sweepWorkers = 8
)

type ReservationRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Reservation, error)
	Create(ctx context.Context, res *domain.Reservation) error
	UpdateStatus(ctx context.Context, id string, from, to domain.Status) (bool, error)
	Delete(ctx context.Context, id string) error
	ListByBoatAndDate(ctx context.Context, boatID string, date time.Time) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error)
	ListByBoat(ctx context.Context, boatID string) ([]domain.Reservation, error)
	ListByYear(ctx context.Context, year int) ([]domain.Reservation, error)
	FindExpired(ctx context.Context, before time.Time) ([]domain.Reservation, error)
	ListActiveFrom(ctx context.Context, from time.Time) ([]domain.Reservation, error)
	Archive(ctx context.Context, id string) (bool, error)
	MarkRestored(ctx context.Context, id string) (bool, error)
}

type QuotaLedger interface {
	Deduct(ctx context.Context, userID string, kind domain.Kind) error
	Restore(ctx context.Context, userID string, kind domain.Kind) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type BoatRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Boat, error)
}

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrBoatNotFound          = errors.New("boat not found")
	ErrNotFound              = errors.New("reservation not found")
	ErrDateInPast            = errors.New("reservation date is in the past")
	ErrForbidden             = errors.New("reservation belongs to another user")
	ErrNotUnconfirmed        = errors.New("only unconfirmed reservations can be confirmed")
	ErrCannotDeleteConfirmed = errors.New("confirmed reservations cannot be deleted")
	ErrCannotDeleteLegacy    = errors.New("legacy reservations cannot be deleted")
	ErrAlreadyFinalized      = errors.New("reservation is already cancelled or archived")
)

// Service is the transactional boundary around the reservation record store
// and the quota ledger. Creation and deletion mutate both inside one
// transaction; the only serialization point is the user's quota row lock.
type Service struct {
	reservations ReservationRepo
	quotas       QuotaLedger
	users        UserRepo
	boats        BoatRepo
	txManager    pg.TXManager

	now func() time.Time
	loc *time.Location
}

func New(reservations ReservationRepo, quotas QuotaLedger, users UserRepo, boats BoatRepo, txManager pg.TXManager) *Service {
	loc, err := time.LoadLocation(governingTimeZone)
	if err != nil {
		zap.L().Warn("governing timezone unavailable, falling back to UTC", zap.Error(err))
		loc = time.UTC
	}
	return &Service{
		reservations: reservations,
		quotas:       quotas,
		users:        users,
		boats:        boats,
		txManager:    txManager,
		now:          time.Now,
		loc:          loc,
	}
}

// daysUntil is the calendar-day difference between the reservation's day and
// today in the governing timezone. Today is 0; fractions are floored by
// comparing whole days.
func (s *Service) daysUntil(date time.Time) int {
	now := s.now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(today).Hours() / 24)
}

func (s *Service) today() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func withinConfirmationWindow(days int) bool {
	return days >= 0 && days <= ConfirmationWindowDays
}

// initialStatus is the state machine's entry point. Contingency bookings are
// same-day reservations and confirm immediately; everything else starts
// Pending unless it is the primary reservation already inside the window.
func initialStatus(kind domain.Kind, isPrimary bool, days int) domain.Status {
	if kind == domain.KindContingency {
		return domain.StatusConfirmed
	}
	if isPrimary && withinConfirmationWindow(days) {
		return domain.StatusUnconfirmed
	}
	return domain.StatusPending
}

// Create books one calendar day of a boat for a user. The quota
// check-and-deduct, the queue position lookup and the insert commit as one
// unit; on any failure after the quota row lock is taken, everything rolls
// back.
func (s *Service) Create(ctx context.Context, userID, boatID string, date time.Time, kind domain.Kind, notes string) (*domain.Reservation, error) {
	if s.daysUntil(date) < 0 {
		return nil, ErrDateInPast
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	boat, err := s.boats.FindByID(ctx, boatID)
	if err != nil {
		return nil, err
	}
	if boat == nil {
		return nil, ErrBoatNotFound
	}

	var reservation *domain.Reservation
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.quotas.Deduct(ctx, userID, kind); err != nil {
			return err
		}

		queue, err := s.reservations.ListByBoatAndDate(ctx, boatID, date)
		if err != nil {
			return err
		}

		reservation = &domain.Reservation{
			ID:        uuid.NewString(),
			UserID:    userID,
			BoatID:    boatID,
			Date:      date,
			Kind:      kind,
			Notes:     notes,
			Status:    initialStatus(kind, len(queue) == 0, s.daysUntil(date)),
			CreatedAt: s.now().UTC(),
		}
		return s.reservations.Create(ctx, reservation)
	})
	if err != nil {
		zap.L().Error("can't create reservation", zap.Error(err))
		return nil, err
	}

	zap.L().Info("reservation created",
		zap.String("reservationID", reservation.ID),
		zap.String("boatID", boatID),
		zap.String("status", string(reservation.Status)),
	)
	return reservation, nil
}

// Confirm moves an Unconfirmed reservation to Confirmed. Any other current
// status is rejected so callers can tell a disallowed transition from a
// missing record.
func (s *Service) Confirm(ctx context.Context, id, callerID string, isAdmin bool) (*domain.Reservation, error) {
	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, ErrNotFound
	}
	if reservation.UserID != callerID && !isAdmin {
		return nil, ErrForbidden
	}
	if reservation.Status != domain.StatusUnconfirmed {
		return nil, ErrNotUnconfirmed
	}

	// Compare-and-set: if the status moved between the read and the write,
	// for example the sweep archived the row, the claim is lost and the
	// terminal status stays put.
	claimed, err := s.reservations.UpdateStatus(ctx, id, domain.StatusUnconfirmed, domain.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrNotUnconfirmed
	}
	reservation.Status = domain.StatusConfirmed
	return reservation, nil
}

// Delete removes a reservation, restores its quota exactly once and promotes
// the next queued reservation for the same boat and day if one exists.
// Confirmed reservations must go through Cancel instead; Legacy records are
// immutable history.
func (s *Service) Delete(ctx context.Context, id, callerID string, isAdmin bool) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		reservation, err := s.reservations.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if reservation == nil {
			return ErrNotFound
		}
		if reservation.UserID != callerID && !isAdmin {
			return ErrForbidden
		}
		switch reservation.Status {
		case domain.StatusConfirmed:
			return ErrCannotDeleteConfirmed
		case domain.StatusLegacy:
			return ErrCannotDeleteLegacy
		}

		if !reservation.QuotaRestored {
			if err := s.quotas.Restore(ctx, reservation.UserID, reservation.Kind); err != nil {
				return err
			}
		}

		if err := s.reservations.Delete(ctx, id); err != nil {
			return err
		}

		return s.promoteNext(ctx, reservation.BoatID, reservation.Date)
	})
}

// Cancel is the separate policy for reservations that can no longer be
// casually deleted. It parks the record in the terminal Cancelled status,
// restores quota once and promotes the next queued reservation.
func (s *Service) Cancel(ctx context.Context, id string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		reservation, err := s.reservations.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if reservation == nil {
			return ErrNotFound
		}
		if reservation.Status.Terminal() {
			return ErrAlreadyFinalized
		}

		claimed, err := s.reservations.MarkRestored(ctx, id)
		if err != nil {
			return err
		}
		if claimed {
			if err := s.quotas.Restore(ctx, reservation.UserID, reservation.Kind); err != nil {
				return err
			}
		}

		moved, err := s.reservations.UpdateStatus(ctx, id, reservation.Status, domain.StatusCancelled)
		if err != nil {
			return err
		}
		if !moved {
			return ErrAlreadyFinalized
		}

		return s.promoteNext(ctx, reservation.BoatID, reservation.Date)
	})
}

// promoteNext re-resolves the queue after a slot opened up. If the new
// primary reservation is Pending and inside the confirmation window it
// becomes Unconfirmed, the same rule the sweep applies.
func (s *Service) promoteNext(ctx context.Context, boatID string, date time.Time) error {
	queue, err := s.reservations.ListByBoatAndDate(ctx, boatID, date)
	if err != nil {
		return err
	}
	if len(queue) == 0 {
		return nil
	}

	next := queue[0]
	if next.Status != domain.StatusPending || !withinConfirmationWindow(s.daysUntil(next.Date)) {
		return nil
	}

	moved, err := s.reservations.UpdateStatus(ctx, next.ID, domain.StatusPending, domain.StatusUnconfirmed)
	if err != nil {
		return err
	}
	if !moved {
		return nil
	}
	zap.L().Info("promoted queued reservation",
		zap.String("reservationID", next.ID),
		zap.String("boatID", boatID),
	)
	return nil
}

// Queue returns every live reservation for a boat and day in queue order,
// earliest created first.
func (s *Service) Queue(ctx context.Context, boatID string, date time.Time) ([]domain.Reservation, error) {
	return s.reservations.ListByBoatAndDate(ctx, boatID, date)
}

func (s *Service) ByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	return s.reservations.ListByUser(ctx, userID)
}

func (s *Service) ByBoat(ctx context.Context, boatID string) ([]domain.Reservation, error) {
	return s.reservations.ListByBoat(ctx, boatID)
}

func (s *Service) OccupiedYear(ctx context.Context, year int) ([]domain.Reservation, error) {
	return s.reservations.ListByYear(ctx, year)
}

// RunArchivalSweep performs the two time-driven passes: archive reservations
// whose day has fully elapsed (restoring quota once each), then promote
// primary Pending reservations that entered the confirmation window. Every
// item is independently idempotent, so the sweep is safe to re-run and safe
// to interrupt; one bad record is logged and skipped, never aborting the
// batch. Returns the number of transitions applied.
func (s *Service) RunArchivalSweep(ctx context.Context) (int, error) {
	var transitions atomic.Int64
	today := s.today()

	expired, err := s.reservations.FindExpired(ctx, today)
	if err != nil {
		return 0, err
	}

	var g errgroup.Group
	g.SetLimit(sweepWorkers)
	for _, res := range expired {
		res := res
		g.Go(func() error {
			err := s.txManager.Begin(ctx, func(ctx context.Context) error {
				claimed, err := s.reservations.Archive(ctx, res.ID)
				if err != nil {
					return err
				}
				if !claimed {
					return nil
				}
				if err := s.quotas.Restore(ctx, res.UserID, res.Kind); err != nil {
					return err
				}
				transitions.Add(1)
				return nil
			})
			if err != nil {
				zap.L().Error("failed to archive reservation",
					zap.String("reservationID", res.ID), zap.Error(err))
			}
			return nil
		})
	}
	g.Wait()

	active, err := s.reservations.ListActiveFrom(ctx, today)
	if err != nil {
		return int(transitions.Load()), err
	}

	// Rows arrive grouped by boat and day, so the primary of each group is
	// the row where the key changes. No per-reservation queue lookups.
	var prevBoat string
	var prevDate time.Time
	for _, res := range active {
		isPrimary := res.BoatID != prevBoat || !res.Date.Equal(prevDate)
		prevBoat, prevDate = res.BoatID, res.Date

		if !isPrimary || res.Status != domain.StatusPending {
			continue
		}
		if !withinConfirmationWindow(s.daysUntil(res.Date)) {
			continue
		}
		moved, err := s.reservations.UpdateStatus(ctx, res.ID, domain.StatusPending, domain.StatusUnconfirmed)
		if err != nil {
			zap.L().Error("failed to promote reservation",
				zap.String("reservationID", res.ID), zap.Error(err))
			continue
		}
		if !moved {
			// Cancelled or deleted after ListActiveFrom read it.
			continue
		}
		transitions.Add(1)
	}

	return int(transitions.Load()), nil
}
