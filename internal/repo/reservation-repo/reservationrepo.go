package reservationrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/marinaclub/boatshare/internal/domain"
	"github.com/marinaclub/boatshare/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const reservationColumns = `id, user_id, boat_id, date, kind, status, notes, quota_restored, created_at`

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID, &res.UserID, &res.BoatID, &res.Date, &res.Kind, &res.Status,
		&res.Notes, &res.QuotaRestored, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *Repository) scanAll(rows pgx.Rows) ([]domain.Reservation, error) {
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			zap.L().Error("can't scan reservation row", zap.Error(err))
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find reservation", zap.Error(err))
		return nil, err
	}
	return res, nil
}

// FindByIDForUpdate locks the reservation row for the rest of the enclosing
// transaction. Deletion and the sweep both go through this lock, so the
// quota restore can only happen on one side.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock reservation", zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (r *Repository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `
        INSERT INTO reservations (id, user_id, boat_id, date, kind, status, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		res.ID, res.UserID, res.BoatID, res.Date, res.Kind, res.Status, res.Notes, res.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save reservation", zap.Error(err))
		return err
	}
	return nil
}

// UpdateStatus applies a single status transition as a compare-and-set: the
// row must still carry the status the caller read. It reports whether the
// transition was applied; zero rows affected means the status moved
// concurrently, so a row can never leave Legacy or Cancelled through a stale
// read.
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.Status) (bool, error) {
	query := `
        UPDATE reservations
        SET status = $1
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("can't update reservation status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reservations WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete reservation", zap.Error(err))
		return err
	}
	return nil
}

// ListByBoatAndDate returns the queue for one boat and day: every reservation
// that is not Cancelled and not Legacy, earliest created first, reservation
// id as the tie-break. The first element is the primary reservation.
func (r *Repository) ListByBoatAndDate(ctx context.Context, boatID string, date time.Time) ([]domain.Reservation, error) {
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE boat_id = $1 AND date = $2 AND status NOT IN ('Cancelled', 'Legacy')
        ORDER BY created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, boatID, date)
	if err != nil {
		zap.L().Error("can't get reservations for boat and date", zap.Error(err))
		return nil, err
	}
	return r.scanAll(rows)
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE user_id = $1
        ORDER BY date DESC, created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get reservations for user", zap.Error(err))
		return nil, err
	}
	return r.scanAll(rows)
}

func (r *Repository) ListByBoat(ctx context.Context, boatID string) ([]domain.Reservation, error) {
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE boat_id = $1
        ORDER BY date ASC, created_at ASC
    `
	rows, err := r.db.Query(ctx, query, boatID)
	if err != nil {
		zap.L().Error("can't get reservations for boat", zap.Error(err))
		return nil, err
	}
	return r.scanAll(rows)
}

// ListByYear returns the non-terminal reservations of a calendar year, used
// to render occupied dates.
func (r *Repository) ListByYear(ctx context.Context, year int) ([]domain.Reservation, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE date >= $1 AND date < $2 AND status NOT IN ('Cancelled', 'Legacy')
        ORDER BY date ASC, created_at ASC
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get reservations for year", zap.Error(err))
		return nil, err
	}
	return r.scanAll(rows)
}

// FindExpired returns reservations whose day has fully elapsed and that have
// not reached a terminal status yet.
func (r *Repository) FindExpired(ctx context.Context, before time.Time) ([]domain.Reservation, error) {
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE date < $1 AND status NOT IN ('Cancelled', 'Legacy')
        ORDER BY date ASC, created_at ASC
    `
	rows, err := r.db.Query(ctx, query, before)
	if err != nil {
		zap.L().Error("can't get expired reservations", zap.Error(err))
		return nil, err
	}
	return r.scanAll(rows)
}

// ListActiveFrom returns every non-terminal reservation on or after the given
// day, grouped by boat and day through the sort order. One query serves the
// whole promotion pass: the first row of each (boat_id, date) run is that
// day's primary reservation.
func (r *Repository) ListActiveFrom(ctx context.Context, from time.Time) ([]domain.Reservation, error) {
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE date >= $1 AND status NOT IN ('Cancelled', 'Legacy')
        ORDER BY boat_id ASC, date ASC, created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, from)
	if err != nil {
		zap.L().Error("can't get active reservations", zap.Error(err))
		return nil, err
	}
	return r.scanAll(rows)
}

// Archive transitions a reservation to Legacy and claims its single quota
// restore in one statement. It reports whether this caller won the claim;
// a concurrent delete or a second sweep run sees zero rows affected.
func (r *Repository) Archive(ctx context.Context, id string) (bool, error) {
	query := `
        UPDATE reservations
        SET status = 'Legacy', quota_restored = TRUE
        WHERE id = $1 AND status NOT IN ('Cancelled', 'Legacy') AND quota_restored = FALSE
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't archive reservation", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkRestored claims the quota restore for a reservation that stays in the
// table (cancellation path). Reports whether the claim succeeded.
func (r *Repository) MarkRestored(ctx context.Context, id string) (bool, error) {
	query := `
        UPDATE reservations
        SET quota_restored = TRUE
        WHERE id = $1 AND quota_restored = FALSE
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark reservation quota restored", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
