package boatrepo

import (
	"context"

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

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Boat, error) {
	query := `
        SELECT id, name, capacity, assigned_users, created_at
        FROM boats
        WHERE id = $1
    `
	var boat domain.Boat
	err := r.db.QueryRow(ctx, query, id).Scan(&boat.ID, &boat.Name, &boat.Capacity, &boat.AssignedUsers, &boat.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find boat", zap.Error(err))
		return nil, err
	}
	return &boat, nil
}

func (r *Repository) Create(ctx context.Context, boat *domain.Boat) (*domain.Boat, error) {
	query := `
        INSERT INTO boats (id, name, capacity)
        VALUES ($1, $2, $3)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query, boat.ID, boat.Name, boat.Capacity).Scan(&boat.CreatedAt)
	if err != nil {
		zap.L().Error("can't save boat", zap.Error(err))
		return nil, err
	}
	return boat, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Boat, error) {
	query := `
        SELECT id, name, capacity, assigned_users, created_at
        FROM boats
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list boats", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var boats []domain.Boat
	for rows.Next() {
		var boat domain.Boat
		err := rows.Scan(&boat.ID, &boat.Name, &boat.Capacity, &boat.AssignedUsers, &boat.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan boat row", zap.Error(err))
			return nil, err
		}
		boats = append(boats, boat)
	}
	return boats, nil
}

// AssignUser bumps the boat's assigned-user count, refusing once capacity is
// reached. The guard lives in the WHERE clause so two concurrent
// registrations cannot both take the last seat. Reports whether a seat was
// taken.
func (r *Repository) AssignUser(ctx context.Context, boatID string) (bool, error) {
	query := `
        UPDATE boats
        SET assigned_users = assigned_users + 1
        WHERE id = $1 AND assigned_users < capacity
    `
	tag, err := r.db.Exec(ctx, query, boatID)
	if err != nil {
		zap.L().Error("can't assign user to boat", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
