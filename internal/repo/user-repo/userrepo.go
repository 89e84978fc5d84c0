package userrepo

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

const userColumns = `id, email, name, role, boat_id, password_hash, standard_quota, substitution_quota, contingency_quota, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.Role, &user.BoatID, &user.PasswordHash,
		&user.StandardQuota, &user.SubstitutionQuota, &user.ContingencyQuota, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (id, email, name, role, boat_id, password_hash, standard_quota, substitution_quota, contingency_quota)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.Name, user.Role, user.BoatID, user.PasswordHash,
		user.StandardQuota, user.SubstitutionQuota, user.ContingencyQuota,
	).Scan(&user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

// LockQuotas reads the user's quota counters under a row-level lock. Callers
// must already be inside a transaction; the lock serializes concurrent
// check-and-deduct attempts against the same user.
func (r *Repository) LockQuotas(ctx context.Context, id string) (*domain.User, error) {
	query := `
        SELECT id, standard_quota, substitution_quota, contingency_quota
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.StandardQuota, &user.SubstitutionQuota, &user.ContingencyQuota,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock user quotas", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UpdateQuotas(ctx context.Context, user *domain.User) error {
	query := `
        UPDATE users
        SET standard_quota = $1, substitution_quota = $2, contingency_quota = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query,
		user.StandardQuota, user.SubstitutionQuota, user.ContingencyQuota, user.ID,
	)
	if err != nil {
		zap.L().Error("can't update user quotas", zap.Error(err))
		return err
	}
	return nil
}
