package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/altoshop/catalog-service/internal/apperr"
	"github.com/altoshop/catalog-service/internal/model"
)

var constraintFields = map[string]string{
	"unique_user_email":   "email",
	"unique_profile_user": "user_id",
}

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, u *model.User, p *model.UserProfile) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	userQuery := `
        INSERT INTO users (id, first_name, last_name, email, password_hash, is_active, created_at, updated_at)
        VALUES (:id, :first_name, :last_name, :email, :password_hash, :is_active, :created_at, :updated_at)
    `
	if _, err := tx.NamedExecContext(ctx, userQuery, u); err != nil {
		return apperr.FromPG(err, constraintFields)
	}

	profileQuery := `
        INSERT INTO user_profiles (id, user_id, avatar_url, bio)
        VALUES (:id, :user_id, :avatar_url, :bio)
    `
	if _, err := tx.NamedExecContext(ctx, profileQuery, p); err != nil {
		return apperr.FromPG(err, constraintFields)
	}

	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var p model.UserProfile
	err = r.DB.GetContext(ctx, &p, `SELECT * FROM user_profiles WHERE user_id = $1 LIMIT 1`, id)
	if err == nil {
		u.Profile = &p
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return &u, nil
}

// UpdateProfile upserts on user_id so users created before profiles became
// mandatory still get one on their first edit.
func (r *PGRepository) UpdateProfile(ctx context.Context, p *model.UserProfile) error {
	query := `
        INSERT INTO user_profiles (id, user_id, avatar_url, bio)
        VALUES (:id, :user_id, :avatar_url, :bio)
        ON CONFLICT (user_id) DO UPDATE
        SET avatar_url = EXCLUDED.avatar_url, bio = EXCLUDED.bio
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE users SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
