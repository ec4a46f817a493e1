package db

import (
	"context"

	"github.com/classifieds-board/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, email, password_hash, first_name, last_name, phone, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (db *Postgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(db.Pool.QueryRow(ctx, query, username))
}

func (db *Postgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(db.Pool.QueryRow(ctx, query, email))
}

func (db *Postgres) FindByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(db.Pool.QueryRow(ctx, query, id))
}

// Save inserts the user when ID is zero and updates it otherwise. Unique
// violations on username or email surface as ErrDuplicate.
func (db *Postgres) Save(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID == 0 {
		query := `
			INSERT INTO users (username, email, password_hash, first_name, last_name, phone, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			RETURNING ` + userColumns
		return scanUser(db.Pool.QueryRow(ctx, query,
			user.Username,
			user.Email,
			user.PasswordHash,
			user.FirstName,
			user.LastName,
			user.Phone,
		))
	}

	query := `
		UPDATE users
		SET
			username = $1,
			email = $2,
			password_hash = $3,
			first_name = $4,
			last_name = $5,
			phone = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.ID,
	))
}

func (db *Postgres) Delete(ctx context.Context, user *model.User) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, user.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *Postgres) ListUsers(ctx context.Context, skip, limit int) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := db.Pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *user)
	}
	return list, rows.Err()
}
