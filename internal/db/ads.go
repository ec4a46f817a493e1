package db

import (
	"context"

	"github.com/classifieds-board/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

const adColumns = `id, title, category, description, price, created_at, updated_at, user_id`

func scanAd(row pgx.Row) (*model.Ad, error) {
	var ad model.Ad
	err := row.Scan(
		&ad.ID,
		&ad.Title,
		&ad.Category,
		&ad.Description,
		&ad.Price,
		&ad.CreatedAt,
		&ad.UpdatedAt,
		&ad.UserID,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &ad, nil
}

func (db *Postgres) queryAds(ctx context.Context, query string, args ...any) ([]model.Ad, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Ad{}
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *ad)
	}
	return list, rows.Err()
}

func (db *Postgres) ListAds(ctx context.Context, skip, limit int) ([]model.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads ORDER BY created_at DESC, id DESC OFFSET $1 LIMIT $2`
	return db.queryAds(ctx, query, skip, limit)
}

func (db *Postgres) ListAdsByUser(ctx context.Context, userID int64) ([]model.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return db.queryAds(ctx, query, userID)
}

func (db *Postgres) GetAd(ctx context.Context, id int64) (*model.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE id = $1`
	return scanAd(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) CreateAd(ctx context.Context, userID int64, in model.AdInput) (*model.Ad, error) {
	query := `
		INSERT INTO ads (title, category, description, price, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + adColumns
	return scanAd(db.Pool.QueryRow(ctx, query, in.Title, in.Category, in.Description, in.Price, userID))
}

func (db *Postgres) UpdateAd(ctx context.Context, id int64, in model.AdInput) (*model.Ad, error) {
	query := `
		UPDATE ads
		SET
			title = $1,
			category = $2,
			description = $3,
			price = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + adColumns
	return scanAd(db.Pool.QueryRow(ctx, query, in.Title, in.Category, in.Description, in.Price, id))
}

func (db *Postgres) DeleteAd(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
