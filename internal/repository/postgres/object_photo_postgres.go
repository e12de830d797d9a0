package postgres

import (
	"context"
	"database/sql"

	"photoapp/internal/model"
	"photoapp/internal/repository"
)

// ObjectPhotoPostgres is a PostgreSQL implementation of
// repository.ObjectPhotoRepository backed by the photos table.
type ObjectPhotoPostgres struct {
	db *sql.DB
}

// NewObjectPhotoPostgres creates a new ObjectPhotoPostgres repository.
func NewObjectPhotoPostgres(db *sql.DB) *ObjectPhotoPostgres {
	return &ObjectPhotoPostgres{db: db}
}

var _ repository.ObjectPhotoRepository = (*ObjectPhotoPostgres)(nil)

// Create inserts a new photo row and returns the stored record.
func (r *ObjectPhotoPostgres) Create(ctx context.Context, photo *model.ObjectPhoto) (*model.ObjectPhoto, error) {
	const q = `
		INSERT INTO photos (id, object_key, description, presigned_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, object_key, description, presigned_url, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		photo.ID,
		photo.ObjectKey,
		photo.Description,
		photo.PresignedURL,
		photo.CreatedAt,
	)
	var out model.ObjectPhoto
	if err := row.Scan(
		&out.ID,
		&out.ObjectKey,
		&out.Description,
		&out.PresignedURL,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single photo row by its ID.
func (r *ObjectPhotoPostgres) FindByID(ctx context.Context, id string) (*model.ObjectPhoto, error) {
	const q = `
		SELECT id, object_key, description, presigned_url, created_at
		FROM photos
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var p model.ObjectPhoto
	if err := row.Scan(
		&p.ID,
		&p.ObjectKey,
		&p.Description,
		&p.PresignedURL,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all photo rows, newest first.
func (r *ObjectPhotoPostgres) List(ctx context.Context) ([]model.ObjectPhoto, error) {
	const q = `
		SELECT id, object_key, description, presigned_url, created_at
		FROM photos
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ObjectPhoto, 0)
	for rows.Next() {
		var p model.ObjectPhoto
		if err := rows.Scan(
			&p.ID,
			&p.ObjectKey,
			&p.Description,
			&p.PresignedURL,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the total number of photo rows.
func (r *ObjectPhotoPostgres) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM photos`
	var total int
	if err := r.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Delete removes a photo row by ID. It does not return an error if the row
// does not exist; the existence check belongs to the workflow.
func (r *ObjectPhotoPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM photos WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
