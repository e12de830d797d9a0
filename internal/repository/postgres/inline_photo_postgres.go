package postgres

import (
	"context"
	"database/sql"

	"photoapp/internal/model"
	"photoapp/internal/repository"
)

// InlinePhotoPostgres is a PostgreSQL implementation of
// repository.InlinePhotoRepository backed by the images table. It uses
// database/sql with parameterized queries and contains no business logic.
type InlinePhotoPostgres struct {
	db *sql.DB
}

// NewInlinePhotoPostgres creates a new InlinePhotoPostgres repository.
func NewInlinePhotoPostgres(db *sql.DB) *InlinePhotoPostgres {
	return &InlinePhotoPostgres{db: db}
}

var _ repository.InlinePhotoRepository = (*InlinePhotoPostgres)(nil)

// Create inserts a new image row, bytes included, and returns the stored
// record without the data payload.
func (r *InlinePhotoPostgres) Create(ctx context.Context, photo *model.InlinePhoto) (*model.InlinePhoto, error) {
	const q = `
		INSERT INTO images (id, filename, original_filename, description, upload_date, size, content_type, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, filename, original_filename, description, upload_date, size, content_type
	`
	row := r.db.QueryRowContext(ctx, q,
		photo.ID,
		photo.Filename,
		photo.OriginalFilename,
		photo.Description,
		photo.UploadDate,
		photo.Size,
		photo.ContentType,
		photo.Data,
	)
	var out model.InlinePhoto
	if err := row.Scan(
		&out.ID,
		&out.Filename,
		&out.OriginalFilename,
		&out.Description,
		&out.UploadDate,
		&out.Size,
		&out.ContentType,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single image's metadata by its ID.
func (r *InlinePhotoPostgres) FindByID(ctx context.Context, id string) (*model.InlinePhoto, error) {
	const q = `
		SELECT id, filename, original_filename, description, upload_date, size, content_type
		FROM images
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var p model.InlinePhoto
	if err := row.Scan(
		&p.ID,
		&p.Filename,
		&p.OriginalFilename,
		&p.Description,
		&p.UploadDate,
		&p.Size,
		&p.ContentType,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindDataByID fetches the raw bytes and content type for direct serving.
func (r *InlinePhotoPostgres) FindDataByID(ctx context.Context, id string) ([]byte, string, error) {
	const q = `SELECT data, content_type FROM images WHERE id = $1`
	var data []byte
	var contentType string
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&data, &contentType); err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

// List returns all image metadata, newest upload first.
func (r *InlinePhotoPostgres) List(ctx context.Context) ([]model.InlinePhoto, error) {
	const q = `
		SELECT id, filename, original_filename, description, upload_date, size, content_type
		FROM images
		ORDER BY upload_date DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.InlinePhoto, 0)
	for rows.Next() {
		var p model.InlinePhoto
		if err := rows.Scan(
			&p.ID,
			&p.Filename,
			&p.OriginalFilename,
			&p.Description,
			&p.UploadDate,
			&p.Size,
			&p.ContentType,
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

// Count returns the total number of image rows.
func (r *InlinePhotoPostgres) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM images`
	var total int
	if err := r.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Delete removes an image row by ID. It does not return an error if the row
// does not exist; the existence check belongs to the workflow.
func (r *InlinePhotoPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM images WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
