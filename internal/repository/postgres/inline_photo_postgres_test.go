package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"photoapp/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inlineMetaColumns = []string{"id", "filename", "original_filename", "description", "upload_date", "size", "content_type"}

func TestInlinePhotoPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInlinePhotoPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	photo := &model.InlinePhoto{
		ID:               "photo-uuid",
		Filename:         "img_1712345678901.png",
		OriginalFilename: "cat.png",
		Description:      "my cat",
		UploadDate:       now,
		Size:             2048,
		ContentType:      "image/png",
		Data:             []byte{0x89, 0x50, 0x4e, 0x47},
	}

	rows := sqlmock.NewRows(inlineMetaColumns).
		AddRow(photo.ID, photo.Filename, photo.OriginalFilename, photo.Description, photo.UploadDate, photo.Size, photo.ContentType)

	mock.ExpectQuery("INSERT INTO images").
		WithArgs(photo.ID, photo.Filename, photo.OriginalFilename, photo.Description, photo.UploadDate, photo.Size, photo.ContentType, photo.Data).
		WillReturnRows(rows)

	stored, err := repo.Create(ctx, photo)

	assert.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, photo.ID, stored.ID)
	assert.Equal(t, "cat.png", stored.OriginalFilename)
	assert.Nil(t, stored.Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInlinePhotoPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInlinePhotoPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(inlineMetaColumns).
			AddRow("photo-id", "img_1.png", "cat.png", "", time.Now(), 2048, "image/png")

		mock.ExpectQuery("SELECT (.+) FROM images WHERE id = ?").
			WithArgs("photo-id").
			WillReturnRows(rows)

		photo, err := repo.FindByID(ctx, "photo-id")

		assert.NoError(t, err)
		require.NotNil(t, photo)
		assert.Equal(t, "photo-id", photo.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM images WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		photo, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, photo)
	})
}

func TestInlinePhotoPostgres_FindDataByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInlinePhotoPostgres(db)
	ctx := context.Background()

	payload := []byte("image bytes")
	rows := sqlmock.NewRows([]string{"data", "content_type"}).AddRow(payload, "image/png")

	mock.ExpectQuery("SELECT data, content_type FROM images WHERE id = ?").
		WithArgs("photo-id").
		WillReturnRows(rows)

	data, contentType, err := repo.FindDataByID(ctx, "photo-id")

	assert.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "image/png", contentType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInlinePhotoPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInlinePhotoPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(inlineMetaColumns).
		AddRow("id-2", "img_2.png", "dog.png", "", time.Now(), 100, "image/png").
		AddRow("id-1", "img_1.png", "cat.png", "my cat", time.Now().Add(-time.Hour), 2048, "image/png")

	mock.ExpectQuery("SELECT (.+) FROM images ORDER BY upload_date DESC").
		WillReturnRows(rows)

	items, err := repo.List(ctx)

	assert.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "id-2", items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInlinePhotoPostgres_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInlinePhotoPostgres(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM images").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestInlinePhotoPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInlinePhotoPostgres(db)

	mock.ExpectExec("DELETE FROM images WHERE id = ?").
		WithArgs("photo-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(context.Background(), "photo-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
