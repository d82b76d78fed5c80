package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pustaka/internal/apperrors"
	"pustaka/internal/models"
	"pustaka/internal/repositories"
)

// seedBookFixtures inserts one author and one genre for book tests.
func seedBookFixtures(t *testing.T, db *gorm.DB) (models.Author, models.Genre) {
	t.Helper()
	author := models.Author{Name: "J.K. Rowling", Birthdate: "1965-07-31"}
	require.NoError(t, db.Create(&author).Error)
	genre := models.Genre{Name: "Fantasy"}
	require.NoError(t, db.Create(&genre).Error)
	return author, genre
}

func TestBookRepository_CreateResolvesReferences(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMBookRepository(db)
	author, genre := seedBookFixtures(t, db)

	created, err := repo.Create(models.BookInput{
		Title:         "Harry Potter and the Philosopher's Stone",
		AuthorID:      author.ID,
		GenreID:       genre.ID,
		PublishedYear: 1997,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, created.Author)
	require.NotNil(t, created.Genre)
	assert.Equal(t, "J.K. Rowling", *created.Author)
	assert.Equal(t, "Fantasy", *created.Genre)
	assert.Equal(t, 1997, created.PublishedYear)

	fetched, err := repo.GetByID(created.ISBN)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestBookRepository_CreateMissingReference(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMBookRepository(db)
	author, genre := seedBookFixtures(t, db)

	created, err := repo.Create(models.BookInput{
		Title:         "Ghost Book",
		AuthorID:      999,
		GenreID:       genre.ID,
		PublishedYear: 2000,
	})
	assert.Nil(t, created)
	assert.True(t, apperrors.IsReferenceNotFound(err))
	assert.EqualError(t, err, "author with id 999 does not exist")

	created, err = repo.Create(models.BookInput{
		Title:         "Ghost Book",
		AuthorID:      author.ID,
		GenreID:       777,
		PublishedYear: 2000,
	})
	assert.Nil(t, created)
	assert.True(t, apperrors.IsReferenceNotFound(err))
	assert.EqualError(t, err, "genre with id 777 does not exist")

	// No book insert happened for either failure.
	var count int64
	require.NoError(t, db.Model(&models.Book{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBookRepository_GetByIDAbsence(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMBookRepository(db)

	book, err := repo.GetByID(12345)
	assert.NoError(t, err)
	assert.Nil(t, book)
}

func TestBookRepository_UpdatePartialAndReferenceCheck(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMBookRepository(db)
	author, genre := seedBookFixtures(t, db)

	created, err := repo.Create(models.BookInput{
		Title:         "Original Title",
		AuthorID:      author.ID,
		GenreID:       genre.ID,
		PublishedYear: 1990,
	})
	require.NoError(t, err)

	// Title-only patch leaves year and references untouched.
	newTitle := "Revised Title"
	updated, err := repo.Update(created.ISBN, models.BookPatch{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Revised Title", updated.Title)
	assert.Equal(t, 1990, updated.PublishedYear)
	require.NotNil(t, updated.Author)
	assert.Equal(t, "J.K. Rowling", *updated.Author)

	// A patched reference must exist.
	missing := uint(404)
	_, err = repo.Update(created.ISBN, models.BookPatch{AuthorID: &missing})
	assert.True(t, apperrors.IsReferenceNotFound(err))

	// Patching to a valid new author goes through.
	other := models.Author{Name: "J.R.R. Tolkien", Birthdate: "1892-09-03"}
	require.NoError(t, db.Create(&other).Error)
	updated, err = repo.Update(created.ISBN, models.BookPatch{AuthorID: &other.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.Author)
	assert.Equal(t, "J.R.R. Tolkien", *updated.Author)
}

func TestBookRepository_UpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMBookRepository(db)

	title := "Nope"
	_, err := repo.Update(555, models.BookPatch{Title: &title})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestBookRepository_DeleteAndExistsMatching(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMBookRepository(db)
	author, genre := seedBookFixtures(t, db)

	created, err := repo.Create(models.BookInput{
		Title:         "Short Lived",
		AuthorID:      author.ID,
		GenreID:       genre.ID,
		PublishedYear: 2005,
	})
	require.NoError(t, err)

	exists, err := repo.ExistsMatching("Short Lived", author.ID, genre.ID, 2005)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsMatching("Short Lived", author.ID, genre.ID, 2006)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Delete(created.ISBN))

	gone, err := repo.GetByID(created.ISBN)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.True(t, apperrors.IsNotFound(repo.Delete(created.ISBN)))
}
