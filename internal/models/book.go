package models

// Book represents a catalogued book. AuthorID and GenreID are weak
// references: deleting the referenced Author or Genre nulls the column
// here instead of deleting the book.
type Book struct {
	ISBN          uint   `json:"isbn" gorm:"primaryKey;autoIncrement;column:isbn"`
	Title         string `json:"title" gorm:"type:varchar(40);not null"`
	AuthorID      *uint  `json:"author_id"`
	GenreID       *uint  `json:"genre_id"`
	PublishedYear int    `json:"published_year" gorm:"not null"`
}

// BookInput is the payload for creating a book. Both references are
// required at creation; they only become null through cascade-null
// deletes of the referenced rows.
type BookInput struct {
	Title         string `json:"title" validate:"required,max=40"`
	AuthorID      uint   `json:"author_id" validate:"required"`
	GenreID       uint   `json:"genre_id" validate:"required"`
	PublishedYear int    `json:"published_year" validate:"required"`
}

// BookPatch is a partial update for a Book. Fields are applied in
// declared order; absent and empty fields are left untouched.
type BookPatch struct {
	Title         *string `json:"title"`
	AuthorID      *uint   `json:"author_id"`
	GenreID       *uint   `json:"genre_id"`
	PublishedYear *int    `json:"published_year"`
}

// Updates returns the column set to apply, skipping absent and empty
// fields.
func (p BookPatch) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Title != nil && *p.Title != "" {
		updates["title"] = *p.Title
	}
	if p.AuthorID != nil && *p.AuthorID != 0 {
		updates["author_id"] = *p.AuthorID
	}
	if p.GenreID != nil && *p.GenreID != 0 {
		updates["genre_id"] = *p.GenreID
	}
	if p.PublishedYear != nil && *p.PublishedYear != 0 {
		updates["published_year"] = *p.PublishedYear
	}
	return updates
}

// BookDetail is the read model for books: the weak references are
// resolved to author and genre names via LEFT JOINs, so either can be
// null after a cascade-null delete.
type BookDetail struct {
	ISBN          uint    `json:"isbn"`
	Title         string  `json:"title"`
	Author        *string `json:"author"`
	Genre         *string `json:"genre"`
	PublishedYear int     `json:"published_year"`
}
