package models

// Location is a venue that events can reference.
type Location struct {
	ID      uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"not null" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// Event references a Location by id. The reference is weak, same as a
// book's author: it identifies a row without owning it.
type Event struct {
	ID         uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string `json:"title" gorm:"not null" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	LocationID *uint  `json:"location_id"`
}

// EventInput is the payload for creating an event.
type EventInput struct {
	Title      string `json:"title" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	LocationID uint   `json:"location_id" validate:"required"`
}

// EventDetail resolves the location reference to its name.
type EventDetail struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Date     string  `json:"date"`
	Location *string `json:"location"`
}
