package models

// User represents a registered account. Password holds the bcrypt hash
// and is never serialized.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
}
