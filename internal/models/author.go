package models

// Author represents a book author.
// Birthdate is stored in ISO form (YYYY-MM-DD) and reformatted to a long
// display form ("31 July 1965") by the repository on the way out.
type Author struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"type:varchar(40);not null" validate:"required,max=40"`
	Birthdate string `json:"birthdate" gorm:"type:varchar(20)" validate:"required,datetime=2006-01-02"`
}

// AuthorPatch is a partial update for an Author. A nil field was absent
// from the request; a present but empty field is skipped as well,
// matching each field's own non-empty check. Fields are applied in
// declared order.
type AuthorPatch struct {
	Name      *string `json:"name"`
	Birthdate *string `json:"birthdate"`
}

// Updates returns the column set to apply, skipping absent and empty
// fields.
func (p AuthorPatch) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Name != nil && *p.Name != "" {
		updates["name"] = *p.Name
	}
	if p.Birthdate != nil && *p.Birthdate != "" {
		updates["birthdate"] = *p.Birthdate
	}
	return updates
}
