package models

// Genre represents a book genre. Names are unique case-insensitively;
// the repository enforces this at creation time.
type Genre struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(50);not null" validate:"required,max=50"`
}

// GenrePatch is a partial update for a Genre.
type GenrePatch struct {
	Name *string `json:"name"`
}

// Updates returns the column set to apply, skipping absent and empty
// fields.
func (p GenrePatch) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Name != nil && *p.Name != "" {
		updates["name"] = *p.Name
	}
	return updates
}
