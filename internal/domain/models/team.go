package models

// Team represents a field-worker team
type Team struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	CreatedByID uint   `gorm:"index" json:"created_by_id"`

	// Relations
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	MainMembers []User `gorm:"many2many:team_main_members" json:"main_members,omitempty"`
}
