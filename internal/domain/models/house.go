package models

import (
	"time"

	"gorm.io/gorm"
)

// House represents a surveyed house inside an area
type House struct {
	BaseModel
	Address string `gorm:"type:varchar(255);not null" json:"address"`
	AreaID  uint   `gorm:"not null;index" json:"area_id"`
	// Location point as [longitude, latitude]
	Longitude      float64   `gorm:"not null" json:"longitude"`
	Latitude       float64   `gorm:"not null" json:"latitude"`
	SubmittedByID  uint      `gorm:"not null;index" json:"submitted_by_id"`
	TeamID         uint      `gorm:"not null;index" json:"team_id"`
	SubmissionDate time.Time `gorm:"index" json:"submission_date"`

	// Relations
	Area        *Area  `gorm:"foreignKey:AreaID" json:"area,omitempty"`
	Team        *Team  `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	SubmittedBy *User  `gorm:"foreignKey:SubmittedByID" json:"submitted_by,omitempty"`
	People      []Person `gorm:"foreignKey:HouseID" json:"people,omitempty"`
}

// BeforeCreate stamps the submission date when the caller did not set one
func (h *House) BeforeCreate(tx *gorm.DB) error {
	if h.SubmissionDate.IsZero() {
		h.SubmissionDate = time.Now()
	}
	return nil
}
