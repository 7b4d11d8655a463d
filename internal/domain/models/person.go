package models

import (
	"time"

	"gorm.io/gorm"
)

// Gender values form a closed set
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Person represents a resident recorded against a house
type Person struct {
	BaseModel
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	MobileNumber   string    `gorm:"type:varchar(10);not null" json:"mobile_number"`
	Email          string    `gorm:"type:varchar(100);not null" json:"email"`
	Gender         string    `gorm:"type:varchar(10);not null;index" json:"gender"`
	HouseID        uint      `gorm:"not null;index" json:"house_id"`
	SubmittedByID  uint      `gorm:"not null;index" json:"submitted_by_id"`
	SubmissionDate time.Time `gorm:"index" json:"submission_date"`

	// Relations
	House       *House `gorm:"foreignKey:HouseID" json:"house,omitempty"`
	SubmittedBy *User  `gorm:"foreignKey:SubmittedByID" json:"submitted_by,omitempty"`
}

// BeforeCreate stamps the submission date when the caller did not set one
func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.SubmissionDate.IsZero() {
		p.SubmissionDate = time.Now()
	}
	return nil
}
