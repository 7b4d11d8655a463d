package models

import "gorm.io/gorm"

// User roles form a closed set
const (
	RoleAdmin      = "admin"
	RoleTeamMember = "team_member"
)

// User represents a system account
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Email        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Password     string `gorm:"type:varchar(100);not null" json:"-"` // never exposed in JSON
	Role         string `gorm:"type:varchar(20);default:'team_member'" json:"role"`
	TeamID       *uint  `gorm:"index" json:"team_id,omitempty"`
	IsMainMember bool   `gorm:"default:false" json:"is_main_member"`

	// Relations
	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// BeforeSave is a GORM hook that hashes the password when a plain one is set
func (u *User) BeforeSave(tx *gorm.DB) error {
	// bcrypt hashes are 60 bytes; anything shorter is plain text
	if u.Password != "" && len(u.Password) < 60 {
		hashedPassword, err := HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}

// IsAdmin reports whether the user carries the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
