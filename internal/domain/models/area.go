package models

// Area represents a geographic survey area
type Area struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description,omitempty"`
	// Boundaries is a closed ring of [longitude, latitude] pairs
	Boundaries [][]float64 `gorm:"serializer:json;type:text" json:"boundaries,omitempty"`

	// Relations
	Houses []House `gorm:"foreignKey:AreaID" json:"houses,omitempty"`
}
