package model

import (
	"time"

	"github.com/google/uuid"
)

// Destination is an admin-managed place used for trip suggestions
type Destination struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	ImageURL    string    `json:"imageUrl" gorm:"type:text"`
	Location    string    `json:"location" gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
