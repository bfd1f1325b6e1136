package model

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a registered traveler account
type Client struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null"`
	Gender        string    `json:"gender" gorm:"type:varchar(20);not null"`
	Email         string    `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Username      string    `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	ContactNumber string    `json:"contactNumber" gorm:"type:varchar(20);not null"`
	Country       string    `json:"country" gorm:"type:varchar(50);not null"`
	ImageURL      string    `json:"imageUrl" gorm:"type:text"`
	Password      string    `json:"-" gorm:"type:varchar(100);not null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Reviews   []Review   `json:"reviews,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	TourPlans []TourPlan `json:"tourPlans,omitempty" gorm:"foreignKey:ClientID"`
}
