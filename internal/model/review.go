package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is a client's review of the platform itself
type Review struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ClientID   uuid.UUID `json:"clientId" gorm:"type:uuid;index;not null"`
	Review     string    `json:"review" gorm:"type:text;not null"`
	NumOfStars int       `json:"numOfStars" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}
