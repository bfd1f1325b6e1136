package model

import (
	"time"

	"github.com/google/uuid"
)

// TourGuideReview is a client's rating of a tour guide
type TourGuideReview struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TourGuideID uuid.UUID `json:"tourGuideId" gorm:"type:uuid;index;not null"`
	ClientID    uuid.UUID `json:"clientId" gorm:"type:uuid;index;not null"`
	NumOfStars  int       `json:"numOfStars" gorm:"not null"`
	Comment     string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}
