package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Travel types accepted for a tour plan
const (
	TravelTypeFamily   = "family"
	TravelTypeCouple   = "couple"
	TravelTypeFriends  = "friends"
	TravelTypeSolo     = "solo"
	TravelTypeBusiness = "business"
	TravelTypeOther    = "other"
)

// TourPlan represents a trip a client has planned on the platform.
// Plans are soft deleted and excluded from default listings.
type TourPlan struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ClientID      uuid.UUID      `json:"clientId" gorm:"type:uuid;index;not null"`
	StartLocation string         `json:"startLocation" gorm:"type:varchar(100);not null"`
	EndLocation   string         `json:"endLocation" gorm:"type:varchar(100);not null"`
	StartDate     time.Time      `json:"startDate" gorm:"not null"`
	EndDate       time.Time      `json:"endDate" gorm:"not null"`
	Vehicle       string         `json:"vehicle" gorm:"type:varchar(50);not null"`
	NumOfMembers  int            `json:"numOfMembers" gorm:"not null"`
	TravelType    string         `json:"travelType" gorm:"type:varchar(20);not null"`
	Description   string         `json:"description" gorm:"type:text"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}
