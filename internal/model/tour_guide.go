package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TourGuide represents a guide offering services on the platform.
// Guides are soft deleted so received reviews keep a valid reference.
type TourGuide struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string         `json:"name" gorm:"type:varchar(100);not null"`
	Email         string         `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	NICNumber     string         `json:"nicNumber" gorm:"type:varchar(20);uniqueIndex;not null"`
	ContactNumber string         `json:"contactNumber" gorm:"type:varchar(20);not null"`
	Username      string         `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	Password      string         `json:"-" gorm:"type:varchar(100);not null"`
	IsActive      bool           `json:"isActive" gorm:"default:true"`
	ImageURL      string         `json:"imageUrl" gorm:"type:text"`
	ServiceAreas  pq.StringArray `json:"serviceAreas" gorm:"type:text[]"`
	Languages     pq.StringArray `json:"languages" gorm:"type:text[]"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Reviews []TourGuideReview `json:"reviews,omitempty" gorm:"foreignKey:TourGuideID"`
}
