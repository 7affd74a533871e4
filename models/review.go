package models

import (
	"time"
)

// MaxReviewImages caps how many images can be attached to a single review.
const MaxReviewImages = 10

type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	UserID    string    `json:"userId" gorm:"not null;size:191;index:idx_reviews_user_spot,unique"`
	SpotID    string    `json:"spotId" gorm:"not null;size:191;index:idx_reviews_user_spot,unique"`
	Review    string    `json:"review" gorm:"not null;type:text"`
	Stars     int       `json:"stars" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	User         User          `json:"-" gorm:"foreignKey:UserID"`
	Spot         Spot          `json:"-" gorm:"foreignKey:SpotID"`
	ReviewImages []ReviewImage `json:"ReviewImages,omitempty" gorm:"foreignKey:ReviewID"`
}

type ReviewImage struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	ReviewID  string    `json:"reviewId" gorm:"not null;size:191;index"`
	URL       string    `json:"url" gorm:"not null;size:500"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Review Review `json:"-" gorm:"foreignKey:ReviewID"`
}
