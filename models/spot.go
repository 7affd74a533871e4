package models

import (
	"time"
)

type Spot struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	OwnerID     string    `json:"ownerId" gorm:"not null;size:191;index"`
	Address     string    `json:"address" gorm:"not null;size:255"`
	City        string    `json:"city" gorm:"not null;size:255"`
	State       string    `json:"state" gorm:"not null;size:255"`
	Country     string    `json:"country" gorm:"not null;size:255"`
	Lat         float64   `json:"lat" gorm:"not null"`
	Lng         float64   `json:"lng" gorm:"not null"`
	Name        string    `json:"name" gorm:"not null;size:50"`
	Description string    `json:"description" gorm:"not null;type:text"`
	Price       float64   `json:"price" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relationships
	Owner      User        `json:"-" gorm:"foreignKey:OwnerID"`
	SpotImages []SpotImage `json:"SpotImages,omitempty" gorm:"foreignKey:SpotID"`
	Reviews    []Review    `json:"Reviews,omitempty" gorm:"foreignKey:SpotID"`
	Bookings   []Booking   `json:"Bookings,omitempty" gorm:"foreignKey:SpotID"`
}

type SpotImage struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	SpotID    string    `json:"spotId" gorm:"not null;size:191;index"`
	URL       string    `json:"url" gorm:"not null;size:500"`
	Preview   bool      `json:"preview" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Spot Spot `json:"-" gorm:"foreignKey:SpotID"`
}
