package models

import (
	"time"
)

// Booking reserves a spot for the half-open range of nights between
// StartDate and EndDate. Dates are stored at day granularity; the conflict
// rules live in the booking repository.
type Booking struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	SpotID    string    `json:"spotId" gorm:"not null;size:191;index:idx_bookings_spot_dates"`
	UserID    string    `json:"userId" gorm:"not null;size:191;index"`
	StartDate time.Time `json:"startDate" gorm:"not null;index:idx_bookings_spot_dates"`
	EndDate   time.Time `json:"endDate" gorm:"not null;index:idx_bookings_spot_dates"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	Spot Spot `json:"-" gorm:"foreignKey:SpotID"`
	User User `json:"-" gorm:"foreignKey:UserID"`
}
