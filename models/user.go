package models

import (
	"time"
)

type User struct {
	ID             string    `json:"id" gorm:"primaryKey;size:191"`
	FirstName      string    `json:"firstName" gorm:"not null;size:255"`
	LastName       string    `json:"lastName" gorm:"not null;size:255"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null;size:30"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	HashedPassword string    `json:"-" gorm:"not null;size:255"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Relationships
	Spots    []Spot    `json:"spots,omitempty" gorm:"foreignKey:OwnerID"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}

// SafeUser is the serializable projection of a User with the credential
// fields stripped, used in auth responses and owner/guest summaries.
type SafeUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Username  string `json:"username,omitempty"`
}

func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
	}
}

// Summary returns the short identity shape embedded in reviews and
// owner-visible bookings (no email/username).
func (u *User) Summary() SafeUser {
	return SafeUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
