package utils

import (
	"regexp"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidUsername enforces the 4-30 char bound and rejects email-shaped
// usernames.
func IsValidUsername(username string) bool {
	if len(username) < 4 || len(username) > 30 {
		return false
	}
	return !emailRegex.MatchString(username)
}

func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

// SpotInput carries the mutable spot fields shared by create and update.
type SpotInput struct {
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ValidateSpotInput checks every field and returns the full per-field error
// map so a single response reports everything that is wrong.
func ValidateSpotInput(input SpotInput) map[string]string {
	errors := make(map[string]string)

	if input.Address == "" {
		errors["address"] = "Street address is required"
	}
	if input.City == "" {
		errors["city"] = "City is required"
	}
	if input.State == "" {
		errors["state"] = "State is required"
	}
	if input.Country == "" {
		errors["country"] = "Country is required"
	}
	if !IsValidLatitude(input.Lat) {
		errors["lat"] = "Latitude must be within -90 and 90"
	}
	if !IsValidLongitude(input.Lng) {
		errors["lng"] = "Longitude must be within -180 and 180"
	}
	if input.Name == "" || len(input.Name) > 50 {
		errors["name"] = "Name must be less than 50 characters"
	}
	if input.Description == "" {
		errors["description"] = "Description is required"
	}
	if input.Price < 0 {
		errors["price"] = "Price per day must be a positive number"
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}

// ValidateReviewInput checks the review text and star bounds.
func ValidateReviewInput(review string, stars int) map[string]string {
	errors := make(map[string]string)

	if review == "" {
		errors["review"] = "Review text is required"
	}
	if stars < 1 || stars > 5 {
		errors["stars"] = "Stars must be an integer from 1 to 5"
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}

// ParseBookingDates validates and parses the booking date pair. The zero
// times are returned together with the error map when validation fails.
// requireFuture additionally rejects start dates before today.
func ParseBookingDates(startDate, endDate string, requireFuture bool) (time.Time, time.Time, map[string]string) {
	errors := make(map[string]string)

	var start, end time.Time
	var err error

	if startDate == "" {
		errors["startDate"] = "startDate is required"
	} else if start, err = time.Parse(DateLayout, startDate); err != nil {
		errors["startDate"] = "startDate must be a valid date"
	}

	if endDate == "" {
		errors["endDate"] = "endDate is required"
	} else if end, err = time.Parse(DateLayout, endDate); err != nil {
		errors["endDate"] = "endDate must be a valid date"
	}

	if len(errors) > 0 {
		return time.Time{}, time.Time{}, errors
	}

	if !end.After(start) {
		errors["endDate"] = "endDate cannot be on or before startDate"
	}
	if requireFuture {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if start.Before(today) {
			errors["startDate"] = "startDate cannot be in the past"
		}
	}

	if len(errors) > 0 {
		return time.Time{}, time.Time{}, errors
	}
	return start, end, nil
}
