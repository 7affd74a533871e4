package utils

import (
	"math"
	"time"

	"stayspot-api/models"
)

const (
	// NoRatingsSentinel is returned instead of a number for spots without reviews.
	NoRatingsSentinel = "No ratings yet"
	// NoPreviewSentinel is returned when no image is flagged as preview.
	NoPreviewSentinel = "No preview image"

	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
)

// CalculateAvgRating returns the mean star rating rounded to one decimal
// place, or NoRatingsSentinel for an empty review set.
func CalculateAvgRating(reviews []models.Review) interface{} {
	if len(reviews) == 0 {
		return NoRatingsSentinel
	}

	total := 0
	for _, review := range reviews {
		total += review.Stars
	}

	avg := float64(total) / float64(len(reviews))
	return math.Round(avg*10) / 10
}

// FindPreviewImage returns the URL of the first image flagged preview=true.
// The data model intends at most one such image per spot, but zero or
// several are tolerated (first match wins).
func FindPreviewImage(images []models.SpotImage) string {
	for _, image := range images {
		if image.Preview {
			return image.URL
		}
	}
	return NoPreviewSentinel
}

func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
