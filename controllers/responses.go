package controllers

import (
	"stayspot-api/models"
	"stayspot-api/utils"
)

// spotData is the base serialization of a spot with timestamps rendered in
// the fixed API layout.
type spotData struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"ownerId"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func newSpotData(spot models.Spot) spotData {
	return spotData{
		ID:          spot.ID,
		OwnerID:     spot.OwnerID,
		Address:     spot.Address,
		City:        spot.City,
		State:       spot.State,
		Country:     spot.Country,
		Lat:         spot.Lat,
		Lng:         spot.Lng,
		Name:        spot.Name,
		Description: spot.Description,
		Price:       spot.Price,
		CreatedAt:   utils.FormatDateTime(spot.CreatedAt),
		UpdatedAt:   utils.FormatDateTime(spot.UpdatedAt),
	}
}

// spotSummary is the list-view shape: derived rating and preview image, never
// the raw Reviews/SpotImages collections.
type spotSummary struct {
	spotData
	AvgRating    interface{} `json:"avgRating"`
	PreviewImage string      `json:"previewImage"`
}

func newSpotSummary(spot models.Spot) spotSummary {
	return spotSummary{
		spotData:     newSpotData(spot),
		AvgRating:    utils.CalculateAvgRating(spot.Reviews),
		PreviewImage: utils.FindPreviewImage(spot.SpotImages),
	}
}

// spotRef is the compact spot embedded in booking and review listings.
type spotRef struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"ownerId"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PreviewImage string  `json:"previewImage"`
}

func newSpotRef(spot models.Spot) spotRef {
	return spotRef{
		ID:           spot.ID,
		OwnerID:      spot.OwnerID,
		Address:      spot.Address,
		City:         spot.City,
		State:        spot.State,
		Country:      spot.Country,
		Lat:          spot.Lat,
		Lng:          spot.Lng,
		Name:         spot.Name,
		Price:        spot.Price,
		PreviewImage: utils.FindPreviewImage(spot.SpotImages),
	}
}

type spotImageData struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Preview bool   `json:"preview"`
}

func newSpotImageList(images []models.SpotImage) []spotImageData {
	list := make([]spotImageData, 0, len(images))
	for _, image := range images {
		list = append(list, spotImageData{ID: image.ID, URL: image.URL, Preview: image.Preview})
	}
	return list
}

type reviewImageData struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func newReviewImageList(images []models.ReviewImage) []reviewImageData {
	list := make([]reviewImageData, 0, len(images))
	for _, image := range images {
		list = append(list, reviewImageData{ID: image.ID, URL: image.URL})
	}
	return list
}

type reviewData struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	SpotID    string `json:"spotId"`
	Review    string `json:"review"`
	Stars     int    `json:"stars"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func newReviewData(review models.Review) reviewData {
	return reviewData{
		ID:        review.ID,
		UserID:    review.UserID,
		SpotID:    review.SpotID,
		Review:    review.Review,
		Stars:     review.Stars,
		CreatedAt: utils.FormatDateTime(review.CreatedAt),
		UpdatedAt: utils.FormatDateTime(review.UpdatedAt),
	}
}

type bookingData struct {
	ID        string `json:"id"`
	SpotID    string `json:"spotId"`
	UserID    string `json:"userId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func newBookingData(booking models.Booking) bookingData {
	return bookingData{
		ID:        booking.ID,
		SpotID:    booking.SpotID,
		UserID:    booking.UserID,
		StartDate: utils.FormatDate(booking.StartDate),
		EndDate:   utils.FormatDate(booking.EndDate),
		CreatedAt: utils.FormatDateTime(booking.CreatedAt),
		UpdatedAt: utils.FormatDateTime(booking.UpdatedAt),
	}
}
