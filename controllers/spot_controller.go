package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayspot-api/models"
	"stayspot-api/utils"
)

type SpotController struct {
	db *gorm.DB
}

func NewSpotController(db *gorm.DB) *SpotController {
	return &SpotController{db: db}
}

type spotListResponse struct {
	Spots []spotSummary `json:"Spots"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
}

type spotDetailResponse struct {
	spotData
	NumReviews    int             `json:"numReviews"`
	AvgStarRating interface{}     `json:"avgStarRating"`
	SpotImages    []spotImageData `json:"SpotImages"`
	Owner         models.SafeUser `json:"Owner"`
}

type spotFilters struct {
	page     int
	size     int
	minLat   *float64
	maxLat   *float64
	minLng   *float64
	maxLng   *float64
	minPrice *float64
	maxPrice *float64
}

func parseSpotFilters(c *gin.Context) (spotFilters, map[string]string) {
	filters := spotFilters{page: 1, size: 20}
	errors := make(map[string]string)

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			errors["page"] = "Page must be greater than or equal to 1"
		} else {
			filters.page = page
		}
	}
	if raw := c.Query("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > 20 {
			errors["size"] = "Size must be between 1 and 20"
		} else {
			filters.size = size
		}
	}

	parseBound := func(name, message string, valid func(float64) bool) *float64 {
		raw := c.Query(name)
		if raw == "" {
			return nil
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || !valid(value) {
			errors[name] = message
			return nil
		}
		return &value
	}

	filters.minLat = parseBound("minLat", "Minimum latitude is invalid", utils.IsValidLatitude)
	filters.maxLat = parseBound("maxLat", "Maximum latitude is invalid", utils.IsValidLatitude)
	filters.minLng = parseBound("minLng", "Minimum longitude is invalid", utils.IsValidLongitude)
	filters.maxLng = parseBound("maxLng", "Maximum longitude is invalid", utils.IsValidLongitude)
	filters.minPrice = parseBound("minPrice", "Minimum price must be greater than or equal to 0", func(v float64) bool { return v >= 0 })
	filters.maxPrice = parseBound("maxPrice", "Maximum price must be greater than or equal to 0", func(v float64) bool { return v >= 0 })

	if len(errors) > 0 {
		return filters, errors
	}
	return filters, nil
}

// GetSpots handles GET /api/spots with optional pagination and bounding-box
// or price filters.
func (sc *SpotController) GetSpots(c *gin.Context) {
	filters, errors := parseSpotFilters(c)
	if errors != nil {
		utils.SendValidationError(c, errors)
		return
	}

	query := sc.db.Preload("SpotImages").Preload("Reviews")
	if filters.minLat != nil {
		query = query.Where("lat >= ?", *filters.minLat)
	}
	if filters.maxLat != nil {
		query = query.Where("lat <= ?", *filters.maxLat)
	}
	if filters.minLng != nil {
		query = query.Where("lng >= ?", *filters.minLng)
	}
	if filters.maxLng != nil {
		query = query.Where("lng <= ?", *filters.maxLng)
	}
	if filters.minPrice != nil {
		query = query.Where("price >= ?", *filters.minPrice)
	}
	if filters.maxPrice != nil {
		query = query.Where("price <= ?", *filters.maxPrice)
	}

	var spots []models.Spot
	offset := (filters.page - 1) * filters.size
	if err := query.Offset(offset).Limit(filters.size).Find(&spots).Error; err != nil {
		utils.SendInternalError(c, "An error occurred while fetching spots.")
		return
	}

	summaries := make([]spotSummary, 0, len(spots))
	for _, spot := range spots {
		summaries = append(summaries, newSpotSummary(spot))
	}

	c.JSON(http.StatusOK, spotListResponse{Spots: summaries, Page: filters.page, Size: filters.size})
}

// GetCurrentSpots handles GET /api/spots/current: spots owned by the caller.
func (sc *SpotController) GetCurrentSpots(c *gin.Context) {
	userID := c.GetString("user_id")

	var spots []models.Spot
	err := sc.db.Preload("SpotImages").Preload("Reviews").
		Where("owner_id = ?", userID).
		Find(&spots).Error
	if err != nil {
		utils.SendInternalError(c, "An error occurred while fetching spots.")
		return
	}

	summaries := make([]spotSummary, 0, len(spots))
	for _, spot := range spots {
		summaries = append(summaries, newSpotSummary(spot))
	}

	c.JSON(http.StatusOK, gin.H{"Spots": summaries})
}

// GetSpot handles GET /api/spots/:spotId with the aggregated detail shape.
func (sc *SpotController) GetSpot(c *gin.Context) {
	spotID := c.Param("spotId")

	var spot models.Spot
	err := sc.db.Preload("SpotImages").Preload("Reviews").Preload("Owner").
		First(&spot, "id = ?", spotID).Error
	if err != nil {
		utils.SendNotFound(c, "Spot couldn't be found")
		return
	}

	c.JSON(http.StatusOK, spotDetailResponse{
		spotData:      newSpotData(spot),
		NumReviews:    len(spot.Reviews),
		AvgStarRating: utils.CalculateAvgRating(spot.Reviews),
		SpotImages:    newSpotImageList(spot.SpotImages),
		Owner:         spot.Owner.Summary(),
	})
}

// CreateSpot handles POST /api/spots.
func (sc *SpotController) CreateSpot(c *gin.Context) {
	userID := c.GetString("user_id")

	var req utils.SpotInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if errors := utils.ValidateSpotInput(req); errors != nil {
		utils.SendValidationError(c, errors)
		return
	}

	spot := models.Spot{
		ID:          uuid.New().String(),
		OwnerID:     userID,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := sc.db.Create(&spot).Error; err != nil {
		utils.SendInternalError(c, "An error occurred while creating the spot.")
		return
	}

	c.JSON(http.StatusCreated, newSpotData(spot))
}

// UpdateSpot handles PUT /api/spots/:spotId, owner only.
func (sc *SpotController) UpdateSpot(c *gin.Context) {
	userID := c.GetString("user_id")
	spotID := c.Param("spotId")

	var spot models.Spot
	if !findOrNotFound(c, sc.db, &spot, spotID, "Spot couldn't be found") {
		return
	}
	if !authorizeOwner(c, userID, spot.OwnerID, "User is not authorized to edit this spot") {
		return
	}

	var req utils.SpotInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if errors := utils.ValidateSpotInput(req); errors != nil {
		utils.SendValidationError(c, errors)
		return
	}

	updates := map[string]interface{}{
		"address":     req.Address,
		"city":        req.City,
		"state":       req.State,
		"country":     req.Country,
		"lat":         req.Lat,
		"lng":         req.Lng,
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
	}

	if err := sc.db.Model(&spot).Updates(updates).Error; err != nil {
		utils.SendInternalError(c, "An error occurred while updating the spot.")
		return
	}

	c.JSON(http.StatusOK, newSpotData(spot))
}

// DeleteSpot handles DELETE /api/spots/:spotId. The spot and its dependent
// images, reviews, review images and bookings go in one transaction.
func (sc *SpotController) DeleteSpot(c *gin.Context) {
	userID := c.GetString("user_id")
	spotID := c.Param("spotId")

	var spot models.Spot
	if !findOrNotFound(c, sc.db, &spot, spotID, "Spot couldn't be found") {
		return
	}
	if !authorizeOwner(c, userID, spot.OwnerID, "User is not authorized to delete this spot") {
		return
	}

	err := sc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id IN (?)",
			tx.Model(&models.Review{}).Select("id").Where("spot_id = ?", spotID),
		).Delete(&models.ReviewImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("spot_id = ?", spotID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("spot_id = ?", spotID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("spot_id = ?", spotID).Delete(&models.SpotImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&spot).Error
	})
	if err != nil {
		utils.SendInternalError(c, "An error occurred while deleting the spot.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
}

type AddSpotImageRequest struct {
	URL     string `json:"url" binding:"required"`
	Preview bool   `json:"preview"`
}

// AddSpotImage handles POST /api/spots/:spotId/images. A new preview image
// clears the preview flag on its siblings so at most one preview exists.
func (sc *SpotController) AddSpotImage(c *gin.Context) {
	userID := c.GetString("user_id")
	spotID := c.Param("spotId")

	var spot models.Spot
	if !findOrNotFound(c, sc.db, &spot, spotID, "Spot couldn't be found") {
		return
	}
	if !authorizeOwner(c, userID, spot.OwnerID, "Forbidden. You do not have permission to add an image to this spot.") {
		return
	}

	var req AddSpotImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	image := models.SpotImage{
		ID:      uuid.New().String(),
		SpotID:  spotID,
		URL:     req.URL,
		Preview: req.Preview,
	}

	err := sc.db.Transaction(func(tx *gorm.DB) error {
		if req.Preview {
			if err := tx.Model(&models.SpotImage{}).
				Where("spot_id = ? AND preview = ?", spotID, true).
				Update("preview", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&image).Error
	})
	if err != nil {
		utils.SendInternalError(c, "An error occurred while adding the image.")
		return
	}

	c.JSON(http.StatusOK, spotImageData{ID: image.ID, URL: image.URL, Preview: image.Preview})
}
