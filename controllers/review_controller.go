package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayspot-api/models"
	"stayspot-api/utils"
)

type ReviewController struct {
	db *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

type ReviewRequest struct {
	Review string `json:"review"`
	Stars  int    `json:"stars"`
}

type spotReviewItem struct {
	reviewData
	User         models.SafeUser   `json:"User"`
	ReviewImages []reviewImageData `json:"ReviewImages"`
}

type currentReviewItem struct {
	reviewData
	User         models.SafeUser   `json:"User"`
	Spot         spotRef           `json:"Spot"`
	ReviewImages []reviewImageData `json:"ReviewImages"`
}

// GetSpotReviews handles GET /api/spots/:spotId/reviews (public).
func (rc *ReviewController) GetSpotReviews(c *gin.Context) {
	spotID := c.Param("spotId")

	var spot models.Spot
	if !findOrNotFound(c, rc.db, &spot, spotID, "Spot couldn't be found") {
		return
	}

	var reviews []models.Review
	err := rc.db.Preload("User").Preload("ReviewImages").
		Where("spot_id = ?", spotID).
		Find(&reviews).Error
	if err != nil {
		utils.SendInternalError(c, "An error occurred while fetching reviews.")
		return
	}

	items := make([]spotReviewItem, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, spotReviewItem{
			reviewData:   newReviewData(review),
			User:         review.User.Summary(),
			ReviewImages: newReviewImageList(review.ReviewImages),
		})
	}

	c.JSON(http.StatusOK, gin.H{"Reviews": items})
}

// CreateSpotReview handles POST /api/spots/:spotId/reviews. One review per
// user per spot.
func (rc *ReviewController) CreateSpotReview(c *gin.Context) {
	userID := c.GetString("user_id")
	spotID := c.Param("spotId")

	var spot models.Spot
	if !findOrNotFound(c, rc.db, &spot, spotID, "Spot couldn't be found") {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if errors := utils.ValidateReviewInput(req.Review, req.Stars); errors != nil {
		utils.SendValidationError(c, errors)
		return
	}

	var existing models.Review
	if err := rc.db.Where("user_id = ? AND spot_id = ?", userID, spotID).First(&existing).Error; err == nil {
		utils.SendForbidden(c, "User already has a review for this spot")
		return
	}

	review := models.Review{
		ID:     uuid.New().String(),
		UserID: userID,
		SpotID: spotID,
		Review: req.Review,
		Stars:  req.Stars,
	}

	if err := rc.db.Create(&review).Error; err != nil {
		utils.SendInternalError(c, "An error occurred while creating the review.")
		return
	}

	c.JSON(http.StatusCreated, newReviewData(review))
}

// GetCurrentReviews handles GET /api/reviews/current.
func (rc *ReviewController) GetCurrentReviews(c *gin.Context) {
	userID := c.GetString("user_id")

	var reviews []models.Review
	err := rc.db.Preload("User").Preload("ReviewImages").
		Preload("Spot").Preload("Spot.SpotImages").
		Where("user_id = ?", userID).
		Find(&reviews).Error
	if err != nil {
		utils.SendInternalError(c, "An error occurred while fetching reviews.")
		return
	}

	items := make([]currentReviewItem, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, currentReviewItem{
			reviewData:   newReviewData(review),
			User:         review.User.Summary(),
			Spot:         newSpotRef(review.Spot),
			ReviewImages: newReviewImageList(review.ReviewImages),
		})
	}

	c.JSON(http.StatusOK, gin.H{"Reviews": items})
}

// UpdateReview handles PUT /api/reviews/:reviewId, author only.
func (rc *ReviewController) UpdateReview(c *gin.Context) {
	userID := c.GetString("user_id")
	reviewID := c.Param("reviewId")

	var review models.Review
	if !findOrNotFound(c, rc.db, &review, reviewID, "Review couldn't be found") {
		return
	}
	if !authorizeOwner(c, userID, review.UserID, "Forbidden. You do not own this review.") {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if errors := utils.ValidateReviewInput(req.Review, req.Stars); errors != nil {
		utils.SendValidationError(c, errors)
		return
	}

	updates := map[string]interface{}{
		"review": req.Review,
		"stars":  req.Stars,
	}

	if err := rc.db.Model(&review).Updates(updates).Error; err != nil {
		utils.SendInternalError(c, "An error occurred while updating the review.")
		return
	}

	c.JSON(http.StatusOK, newReviewData(review))
}

// DeleteReview handles DELETE /api/reviews/:reviewId, author only. Review
// images go with the review.
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	userID := c.GetString("user_id")
	reviewID := c.Param("reviewId")

	var review models.Review
	if !findOrNotFound(c, rc.db, &review, reviewID, "Review couldn't be found") {
		return
	}
	if !authorizeOwner(c, userID, review.UserID, "Forbidden. You do not own this review.") {
		return
	}

	err := rc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", reviewID).Delete(&models.ReviewImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&review).Error
	})
	if err != nil {
		utils.SendInternalError(c, "An error occurred while deleting the review.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
}

type AddReviewImageRequest struct {
	URL string `json:"url" binding:"required"`
}

// AddReviewImage handles POST /api/reviews/:reviewId/images, capped at
// MaxReviewImages per review.
func (rc *ReviewController) AddReviewImage(c *gin.Context) {
	userID := c.GetString("user_id")
	reviewID := c.Param("reviewId")

	var review models.Review
	if !findOrNotFound(c, rc.db, &review, reviewID, "Review couldn't be found") {
		return
	}
	if !authorizeOwner(c, userID, review.UserID, "Forbidden. You do not own this review.") {
		return
	}

	var req AddReviewImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	var imageCount int64
	if err := rc.db.Model(&models.ReviewImage{}).Where("review_id = ?", reviewID).Count(&imageCount).Error; err != nil {
		utils.SendInternalError(c, "An error occurred while adding the image.")
		return
	}
	if imageCount >= models.MaxReviewImages {
		utils.SendForbidden(c, "Maximum number of images for this resource was reached")
		return
	}

	image := models.ReviewImage{
		ID:       uuid.New().String(),
		ReviewID: reviewID,
		URL:      req.URL,
	}

	if err := rc.db.Create(&image).Error; err != nil {
		utils.SendInternalError(c, "An error occurred while adding the image.")
		return
	}

	c.JSON(http.StatusOK, reviewImageData{ID: image.ID, URL: image.URL})
}
