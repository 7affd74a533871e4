package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayspot-api/models"
	"stayspot-api/utils"
)

// ImageController serves the standalone spot-image and review-image delete
// endpoints. Ownership follows the parent resource: the spot's owner for
// spot images, the review's author for review images.
type ImageController struct {
	db *gorm.DB
}

func NewImageController(db *gorm.DB) *ImageController {
	return &ImageController{db: db}
}

// DeleteSpotImage handles DELETE /api/spot-images/:imageId.
func (ic *ImageController) DeleteSpotImage(c *gin.Context) {
	userID := c.GetString("user_id")
	imageID := c.Param("imageId")

	var image models.SpotImage
	if err := ic.db.Preload("Spot").First(&image, "id = ?", imageID).Error; err != nil {
		utils.SendNotFound(c, "Spot Image couldn't be found")
		return
	}

	if !authorizeOwner(c, userID, image.Spot.OwnerID, "Forbidden. You do not have permission to delete this image.") {
		return
	}

	if err := ic.db.Delete(&image).Error; err != nil {
		utils.SendInternalError(c, "An error occurred while deleting the spot image.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
}

// DeleteReviewImage handles DELETE /api/review-images/:imageId.
func (ic *ImageController) DeleteReviewImage(c *gin.Context) {
	userID := c.GetString("user_id")
	imageID := c.Param("imageId")

	var image models.ReviewImage
	if err := ic.db.Preload("Review").First(&image, "id = ?", imageID).Error; err != nil {
		utils.SendNotFound(c, "Review Image couldn't be found")
		return
	}

	if !authorizeOwner(c, userID, image.Review.UserID, "Forbidden. You don't have permission to delete this image.") {
		return
	}

	if err := ic.db.Delete(&image).Error; err != nil {
		utils.SendInternalError(c, "An error occurred while deleting the review image.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
}
