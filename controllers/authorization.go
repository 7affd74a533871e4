package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayspot-api/utils"
)

// findOrNotFound loads a resource by id and answers 404 with the given
// message when it does not exist. Not-found is always reported before any
// ownership check so a missing id never leaks through a 403.
func findOrNotFound(c *gin.Context, db *gorm.DB, dest interface{}, id, message string) bool {
	if err := db.First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendNotFound(c, message)
		} else {
			utils.SendInternalError(c, "An unexpected error occurred")
		}
		return false
	}
	return true
}

// authorizeOwner is the single ownership predicate every mutating endpoint
// goes through: the authenticated user must match the id stored on the
// resource (spot owner, review author, booking author).
func authorizeOwner(c *gin.Context, currentUserID, ownerID, message string) bool {
	if currentUserID != ownerID {
		utils.SendForbidden(c, message)
		return false
	}
	return true
}
