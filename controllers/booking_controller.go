package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayspot-api/models"
	"stayspot-api/repositories"
	"stayspot-api/services"
	"stayspot-api/utils"
)

type BookingController struct {
	db           *gorm.DB
	bookingRepo  *repositories.BookingRepository
	emailService *services.EmailService
}

func NewBookingController(db *gorm.DB, emailService *services.EmailService) *BookingController {
	return &BookingController{
		db:           db,
		bookingRepo:  repositories.NewBookingRepository(db),
		emailService: emailService,
	}
}

type BookingRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// guestBookingItem is what non-owners see: dates only, no guest identity.
type guestBookingItem struct {
	SpotID    string `json:"spotId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type ownerBookingItem struct {
	bookingData
	User models.SafeUser `json:"User"`
}

type currentBookingItem struct {
	bookingData
	Spot spotRef `json:"Spot"`
}

// GetSpotBookings handles GET /api/spots/:spotId/bookings. The spot owner
// sees guest identity; everyone else sees dates only.
func (bc *BookingController) GetSpotBookings(c *gin.Context) {
	userID := c.GetString("user_id")
	spotID := c.Param("spotId")

	var spot models.Spot
	if !findOrNotFound(c, bc.db, &spot, spotID, "Spot couldn't be found") {
		return
	}

	var bookings []models.Booking
	if err := bc.db.Preload("User").Where("spot_id = ?", spotID).Find(&bookings).Error; err != nil {
		utils.SendInternalError(c, "An error occurred while fetching bookings.")
		return
	}

	if spot.OwnerID == userID {
		items := make([]ownerBookingItem, 0, len(bookings))
		for _, booking := range bookings {
			items = append(items, ownerBookingItem{
				bookingData: newBookingData(booking),
				User:        booking.User.Summary(),
			})
		}
		c.JSON(http.StatusOK, gin.H{"Bookings": items})
		return
	}

	items := make([]guestBookingItem, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, guestBookingItem{
			SpotID:    booking.SpotID,
			StartDate: utils.FormatDate(booking.StartDate),
			EndDate:   utils.FormatDate(booking.EndDate),
		})
	}
	c.JSON(http.StatusOK, gin.H{"Bookings": items})
}

// CreateSpotBooking handles POST /api/spots/:spotId/bookings. Owners may not
// book their own spot; overlapping dates are rejected without writing
// anything.
func (bc *BookingController) CreateSpotBooking(c *gin.Context) {
	userID := c.GetString("user_id")
	spotID := c.Param("spotId")

	var spot models.Spot
	if !findOrNotFound(c, bc.db, &spot, spotID, "Spot couldn't be found") {
		return
	}
	if spot.OwnerID == userID {
		utils.SendForbidden(c, "Spot must NOT belong to the current user")
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	start, end, dateErrors := utils.ParseBookingDates(req.StartDate, req.EndDate, true)
	if dateErrors != nil {
		utils.SendValidationError(c, dateErrors)
		return
	}

	booking := models.Booking{
		ID:        uuid.New().String(),
		SpotID:    spotID,
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	}

	if err := bc.bookingRepo.Create(&booking); err != nil {
		var conflict *repositories.ConflictError
		if errors.As(err, &conflict) {
			utils.SendErrorWithFields(c, http.StatusForbidden, conflict.Error(), conflict.Fields())
			return
		}
		utils.SendInternalError(c, "An error occurred while creating the booking.")
		return
	}

	go bc.sendConfirmation(userID, spot.Name, booking)

	c.JSON(http.StatusCreated, newBookingData(booking))
}

// GetCurrentBookings handles GET /api/bookings/current.
func (bc *BookingController) GetCurrentBookings(c *gin.Context) {
	userID := c.GetString("user_id")

	var bookings []models.Booking
	err := bc.db.Preload("Spot").Preload("Spot.SpotImages").
		Where("user_id = ?", userID).
		Find(&bookings).Error
	if err != nil {
		utils.SendInternalError(c, "An error occurred while fetching bookings.")
		return
	}

	items := make([]currentBookingItem, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, currentBookingItem{
			bookingData: newBookingData(booking),
			Spot:        newSpotRef(booking.Spot),
		})
	}

	c.JSON(http.StatusOK, gin.H{"Bookings": items})
}

// UpdateBooking handles PUT /api/bookings/:bookingId, author only. The
// conflict check excludes the booking being edited; bookings that have
// already ended cannot change.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	userID := c.GetString("user_id")
	bookingID := c.Param("bookingId")

	var booking models.Booking
	if !findOrNotFound(c, bc.db, &booking, bookingID, "Booking couldn't be found") {
		return
	}
	if !authorizeOwner(c, userID, booking.UserID, "User is not authorized to edit this booking") {
		return
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if booking.EndDate.Before(today) {
		utils.SendForbidden(c, "Past bookings can't be modified")
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	start, end, dateErrors := utils.ParseBookingDates(req.StartDate, req.EndDate, true)
	if dateErrors != nil {
		utils.SendValidationError(c, dateErrors)
		return
	}

	if err := bc.bookingRepo.Update(&booking, start, end); err != nil {
		var conflict *repositories.ConflictError
		if errors.As(err, &conflict) {
			utils.SendErrorWithFields(c, http.StatusForbidden, conflict.Error(), conflict.Fields())
			return
		}
		utils.SendInternalError(c, "An error occurred while updating the booking.")
		return
	}

	// Reload so the response carries the persisted timestamps, not the
	// pre-update struct.
	if err := bc.db.First(&booking, "id = ?", booking.ID).Error; err != nil {
		utils.SendInternalError(c, "An error occurred while updating the booking.")
		return
	}
	c.JSON(http.StatusOK, newBookingData(booking))
}

// DeleteBooking handles DELETE /api/bookings/:bookingId. Either the guest or
// the spot owner may cancel, but not once the stay has started.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	userID := c.GetString("user_id")
	bookingID := c.Param("bookingId")

	var booking models.Booking
	if err := bc.db.Preload("Spot").First(&booking, "id = ?", bookingID).Error; err != nil {
		utils.SendNotFound(c, "Booking couldn't be found")
		return
	}

	if booking.UserID != userID && booking.Spot.OwnerID != userID {
		utils.SendForbidden(c, "User is not authorized to delete this booking")
		return
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !booking.StartDate.After(today) {
		utils.SendForbidden(c, "Bookings that have been started can't be deleted")
		return
	}

	if err := bc.db.Delete(&booking).Error; err != nil {
		utils.SendInternalError(c, "An error occurred while deleting the booking.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully deleted"})
}

func (bc *BookingController) sendConfirmation(userID, spotName string, booking models.Booking) {
	var user models.User
	if err := bc.db.First(&user, "id = ?", userID).Error; err != nil {
		return
	}

	err := bc.emailService.SendBookingConfirmation(
		user.Email,
		user.FirstName,
		spotName,
		utils.FormatDate(booking.StartDate),
		utils.FormatDate(booking.EndDate),
	)
	if err != nil {
		fmt.Printf("Failed to send booking confirmation: %v\n", err)
	}
}
