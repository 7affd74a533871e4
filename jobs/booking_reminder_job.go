package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"stayspot-api/repositories"
	"stayspot-api/services"
	"stayspot-api/utils"
)

// BookingReminderJob periodically emails guests whose bookings start the
// next day.
type BookingReminderJob struct {
	bookingRepo  *repositories.BookingRepository
	emailService *services.EmailService
	ticker       *time.Ticker
	done         chan bool
}

func NewBookingReminderJob(db *gorm.DB, emailService *services.EmailService, interval time.Duration) *BookingReminderJob {
	return &BookingReminderJob{
		bookingRepo:  repositories.NewBookingRepository(db),
		emailService: emailService,
		ticker:       time.NewTicker(interval),
		done:         make(chan bool),
	}
}

// Start begins the reminder job
func (j *BookingReminderJob) Start() {
	fmt.Println("Booking reminder job started")

	go func() {
		// Run immediately on start
		j.remind()

		for {
			select {
			case <-j.ticker.C:
				j.remind()
			case <-j.done:
				fmt.Println("Booking reminder job stopped")
				return
			}
		}
	}()
}

// Stop stops the reminder job
func (j *BookingReminderJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *BookingReminderJob) remind() {
	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)

	bookings, err := j.bookingRepo.FindStartingOn(tomorrow)
	if err != nil {
		fmt.Printf("Error fetching upcoming bookings: %v\n", err)
		return
	}

	for _, booking := range bookings {
		err := j.emailService.SendBookingReminder(
			booking.User.Email,
			booking.User.FirstName,
			booking.Spot.Name,
			utils.FormatDate(booking.StartDate),
		)
		if err != nil {
			fmt.Printf("Failed to send booking reminder to %s: %v\n", booking.User.Email, err)
		}
	}
}
