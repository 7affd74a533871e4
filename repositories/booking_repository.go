package repositories

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stayspot-api/models"
)

// ConflictError reports a booking date collision and which of the candidate
// fields collided.
type ConflictError struct {
	StartConflict bool
	EndConflict   bool
}

func (e *ConflictError) Error() string {
	return "Sorry, this spot is already booked for the specified dates"
}

// Fields maps the conflicting date fields to their error messages.
func (e *ConflictError) Fields() map[string]string {
	fields := make(map[string]string)
	if e.StartConflict {
		fields["startDate"] = "Start date conflicts with an existing booking"
	}
	if e.EndConflict {
		fields["endDate"] = "End date conflicts with an existing booking"
	}
	return fields
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// checkConflict applies the canonical overlap rule at day granularity:
// two ranges conflict when candidateStart <= existingEnd and
// candidateEnd >= existingStart. Both boundaries are inclusive, so a booking
// ending on day D conflicts with one starting on day D (no same-day
// turnover). excludeID skips the booking being edited.
func checkConflict(existing []models.Booking, start, end time.Time, excludeID string) *ConflictError {
	for _, booking := range existing {
		if excludeID != "" && booking.ID == excludeID {
			continue
		}

		if start.After(booking.EndDate) || end.Before(booking.StartDate) {
			continue
		}

		conflict := &ConflictError{}
		if !start.Before(booking.StartDate) && !start.After(booking.EndDate) {
			conflict.StartConflict = true
		}
		if !end.Before(booking.StartDate) && !end.After(booking.EndDate) {
			conflict.EndConflict = true
		}
		// A candidate range that fully encloses an existing booking
		// conflicts on both fields.
		if !conflict.StartConflict && !conflict.EndConflict {
			conflict.StartConflict = true
			conflict.EndConflict = true
		}
		return conflict
	}

	return nil
}

// lockSpotBookings fetches every booking for the spot, taking row locks
// where the dialect supports them so two concurrent overlapping requests
// cannot both pass the conflict check. SQLite serializes writing
// transactions itself and rejects FOR UPDATE.
func lockSpotBookings(tx *gorm.DB, spotID string) ([]models.Booking, error) {
	query := tx.Where("spot_id = ?", spotID)
	if tx.Dialector.Name() == "mysql" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var existing []models.Booking
	if err := query.Find(&existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Create inserts the booking after verifying it conflicts with no existing
// booking for the spot. The check and the insert run in one transaction;
// on conflict nothing is written and a *ConflictError is returned.
func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		existing, err := lockSpotBookings(tx, booking.SpotID)
		if err != nil {
			return err
		}

		if conflict := checkConflict(existing, booking.StartDate, booking.EndDate, ""); conflict != nil {
			return conflict
		}

		return tx.Create(booking).Error
	})
}

// Update re-runs the conflict check for the new date range, excluding the
// booking itself, and persists the change atomically.
func (r *BookingRepository) Update(booking *models.Booking, start, end time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		existing, err := lockSpotBookings(tx, booking.SpotID)
		if err != nil {
			return err
		}

		if conflict := checkConflict(existing, start, end, booking.ID); conflict != nil {
			return conflict
		}

		return tx.Model(booking).Updates(map[string]interface{}{
			"start_date": start,
			"end_date":   end,
			"updated_at": time.Now(),
		}).Error
	})
}

// FindStartingOn returns bookings whose stay begins on the given day,
// preloaded with guest and spot for the reminder mail.
func (r *BookingRepository) FindStartingOn(day time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("User").Preload("Spot").
		Where("start_date = ?", day).
		Find(&bookings).Error
	return bookings, err
}
