package database

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stayspot-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Spot{},
		&models.SpotImage{},
		&models.Review{},
		&models.ReviewImage{},
		&models.Booking{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// One review per user per spot (also enforced in the handler; the
	// constraint backstops races)
	if err := db.Exec("ALTER TABLE reviews ADD CONSTRAINT uk_reviews_user_spot UNIQUE (user_id, spot_id)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for reviews: %v\n", err)
	}

	// Bookings must span at least one night
	if err := db.Exec("ALTER TABLE bookings ADD CONSTRAINT ck_bookings_date_order CHECK (end_date > start_date)").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for bookings: %v\n", err)
	}

	// Stars bounds
	if err := db.Exec("ALTER TABLE reviews ADD CONSTRAINT ck_reviews_stars CHECK (stars BETWEEN 1 AND 5)").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for review stars: %v\n", err)
	}

	return nil
}

// SeedData populates the database with a few demo listings for development.
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	password, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	testUsers := []models.User{
		{
			ID:             "user-1",
			FirstName:      "Demo",
			LastName:       "Host",
			Username:       "demo_host",
			Email:          "host@example.com",
			HashedPassword: string(password),
		},
		{
			ID:             "user-2",
			FirstName:      "Demo",
			LastName:       "Guest",
			Username:       "demo_guest",
			Email:          "guest@example.com",
			HashedPassword: string(password),
		},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: Could not create test user %s: %v\n", user.Username, err)
		}
	}

	testSpots := []models.Spot{
		{
			ID:          "spot-1",
			OwnerID:     "user-1",
			Address:     "123 Ocean Drive",
			City:        "Santa Cruz",
			State:       "California",
			Country:     "United States",
			Lat:         36.9741,
			Lng:         -122.0308,
			Name:        "Surfside Cottage",
			Description: "Two-bedroom cottage a short walk from the boardwalk.",
			Price:       185,
		},
		{
			ID:          "spot-2",
			OwnerID:     "user-1",
			Address:     "48 Alpine Way",
			City:        "Truckee",
			State:       "California",
			Country:     "United States",
			Lat:         39.3280,
			Lng:         -120.1833,
			Name:        "Donner Lake Cabin",
			Description: "A-frame cabin with lake views and a wood stove.",
			Price:       240,
		},
	}

	for _, spot := range testSpots {
		if err := db.Create(&spot).Error; err != nil {
			fmt.Printf("Warning: Could not create test spot %s: %v\n", spot.Name, err)
		}
	}

	testImages := []models.SpotImage{
		{ID: "spot-image-1", SpotID: "spot-1", URL: "https://picsum.photos/600/400?random=1", Preview: true},
		{ID: "spot-image-2", SpotID: "spot-2", URL: "https://picsum.photos/600/400?random=2", Preview: true},
	}

	for _, image := range testImages {
		if err := db.Create(&image).Error; err != nil {
			fmt.Printf("Warning: Could not create test spot image: %v\n", err)
		}
	}

	fmt.Println("Database seeded with demo users and spots")
	return nil
}
