package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"motomart-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Listing{},
		&models.Testimonial{},
		&models.Submission{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedData populates the database with sample content for development.
func SeedData(db *gorm.DB) error {
	var listingCount int64
	db.Model(&models.Listing{}).Count(&listingCount)

	if listingCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	sampleListings := []models.Listing{
		{
			Make:               "Honda",
			Model:              "CB350",
			Year:               2021,
			Price:              150000,
			KmDriven:           5000,
			EngineDisplacement: 350,
			Registration:       "BR06AB1234",
			Condition:          models.ConditionGood,
			Description:        "Well maintained single owner bike.",
			Images:             models.StringSliceType{},
		},
		{
			Make:               "Royal Enfield",
			Model:              "Classic 350",
			Year:               2019,
			Price:              120000,
			KmDriven:           18000,
			EngineDisplacement: 346,
			Registration:       "MH12CD5678",
			Condition:          models.ConditionExcellent,
			Description:        "Serviced regularly, new tyres fitted last year.",
			Images:             models.StringSliceType{},
		},
	}

	for _, listing := range sampleListings {
		if err := db.Create(&listing).Error; err != nil {
			fmt.Printf("Warning: Could not create sample listing %s %s: %v\n", listing.Make, listing.Model, err)
		}
	}

	sampleTestimonials := []models.Testimonial{
		{
			Name:     "Ravi Kumar",
			Location: "Pune",
			Review:   "Smooth process from inspection to payment, sold my bike in two days.",
			Rating:   5,
		},
		{
			Name:     "Ananya Shah",
			Location: "Bengaluru",
			Review:   "Fair price and honest condition report. Would recommend to friends.",
			Rating:   4,
		},
	}

	for _, testimonial := range sampleTestimonials {
		if err := db.Create(&testimonial).Error; err != nil {
			fmt.Printf("Warning: Could not create sample testimonial from %s: %v\n", testimonial.Name, err)
		}
	}

	fmt.Println("Database seeded with sample listings and testimonials")
	return nil
}
