package database

import (
	"fmt"
	"os"

	"parcel-delivery/logger"
	logModel "parcel-delivery/models/log"
	"parcel-delivery/models/parcel"
	"parcel-delivery/models/payment"
	"parcel-delivery/models/rider"
	"parcel-delivery/models/tracking"
	"parcel-delivery/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the Postgres connection once for the process lifetime, runs
// migrations and creates the supplementary indexes. Callers must treat a
// returned error as fatal.
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	username := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, username, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models.
func autoMigrate() error {
	// Stage 1: standalone collections
	stage1Models := []interface{}{
		&user.User{},
		&parcel.Parcel{},
		&rider.Rider{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: collections referencing parcels
	stage2Models := []interface{}{
		&payment.Payment{},
		&tracking.TrackingEvent{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: audit logging
	if err := DB.AutoMigrate(&logModel.Log{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &logModel.Log{}, err)
	}

	return nil
}

// createIndexes creates additional indexes for the hot query paths.
func createIndexes() error {
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_parcels_created_by_creation_date ON parcels(created_by, creation_date DESC)").Error; err != nil {
		return fmt.Errorf("failed to create parcel created_by index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_payments_email_paid_at ON payments(email, paid_at DESC)").Error; err != nil {
		return fmt.Errorf("failed to create payment email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_riders_status ON riders(status)").Error; err != nil {
		return fmt.Errorf("failed to create rider status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_tracking_events_parcel_id_time ON tracking_events(parcel_id, time)").Error; err != nil {
		return fmt.Errorf("failed to create tracking parcel_id index: %w", err)
	}

	return nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}
