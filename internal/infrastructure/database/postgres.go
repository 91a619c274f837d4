package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/config"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Location entities
		&entity.Branch{},
		&entity.Device{},

		// User entities
		&entity.User{},

		// Menu entities
		&entity.Category{},
		&entity.Product{},
		&entity.ModifierOption{},

		// Pricing entities
		&entity.Discount{},
		&entity.Promotion{},

		// Sales entities
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderItemModifier{},
		&entity.OrderPayment{},

		// System entities
		&entity.PrintSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with a default branch and admin user
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	// Create a default branch so devices and orders have a home on first boot
	var branch entity.Branch
	if err := db.Where("reference = ?", "MAIN").First(&branch).Error; err != nil {
		branch = entity.Branch{
			Name:      "Main Branch",
			Reference: "MAIN",
			Timezone:  entity.DefaultBranchTimezone,
			Active:    true,
		}
		if err := db.Create(&branch).Error; err != nil {
			log.Printf("Warning: failed to create default branch: %v", err)
		}
	}

	// Default print settings for the default branch
	if branch.ID != uuid.Nil {
		var settings entity.PrintSettings
		if err := db.Where("branch_id = ?", branch.ID).First(&settings).Error; err != nil {
			settings = entity.PrintSettings{
				BranchID:        branch.ID,
				ShowOrderNumber: true,
				ShowSubtotal:    true,
			}
			if err := db.Create(&settings).Error; err != nil {
				log.Printf("Warning: failed to create default print settings: %v", err)
			}
		}
	}

	// Create admin user if configured via environment variables
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", cfg.Admin.Email).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				adminUser := entity.User{
					ID:        uuid.New(),
					FirstName: "Admin",
					Email:     cfg.Admin.Email,
					Password:  string(hashedPassword),
					Role:      entity.RoleAdmin,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", cfg.Admin.Email)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", cfg.Admin.Email)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
