package database

import (
	"fmt"
	"log"

	"ivrtutor/config"
	"ivrtutor/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.AppConfig.DBHost,
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBName,
		config.AppConfig.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	RunMigrations(db)
	SeedDefaultSettings(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Student{},
		&models.CallSession{},
		&models.Lesson{},
		&models.LessonProgress{},
		&models.SMSLog{},
		&models.SystemSetting{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// SeedDefaultSettings inserts the runtime-tunable settings the IVR flows
// depend on, without overwriting values an operator has already changed.
func SeedDefaultSettings(db *gorm.DB) {
	defaults := []models.SystemSetting{
		{Key: "daily_reminder_time", Value: config.AppConfig.ReminderTime, Description: "Time of day (HH:MM) reminder SMS are sent"},
		{Key: "max_attempts_per_quiz", Value: fmt.Sprintf("%d", config.AppConfig.MaxQuizAttempts), Description: "Maximum quiz attempts per lesson"},
		{Key: "default_language", Value: config.AppConfig.DefaultLanguage, Description: "Fallback language for new students"},
		{Key: "welcome_message_template", Value: "Welcome to IVR Tutor, {name}!", Description: "SMS template sent on first registration"},
	}

	for _, setting := range defaults {
		var existing models.SystemSetting
		if err := db.Where("key = ?", setting.Key).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&setting).Error; err != nil {
			log.Printf("Failed to seed setting %s: %v", setting.Key, err)
		}
	}
}
