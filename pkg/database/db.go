package database

import (
	"log"
	"os"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// VolunteerRecord represents the volunteers table
type VolunteerRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `gorm:"not null" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name independent of the struct name.
func (VolunteerRecord) TableName() string { return "volunteers" }

// ScheduleDay represents one Sunday in the schedule_days table. Services
// holds the full 2x3 slot topology as JSON, keyed by service time.
type ScheduleDay struct {
	Date      string         `gorm:"primaryKey" json:"date"` // YYYY-MM-DD
	Services  datatypes.JSON `gorm:"not null" json:"services"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Setting represents one key/value row of the settings table
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "diaconia.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(&VolunteerRecord{}, &ScheduleDay{}, &Setting{}, &MasterUser{})

	return db
}
