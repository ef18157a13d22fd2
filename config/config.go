package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/OmarAymanHeikal/Cms-Discovery/models"
)

var DB *gorm.DB

func InitDB() {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbHost, dbUser, dbPass, dbName, dbPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("cannot connect to database: ", err)
	}

	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("cannot get sql.DB from gorm: ", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	err = DB.AutoMigrate(
		&models.Program{},
		&models.Category{},
		&models.Tag{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatal("autoMigrate failed: ", err)
	}

	seedData(DB)
	log.Println("postgreSQL connected & migrated successfully")
}

// seedData inserts the starter vocabulary when the tables are empty.
func seedData(db *gorm.DB) {
	categories := []models.Category{
		{Name: "Technology", Description: "Technology related content", Color: "#007bff"},
		{Name: "Business", Description: "Business and entrepreneurship", Color: "#28a745"},
		{Name: "Culture", Description: "Arts and culture", Color: "#dc3545"},
	}
	for _, cat := range categories {
		cat.ID = uuid.New()
		cat.Slug = slug.Make(cat.Name)
		cat.IsActive = true
		cat.CreatedBy = "system"
		cat.UpdatedBy = "system"
		db.Where("name = ?", cat.Name).FirstOrCreate(&cat)
	}

	tags := []models.Tag{
		{Name: "AI"},
		{Name: "Innovation"},
		{Name: "Startup"},
	}
	for _, tag := range tags {
		tag.ID = uuid.New()
		tag.IsActive = true
		tag.CreatedBy = "system"
		tag.UpdatedBy = "system"
		db.Where("name = ?", tag.Name).FirstOrCreate(&tag)
	}
}
