package config

import (
	"fmt"
	"log"

	"storecare-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "storecare"),
	)

	// TranslateError lets the attendance layer detect unique-index conflicts
	// as gorm.ErrDuplicatedKey instead of parsing driver messages.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Store{},
		&model.StoreAssign{},
		&model.Attendance{},
		&model.Checklist{},
	); err != nil {
		log.Fatalf("Auto migration failed: %v", err)
	}

	DB = db
}
