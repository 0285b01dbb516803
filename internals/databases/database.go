package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fitbook_backend/internals/configs"
)

/* =======================
   DATABASE CONNECTOR
======================= */

// ConnectDB opens the postgres pool and returns the handle. The handle is
// passed down explicitly (routes → controllers); there is no package-level
// singleton.
func ConnectDB() (*gorm.DB, error) {
	dbUser := configs.GetEnv("DB_USER")
	dbPassword := configs.GetEnv("DB_PASSWORD")
	dbHost := configs.GetEnv("DB_HOST", "localhost")
	dbPort := configs.GetEnv("DB_PORT", "5432")
	dbName := configs.GetEnv("DB_NAME")
	dbSSL := configs.GetEnv("DB_SSLMODE", "require")

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPassword, dbHost, dbPort, dbName, dbSSL)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // avoid prepared-statement cache issues behind poolers
	}), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Println("[INFO] database connected")
	return db, nil
}

// TunePool aligns the sql.DB pool with a small single-tenant deployment.
func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] tune pool: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}
