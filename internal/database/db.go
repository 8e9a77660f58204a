package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"hr-portal/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Init opens the database, migrates it and seeds the default accounts.
// Any failure is fatal.
func Init(driver, dsn string, seed SeedOptions) *gorm.DB {
	db, err := Open(driver, dsn)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	Seed(db, seed)
	return db
}

// Open connects to postgres (with retries) or sqlite.
func Open(driver, dsn string) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	switch driver {
	case DriverSQLite:
		db, err := gorm.Open(sqlite.Open(sqliteDSN(dsn)), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql DB: %w", err)
		}
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
		return db, nil

	case DriverPostgres, "":
		var (
			db  *gorm.DB
			err error
		)
		const maxAttempts = 10
		for i := 1; i <= maxAttempts; i++ {
			log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

			db, err = gorm.Open(postgres.Open(dsn), gcfg)
			if err == nil {
				log.Println("connected to DB successfully")
				return db, nil
			}

			log.Printf("failed to connect to DB: %v", err)
			time.Sleep(2 * time.Second)
		}
		return nil, fmt.Errorf("after %d attempts: %w", maxAttempts, err)
	}

	return nil, fmt.Errorf("unsupported driver %q", driver)
}

func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=1"
	}
	return dsn + "?_foreign_keys=1"
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Position{},
		&models.Candidate{},
		&models.InterviewSession{},
		&models.Interview{},
		&models.Decision{},
		&models.Employee{},
		&models.AuditLog{},
	)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql DB: %w", err)
	}
	return sqlDB.Close()
}
