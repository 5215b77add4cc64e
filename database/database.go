package database

import (
	"errors"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ensaladazo/ecommerce-api/config"
	"github.com/ensaladazo/ecommerce-api/models"
)

// Connect opens the store selected by cfg.Env: a local SQLite file for
// development, Postgres for production. Hosting providers hand out
// DATABASE_URL with a postgres:// scheme, which the URL parser wants
// spelled postgresql://.
func Connect(cfg config.Config) (*gorm.DB, error) {
	if cfg.Env == "production" {
		dsn := cfg.DatabaseURL
		if dsn == "" {
			return nil, errors.New("DATABASE_URL is required in production")
		}
		if strings.HasPrefix(dsn, "postgres://") {
			dsn = strings.Replace(dsn, "postgres://", "postgresql://", 1)
		}
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open("ensaladazo.db"), &gorm.Config{})
}

// Migrate creates or updates the four tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CartItem{},
		&models.ContactMessage{},
		&models.OrderHistory{},
	)
}
