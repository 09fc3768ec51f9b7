package database

import (
	"envanter-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from DSN. PreferSimpleProtocol disables prepared
// statement caching to avoid 42P05 ("prepared statement already exists")
// behind connection poolers (PgBouncer and friends).
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate runs migrations for all persisted models. The optional
// movement-log columns are part of the full model; older deployments that
// skip migrations are handled by the movement writer's capability probing.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.DonanimTipi{},
		&models.Marka{},
		&models.CihazModel{},
		&models.KullanimAlani{},
		&models.LisansAdi{},
		&models.Fabrika{},
		&models.Departman{},
		&models.StokHareket{},
		&models.StokToplam{},
		&models.StokZimmet{},
		&models.Envanter{},
		&models.Lisans{},
		&models.Yazici{},
		&models.EnvanterLog{},
		&models.Talep{},
	)
}
