package catalog

import (
	"testing"

	"envanter-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupResolverTest(t *testing.T) *Resolver {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.DonanimTipi{}, &models.Marka{}, &models.CihazModel{},
		&models.KullanimAlani{}, &models.LisansAdi{}, &models.Fabrika{},
		&models.Departman{},
	))

	require.NoError(t, db.Create(&models.DonanimTipi{Ad: "Laptop"}).Error)
	require.NoError(t, db.Create(&models.LisansAdi{Ad: "Office"}).Error)
	require.NoError(t, db.Create(&models.LisansAdi{Ad: "AutoCAD"}).Error)
	require.NoError(t, db.Create(&models.Marka{Ad: "Dell"}).Error)
	return &Resolver{DB: db}
}

func TestHardwareTypeName_HardwareCatalogWinsOverLicense(t *testing.T) {
	r := setupResolverTest(t)

	// Id 1 exists in both catalogs; the hardware-type catalog is checked
	// first.
	name, err := r.HardwareTypeName("1")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", name)
}

func TestHardwareTypeName_FallsBackToLicenseCatalog(t *testing.T) {
	r := setupResolverTest(t)

	// Id 2 has no hardware-type row but is a known license name.
	name, err := r.HardwareTypeName("2")
	require.NoError(t, err)
	assert.Equal(t, "AutoCAD", name)
}

func TestHardwareTypeName_UnmatchedIDStaysLiteral(t *testing.T) {
	r := setupResolverTest(t)

	name, err := r.HardwareTypeName("999")
	require.NoError(t, err)
	assert.Equal(t, "999", name)
}

func TestHardwareTypeName_NonNumericPassesThrough(t *testing.T) {
	r := setupResolverTest(t)

	for _, v := range []string{"Laptop", "Monitör", "-5", "0", "3b"} {
		name, err := r.HardwareTypeName(v)
		require.NoError(t, err)
		assert.Equal(t, v, name)
	}

	name, err := r.HardwareTypeName("  Laptop  ")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", name)

	name, err = r.HardwareTypeName("")
	require.NoError(t, err)
	assert.Equal(t, "", name)
}

func TestBrandName_IDAndName(t *testing.T) {
	r := setupResolverTest(t)

	name, err := r.BrandName("1")
	require.NoError(t, err)
	assert.Equal(t, "Dell", name)

	name, err = r.BrandName("HP")
	require.NoError(t, err)
	assert.Equal(t, "HP", name)

	name, err = r.BrandName("42")
	require.NoError(t, err)
	assert.Equal(t, "42", name)
}
