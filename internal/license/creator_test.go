package license

import (
	"testing"

	"envanter-backend/internal/models"
	"envanter-backend/internal/stock"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupLicenseTest(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Lisans{}, &models.EnvanterLog{}))
	return db
}

func TestCreate_RequiresAssigneeAndName(t *testing.T) {
	db := setupLicenseTest(t)
	c := &Creator{}

	_, _, err := c.Create(db, stock.TargetForm{"lisans_adi": "Office"}, nil, "tester")
	assert.Equal(t, stock.ErrMissingFormFields, err)

	_, _, err = c.Create(db, stock.TargetForm{"zimmetli_kisi": "Ali"}, nil, "tester")
	assert.Equal(t, stock.ErrMissingFormFields, err)
}

func TestCreate_NameFallsBackToHardwareType(t *testing.T) {
	db := setupLicenseTest(t)
	c := &Creator{}

	// License pools are keyed by license name in the hardware-type field.
	id, label, err := c.Create(db, stock.TargetForm{
		"donanim_tipi":  "office",
		"zimmetli_kisi": "Ali Veli",
	}, nil, "tester")
	require.NoError(t, err)
	assert.Equal(t, "office - Ali Veli", label)

	var lic models.Lisans
	require.NoError(t, db.First(&lic, "id = ?", id).Error)
	assert.Equal(t, "office", lic.LisansAdi)
}

func TestCreate_KeyAndMailFallBackToLastMovement(t *testing.T) {
	db := setupLicenseTest(t)
	c := &Creator{}

	key := "XXXX-YYYY"
	mail := "lisans@ornek.com"
	last := &models.StokHareket{LisansKey: &key, MailAdresi: &mail}

	id, _, err := c.Create(db, stock.TargetForm{
		"lisans_adi":    "AutoCAD",
		"zimmetli_kisi": "Ali Veli",
	}, last, "tester")
	require.NoError(t, err)

	var lic models.Lisans
	require.NoError(t, db.First(&lic, "id = ?", id).Error)
	assert.Equal(t, "XXXX-YYYY", lic.LisansKey)
	assert.Equal(t, "lisans@ornek.com", lic.MailAdresi)

	// Explicit form values win over the movement history. A fresh struct
	// keeps the first lookup's primary key out of the query conditions.
	id, _, err = c.Create(db, stock.TargetForm{
		"lisans_adi":      "AutoCAD",
		"zimmetli_kisi":   "Veli Ali",
		"lisans_anahtari": "AAAA-BBBB",
	}, last, "tester")
	require.NoError(t, err)
	var lic2 models.Lisans
	require.NoError(t, db.First(&lic2, "id = ?", id).Error)
	assert.Equal(t, "AAAA-BBBB", lic2.LisansKey)
}

func TestCreate_WritesAuditEntry(t *testing.T) {
	db := setupLicenseTest(t)
	c := &Creator{}

	id, _, err := c.Create(db, stock.TargetForm{
		"lisans_adi":    "Office",
		"zimmetli_kisi": "Ali Veli",
	}, nil, "tester")
	require.NoError(t, err)

	var logEntry models.EnvanterLog
	require.NoError(t, db.First(&logEntry, "hedef_tip = ? AND hedef_id = ?", stock.TargetLicense, id).Error)
	assert.Equal(t, "olusturuldu", logEntry.Islem)
}

func TestDetail(t *testing.T) {
	db := setupLicenseTest(t)
	c := &Creator{}

	id, _, err := c.Create(db, stock.TargetForm{
		"lisans_adi":    "Office",
		"zimmetli_kisi": "Ali Veli",
		"ifs_no":        "ifs-9",
	}, nil, "tester")
	require.NoError(t, err)

	detail, err := c.Detail(db, id)
	require.NoError(t, err)
	assert.Equal(t, "Office", detail["lisans_adi"])
	assert.Equal(t, "ifs-9", detail["ifs_no"])
	assert.Equal(t, "Ali Veli", detail["zimmetli_kisi"])
}
