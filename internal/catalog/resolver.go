package catalog

import (
	"errors"
	"strconv"
	"strings"

	"envanter-backend/internal/models"

	"gorm.io/gorm"
)

// Resolver reads the reference catalog tables. The ledger treats them as
// read-only; admin flows maintain the rows elsewhere.
type Resolver struct {
	DB *gorm.DB
}

// WithTx returns a resolver bound to the given transaction so catalog
// lookups share the caller's connection. Callers inside a transaction must
// use this; the root handle may check out a different pooled connection.
func (r *Resolver) WithTx(tx *gorm.DB) *Resolver {
	return &Resolver{DB: tx}
}

// HardwareTypeName resolves an incoming hardware-type value to a display
// name. Callers pass either a catalog id or a name; numeric input is looked
// up in the hardware-type catalog first, then in the license-name catalog
// (license stock is keyed by license name), and an id with no catalog row
// falls through to the literal string. Non-numeric input is returned as-is.
func (r *Resolver) HardwareTypeName(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	id, err := strconv.Atoi(v)
	if err != nil || id <= 0 {
		return v, nil
	}

	var dt models.DonanimTipi
	if err := r.DB.First(&dt, "id = ?", id).Error; err == nil {
		return dt.Ad, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var la models.LisansAdi
	if err := r.DB.First(&la, "id = ?", id).Error; err == nil {
		return la.Ad, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	return v, nil
}

// BrandName resolves a brand id or name to the display name.
func (r *Resolver) BrandName(v string) (string, error) {
	return lookupByIDOrName[models.Marka](r.DB, v)
}

// ModelName resolves a device-model id or name to the display name.
func (r *Resolver) ModelName(v string) (string, error) {
	return lookupByIDOrName[models.CihazModel](r.DB, v)
}

// UsageAreaName resolves a usage-area id or name to the display name.
func (r *Resolver) UsageAreaName(v string) (string, error) {
	return lookupByIDOrName[models.KullanimAlani](r.DB, v)
}

// LicenseName resolves a license-name id or name to the display name.
func (r *Resolver) LicenseName(v string) (string, error) {
	return lookupByIDOrName[models.LisansAdi](r.DB, v)
}

// FactoryName resolves a factory id or name to the display name.
func (r *Resolver) FactoryName(v string) (string, error) {
	return lookupByIDOrName[models.Fabrika](r.DB, v)
}

// DepartmentName resolves a department id or name to the display name.
func (r *Resolver) DepartmentName(v string) (string, error) {
	return lookupByIDOrName[models.Departman](r.DB, v)
}

type named interface {
	models.Marka | models.CihazModel | models.KullanimAlani | models.LisansAdi | models.Fabrika | models.Departman
}

func lookupByIDOrName[T named](db *gorm.DB, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	id, err := strconv.Atoi(v)
	if err != nil || id <= 0 {
		return v, nil
	}
	var row T
	if err := db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return v, nil
		}
		return "", err
	}
	return nameOf(row), nil
}

func nameOf(row any) string {
	switch r := row.(type) {
	case models.Marka:
		return r.Ad
	case models.CihazModel:
		return r.Ad
	case models.KullanimAlani:
		return r.Ad
	case models.LisansAdi:
		return r.Ad
	case models.Fabrika:
		return r.Ad
	case models.Departman:
		return r.Ad
	}
	return ""
}
