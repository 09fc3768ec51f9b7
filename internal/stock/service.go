package stock

import (
	"envanter-backend/internal/catalog"
	"envanter-backend/internal/models"

	"gorm.io/gorm"
)

// TargetForm carries the flat sub-form for the selected allocation target.
type TargetForm map[string]string

// Target is implemented by the inventory/license/printer subsystems. Create
// must persist exactly one record plus its own audit entry on the given
// transaction; last is the most recent movement row of the pool (nil when
// the pool has none) for filling fields the form omits.
type Target interface {
	Create(tx *gorm.DB, form TargetForm, last *models.StokHareket, actor string) (id uint, label string, err error)
	Detail(db *gorm.DB, id uint) (map[string]string, error)
}

// Service is the stock ledger: movement log, running totals, status
// projection and the allocation engine. All writes go through it.
type Service struct {
	DB      *gorm.DB
	Catalog *catalog.Resolver

	// Target creators, wired at app assembly.
	Inventory Target
	License   Target
	Printer   Target

	caps *MovementColumns
}

func NewService(db *gorm.DB, cat *catalog.Resolver) *Service {
	return &Service{DB: db, Catalog: cat, caps: &MovementColumns{}}
}

func (s *Service) target(kind string) (Target, error) {
	var t Target
	switch kind {
	case TargetInventory:
		t = s.Inventory
	case TargetLicense:
		t = s.License
	case TargetPrinter:
		t = s.Printer
	}
	if t == nil {
		return nil, ErrUnknownTargetKind
	}
	return t, nil
}

// resolveIdentity turns incoming identity fields (names or catalog ids) into
// the canonical pool identity. An id-form and a name-form of the same pool
// resolve to identical identities. Catalog lookups run on tx so they share
// the caller's connection.
func (s *Service) resolveIdentity(tx *gorm.DB, in Identity) (Identity, error) {
	cat := s.Catalog.WithTx(tx)
	hw, err := cat.HardwareTypeName(in.HardwareType)
	if err != nil {
		return Identity{}, err
	}
	brand, err := cat.BrandName(in.Brand)
	if err != nil {
		return Identity{}, err
	}
	model, err := cat.ModelName(in.Model)
	if err != nil {
		return Identity{}, err
	}
	ident := Identity{
		HardwareType: hw,
		Brand:        brand,
		Model:        model,
		Reference:    in.Reference,
	}.Canonicalize()
	if ident.HardwareType == "" {
		return Identity{}, ErrInvalidStockIdentity
	}
	return ident, nil
}

// SourceDetail returns a flat field map of an existing target record, used
// to pre-fill an allocation form. Read-only.
func (s *Service) SourceDetail(kind string, id uint) (map[string]string, error) {
	t, err := s.target(kind)
	if err != nil {
		return nil, err
	}
	return t.Detail(s.DB, id)
}
