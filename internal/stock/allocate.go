package stock

import (
	"context"

	"envanter-backend/internal/models"

	"gorm.io/gorm"
)

// AllocateInput describes one stock → target-record conversion. Identity
// fields accept catalog ids or display names; Form carries the sub-form of
// the selected target kind.
type AllocateInput struct {
	HardwareType string
	Brand        string
	Model        string
	Reference    string
	Quantity     int
	TargetKind   string
	Form         TargetForm
	Actor        string
}

// AllocationResult reports the created target and the pool total left
// behind after the decrement.
type AllocationResult struct {
	TargetKind  string `json:"hedef_tip"`
	TargetID    uint   `json:"hedef_id"`
	TargetLabel string `json:"hedef_etiket"`
	Remaining   int    `json:"kalan"`
}

// Allocate converts stock into exactly one target record inside a single
// transaction. Two calls racing for the last unit get exactly one success;
// the loser fails with ErrInsufficientStock at the lock-time recheck and
// every write of the losing attempt rolls back.
func (s *Service) Allocate(ctx context.Context, in AllocateInput) (*AllocationResult, error) {
	var res *AllocationResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := s.AllocateTx(tx, in)
		res = r
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// AllocateTx runs the allocation inside the caller's transaction (GORM
// opens a savepoint when one is already active). Used by the request
// fulfillment bridge.
func (s *Service) AllocateTx(tx *gorm.DB, in AllocateInput) (*AllocationResult, error) {
	// Inventory items, licenses and printers are serialized assets; bulk
	// quantities exist only for plain stock movements.
	if in.Quantity != 1 {
		return nil, ErrInvalidQuantity
	}
	target, err := s.target(in.TargetKind)
	if err != nil {
		return nil, err
	}
	if len(in.Form) == 0 {
		return nil, ErrMissingFormFields
	}
	ident, err := s.resolveIdentity(tx, Identity{
		HardwareType: in.HardwareType,
		Brand:        in.Brand,
		Model:        in.Model,
		Reference:    in.Reference,
	})
	if err != nil {
		return nil, err
	}

	// Optimistic availability check against the projection. Not
	// authoritative: the window it opens is closed by the locked recheck
	// below.
	rows, err := s.statusRows(tx)
	if err != nil {
		return nil, err
	}
	var pool *StatusRow
	for i := range rows {
		if rows[i].Identity == ident {
			pool = &rows[i]
			break
		}
	}
	if pool == nil {
		return nil, ErrInvalidStockIdentity
	}
	if pool.Net < in.Quantity {
		return nil, ErrInsufficientStock
	}

	// Canonicalize numeric catalog ids in the form and default identity
	// fields the form leaves empty.
	if err := s.resolveForm(tx, in.Form); err != nil {
		return nil, err
	}
	fillDefault(in.Form, "donanim_tipi", ident.HardwareType)
	fillDefault(in.Form, "marka", ident.Brand)
	fillDefault(in.Form, "model", ident.Model)
	fillDefault(in.Form, "ifs_no", ident.Reference)

	last, err := s.lastMovement(tx, ident)
	if err != nil {
		return nil, err
	}

	// Exactly one target record, with its own audit entry, created by the
	// owning subsystem on this transaction.
	targetID, label, err := target.Create(tx, in.Form, last, in.Actor)
	if err != nil {
		return nil, err
	}

	// Authoritative recheck under the row lock, done last. Failing here
	// rolls back the target record created above.
	total, err := s.lockTotal(tx, ident)
	if err != nil {
		return nil, err
	}
	if total.Toplam < in.Quantity {
		return nil, ErrInsufficientStock
	}
	if err := tx.Model(&models.StokToplam{}).Where("id = ?", total.ID).
		UpdateColumn("toplam", gorm.Expr("toplam - ?", in.Quantity)).Error; err != nil {
		return nil, err
	}

	if err := tx.Create(&models.StokZimmet{
		DonanimTipi: ident.HardwareType,
		Marka:       ident.Brand,
		Model:       ident.Model,
		IfsNo:       ident.Reference,
		Miktar:      in.Quantity,
		HedefTip:    in.TargetKind,
		HedefID:     targetID,
		HedefEtiket: label,
		Kullanici:   in.Actor,
	}).Error; err != nil {
		return nil, err
	}

	move := models.StokHareket{
		DonanimTipi: ident.HardwareType,
		Marka:       ident.Brand,
		Model:       ident.Model,
		Islem:       KindAllocation,
		Miktar:      in.Quantity,
		Aciklama:    "stok atamasi: " + label,
		Kullanici:   in.Actor,
	}
	if ident.Reference != "" {
		ref := ident.Reference
		move.IfsNo = &ref
	}
	srcType := in.TargetKind
	srcID := targetID
	move.KaynakTip = &srcType
	move.KaynakID = &srcID
	if err := s.insertMovement(tx, &move); err != nil {
		return nil, err
	}

	return &AllocationResult{
		TargetKind:  in.TargetKind,
		TargetID:    targetID,
		TargetLabel: label,
		Remaining:   total.Toplam - in.Quantity,
	}, nil
}

// resolveForm replaces numeric catalog ids in well-known form fields with
// display names. Lookups run on tx, same as identity resolution.
func (s *Service) resolveForm(tx *gorm.DB, form TargetForm) error {
	cat := s.Catalog.WithTx(tx)
	type resolver func(string) (string, error)
	fields := map[string]resolver{
		"marka":          cat.BrandName,
		"model":          cat.ModelName,
		"kullanim_alani": cat.UsageAreaName,
		"fabrika":        cat.FactoryName,
		"departman":      cat.DepartmentName,
		"lisans_adi":     cat.LicenseName,
	}
	for field, resolve := range fields {
		v, ok := form[field]
		if !ok || v == "" {
			continue
		}
		name, err := resolve(v)
		if err != nil {
			return err
		}
		form[field] = name
	}
	return nil
}

func fillDefault(form TargetForm, field, value string) {
	if form[field] == "" && value != "" {
		form[field] = value
	}
}
