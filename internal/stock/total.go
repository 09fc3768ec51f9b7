package stock

import (
	"envanter-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LockForUpdate applies SELECT ... FOR UPDATE where the dialect supports
// it. SQLite serializes writers on its own and rejects the clause.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// lockTotal fetches the pool's total row with a row lock, creating it lazily
// on first movement. Two transactions can both see the row missing and race
// the insert; the loser's conflict is swallowed and the committed row is
// re-fetched under the lock. Every mutation of StokToplam goes through here.
func (s *Service) lockTotal(tx *gorm.DB, ident Identity) (*models.StokToplam, error) {
	byIdentity := func(q *gorm.DB) *gorm.DB {
		return q.Where("donanim_tipi = ? AND marka = ? AND model = ? AND ifs_no = ?",
			ident.HardwareType, ident.Brand, ident.Model, ident.Reference)
	}

	var total models.StokToplam
	err := byIdentity(LockForUpdate(tx)).First(&total).Error
	if err == nil {
		return &total, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	total = models.StokToplam{
		DonanimTipi: ident.HardwareType,
		Marka:       ident.Brand,
		Model:       ident.Model,
		IfsNo:       ident.Reference,
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&total).Error; err != nil {
		return nil, err
	}
	// Re-fetch regardless of who won the insert so the returned row is the
	// committed one, held under the lock.
	var committed models.StokToplam
	if err := byIdentity(LockForUpdate(tx)).First(&committed).Error; err != nil {
		return nil, err
	}
	return &committed, nil
}

// adjustTotal applies a signed delta to the pool total under the row lock.
// A delta that would take the total below zero is rejected and the row is
// left unchanged.
func (s *Service) adjustTotal(tx *gorm.DB, ident Identity, d int) error {
	total, err := s.lockTotal(tx, ident)
	if err != nil {
		return err
	}
	if total.Toplam+d < 0 {
		return ErrInsufficientStock
	}
	return tx.Model(&models.StokToplam{}).Where("id = ?", total.ID).
		UpdateColumn("toplam", gorm.Expr("toplam + ?", d)).Error
}

// Total returns the committed total for a pool (0 when the row does not
// exist yet). Read-only, no lock.
func (s *Service) Total(ident Identity) (int, error) {
	ident = ident.Canonicalize()
	var total models.StokToplam
	err := s.DB.
		Where("donanim_tipi = ? AND marka = ? AND model = ? AND ifs_no = ?",
			ident.HardwareType, ident.Brand, ident.Model, ident.Reference).
		First(&total).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return total.Toplam, nil
}
