package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"envanter-backend/internal/models"
	"envanter-backend/internal/stock"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Creator realizes stock allocations as inventory items. The record it
// creates is owned by the inventory editing flows afterwards; the ledger
// only links to it through provenance.
type Creator struct{}

func (c *Creator) Create(tx *gorm.DB, form stock.TargetForm, last *models.StokHareket, actor string) (uint, string, error) {
	if strings.TrimSpace(form["zimmetli_kisi"]) == "" {
		return 0, "", stock.ErrMissingFormFields
	}

	inv := models.Envanter{
		DonanimTipi:   form["donanim_tipi"],
		Marka:         form["marka"],
		Model:         form["model"],
		SeriNo:        form["seri_no"],
		ZimmetliKisi:  form["zimmetli_kisi"],
		KullanimAlani: form["kullanim_alani"],
		Fabrika:       form["fabrika"],
		Departman:     form["departman"],
		Aciklama:      form["aciklama"],
		Durum:         "aktif",
	}
	if err := tx.Create(&inv).Error; err != nil {
		return 0, "", err
	}

	detay, _ := json.Marshal(map[string]interface{}{
		"kaynak":        "stok atamasi",
		"zimmetli_kisi": inv.ZimmetliKisi,
		"seri_no":       inv.SeriNo,
	})
	if err := tx.Create(&models.EnvanterLog{
		HedefTip:  stock.TargetInventory,
		HedefID:   inv.ID,
		Islem:     "olusturuldu",
		Detay:     datatypes.JSON(detay),
		Kullanici: actor,
	}).Error; err != nil {
		return 0, "", err
	}

	return inv.ID, label(&inv), nil
}

func (c *Creator) Detail(db *gorm.DB, id uint) (map[string]string, error) {
	var inv models.Envanter
	if err := db.First(&inv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return map[string]string{
		"donanim_tipi":   inv.DonanimTipi,
		"marka":          inv.Marka,
		"model":          inv.Model,
		"seri_no":        inv.SeriNo,
		"zimmetli_kisi":  inv.ZimmetliKisi,
		"kullanim_alani": inv.KullanimAlani,
		"fabrika":        inv.Fabrika,
		"departman":      inv.Departman,
		"aciklama":       inv.Aciklama,
		"durum":          inv.Durum,
	}, nil
}

// AppendLog adds an audit entry for an inventory record edited outside the
// allocation flow.
func AppendLog(db *gorm.DB, id uint, islem string, detay map[string]interface{}, actor string) error {
	if islem == "" {
		return errors.New("audit entry needs an action")
	}
	b, err := json.Marshal(detay)
	if err != nil {
		return err
	}
	return db.Create(&models.EnvanterLog{
		HedefTip:  stock.TargetInventory,
		HedefID:   id,
		Islem:     islem,
		Detay:     datatypes.JSON(b),
		Kullanici: actor,
	}).Error
}

func label(inv *models.Envanter) string {
	parts := []string{inv.DonanimTipi}
	if inv.Marka != "" {
		parts = append(parts, inv.Marka)
	}
	if inv.Model != "" {
		parts = append(parts, inv.Model)
	}
	s := strings.Join(parts, " ")
	if inv.SeriNo != "" {
		s = fmt.Sprintf("%s (SN: %s)", s, inv.SeriNo)
	}
	return s
}
