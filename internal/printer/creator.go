package printer

import (
	"encoding/json"
	"fmt"
	"strings"

	"envanter-backend/internal/models"
	"envanter-backend/internal/stock"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Creator realizes stock allocations as printer records.
type Creator struct{}

func (c *Creator) Create(tx *gorm.DB, form stock.TargetForm, last *models.StokHareket, actor string) (uint, string, error) {
	if strings.TrimSpace(form["seri_no"]) == "" {
		return 0, "", stock.ErrMissingFormFields
	}

	p := models.Yazici{
		Marka:         form["marka"],
		Model:         form["model"],
		SeriNo:        form["seri_no"],
		IPAdresi:      form["ip_adresi"],
		KullanimAlani: form["kullanim_alani"],
		Fabrika:       form["fabrika"],
		Aciklama:      form["aciklama"],
	}
	if err := tx.Create(&p).Error; err != nil {
		return 0, "", err
	}

	detay, _ := json.Marshal(map[string]interface{}{
		"kaynak":  "stok atamasi",
		"seri_no": p.SeriNo,
		"ip":      p.IPAdresi,
	})
	if err := tx.Create(&models.EnvanterLog{
		HedefTip:  stock.TargetPrinter,
		HedefID:   p.ID,
		Islem:     "olusturuldu",
		Detay:     datatypes.JSON(detay),
		Kullanici: actor,
	}).Error; err != nil {
		return 0, "", err
	}

	parts := []string{}
	if p.Marka != "" {
		parts = append(parts, p.Marka)
	}
	if p.Model != "" {
		parts = append(parts, p.Model)
	}
	label := strings.Join(parts, " ")
	if label == "" {
		label = "yazici"
	}
	label = fmt.Sprintf("%s (SN: %s)", label, p.SeriNo)
	return p.ID, label, nil
}

func (c *Creator) Detail(db *gorm.DB, id uint) (map[string]string, error) {
	var p models.Yazici
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return map[string]string{
		"marka":          p.Marka,
		"model":          p.Model,
		"seri_no":        p.SeriNo,
		"ip_adresi":      p.IPAdresi,
		"kullanim_alani": p.KullanimAlani,
		"fabrika":        p.Fabrika,
		"aciklama":       p.Aciklama,
	}, nil
}
