package license

import (
	"encoding/json"
	"fmt"
	"strings"

	"envanter-backend/internal/models"
	"envanter-backend/internal/stock"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Creator realizes stock allocations as license records. The license key
// and mail address fall back to the pool's most recent movement entry when
// the form does not carry them (keys recorded at stock intake get reused at
// assignment time).
type Creator struct{}

func (c *Creator) Create(tx *gorm.DB, form stock.TargetForm, last *models.StokHareket, actor string) (uint, string, error) {
	if strings.TrimSpace(form["zimmetli_kisi"]) == "" {
		return 0, "", stock.ErrMissingFormFields
	}
	name := form["lisans_adi"]
	if name == "" {
		name = form["donanim_tipi"]
	}
	if name == "" {
		return 0, "", stock.ErrMissingFormFields
	}

	key := form["lisans_anahtari"]
	mail := form["mail_adresi"]
	if last != nil {
		if key == "" && last.LisansKey != nil {
			key = *last.LisansKey
		}
		if mail == "" && last.MailAdresi != nil {
			mail = *last.MailAdresi
		}
	}

	lic := models.Lisans{
		LisansAdi:    name,
		LisansKey:    key,
		MailAdresi:   mail,
		IfsNo:        form["ifs_no"],
		ZimmetliKisi: form["zimmetli_kisi"],
		Aciklama:     form["aciklama"],
	}
	if err := tx.Create(&lic).Error; err != nil {
		return 0, "", err
	}

	detay, _ := json.Marshal(map[string]interface{}{
		"kaynak":        "stok atamasi",
		"zimmetli_kisi": lic.ZimmetliKisi,
		"mail_adresi":   lic.MailAdresi,
	})
	if err := tx.Create(&models.EnvanterLog{
		HedefTip:  stock.TargetLicense,
		HedefID:   lic.ID,
		Islem:     "olusturuldu",
		Detay:     datatypes.JSON(detay),
		Kullanici: actor,
	}).Error; err != nil {
		return 0, "", err
	}

	label := lic.LisansAdi
	if lic.ZimmetliKisi != "" {
		label = fmt.Sprintf("%s - %s", lic.LisansAdi, lic.ZimmetliKisi)
	}
	return lic.ID, label, nil
}

func (c *Creator) Detail(db *gorm.DB, id uint) (map[string]string, error) {
	var lic models.Lisans
	if err := db.First(&lic, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return map[string]string{
		"lisans_adi":      lic.LisansAdi,
		"lisans_anahtari": lic.LisansKey,
		"mail_adresi":     lic.MailAdresi,
		"ifs_no":          lic.IfsNo,
		"zimmetli_kisi":   lic.ZimmetliKisi,
		"aciklama":        lic.Aciklama,
	}, nil
}
