package models

import (
	"time"

	"gorm.io/datatypes"
)

// Envanter is a serialized inventory item (one physical asset). Created by
// the allocation engine, thereafter owned by the inventory editing flows.
type Envanter struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DonanimTipi   string    `gorm:"column:donanim_tipi;not null;index" json:"donanim_tipi"`
	Marka         string    `gorm:"column:marka" json:"marka"`
	Model         string    `gorm:"column:model" json:"model"`
	SeriNo        string    `gorm:"column:seri_no;index" json:"seri_no"`
	ZimmetliKisi  string    `gorm:"column:zimmetli_kisi" json:"zimmetli_kisi"`
	KullanimAlani string    `gorm:"column:kullanim_alani" json:"kullanim_alani"`
	Fabrika       string    `gorm:"column:fabrika" json:"fabrika"`
	Departman     string    `gorm:"column:departman" json:"departman"`
	Aciklama      string    `gorm:"column:aciklama" json:"aciklama"`
	Durum         string    `gorm:"column:durum;not null;default:aktif" json:"durum"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Envanter) TableName() string { return "envanterler" }

// Lisans is a software license record.
type Lisans struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	LisansAdi    string    `gorm:"column:lisans_adi;not null;index" json:"lisans_adi"`
	LisansKey    string    `gorm:"column:lisans_anahtari" json:"lisans_anahtari"`
	MailAdresi   string    `gorm:"column:mail_adresi" json:"mail_adresi"`
	IfsNo        string    `gorm:"column:ifs_no" json:"ifs_no"`
	ZimmetliKisi string    `gorm:"column:zimmetli_kisi" json:"zimmetli_kisi"`
	Aciklama     string    `gorm:"column:aciklama" json:"aciklama"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Lisans) TableName() string { return "lisanslar" }

// Yazici is a printer record.
type Yazici struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Marka         string    `gorm:"column:marka" json:"marka"`
	Model         string    `gorm:"column:model" json:"model"`
	SeriNo        string    `gorm:"column:seri_no" json:"seri_no"`
	IPAdresi      string    `gorm:"column:ip_adresi" json:"ip_adresi"`
	KullanimAlani string    `gorm:"column:kullanim_alani" json:"kullanim_alani"`
	Fabrika       string    `gorm:"column:fabrika" json:"fabrika"`
	Aciklama      string    `gorm:"column:aciklama" json:"aciklama"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Yazici) TableName() string { return "yazicilar" }

// EnvanterLog is the per-record audit trail for target records (inventory,
// license, printer). Appended when a record is created or edited; never
// rewritten.
type EnvanterLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	HedefTip  string         `gorm:"column:hedef_tip;not null;index:idx_envanter_log_hedef" json:"hedef_tip"`
	HedefID   uint           `gorm:"column:hedef_id;not null;index:idx_envanter_log_hedef" json:"hedef_id"`
	Islem     string         `gorm:"column:islem;not null" json:"islem"`
	Detay     datatypes.JSON `gorm:"column:detay" json:"detay"`
	Kullanici string         `gorm:"column:kullanici" json:"kullanici"`
	Tarih     time.Time      `gorm:"column:tarih;autoCreateTime" json:"tarih"`
}

func (EnvanterLog) TableName() string { return "envanter_loglari" }
