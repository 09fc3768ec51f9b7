package models

import "time"

// StokHareket is one movement log entry. Rows are append-only: created once
// per movement and never updated or deleted (audit trail). Identity columns
// hold the canonical (case-folded) form so two movements belong to the same
// pool iff their identity columns are equal.
//
// The pointer columns are optional in older deployments; the movement writer
// omits them when the live table does not have them (see stock.MovementColumns).
type StokHareket struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DonanimTipi string    `gorm:"column:donanim_tipi;not null;index" json:"donanim_tipi"`
	Marka       string    `gorm:"column:marka" json:"marka"`
	Model       string    `gorm:"column:model" json:"model"`
	IfsNo       *string   `gorm:"column:ifs_no" json:"ifs_no"`
	Islem       string    `gorm:"column:islem;not null" json:"islem"`
	Miktar      int       `gorm:"column:miktar;not null" json:"miktar"`
	Aciklama    string    `gorm:"column:aciklama" json:"aciklama"`
	Kullanici   string    `gorm:"column:kullanici" json:"kullanici"`
	KaynakTip   *string   `gorm:"column:kaynak_tip" json:"kaynak_tip"`
	KaynakID    *uint     `gorm:"column:kaynak_id" json:"kaynak_id"`
	LisansKey   *string   `gorm:"column:lisans_anahtari" json:"lisans_anahtari"`
	MailAdresi  *string   `gorm:"column:mail_adresi" json:"mail_adresi"`
	Tarih       time.Time `gorm:"column:tarih;autoCreateTime;index" json:"tarih"`
}

func (StokHareket) TableName() string { return "stok_hareketleri" }

// StokToplam is the running total for one stock pool, keyed by the full
// canonical identity. It is the only contended row in the ledger: mutated
// under a row lock by the movement writer and the allocation engine, created
// lazily on first movement, never deleted. Toplam must stay >= 0 after every
// commit.
type StokToplam struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DonanimTipi string    `gorm:"column:donanim_tipi;not null;uniqueIndex:idx_stok_toplam_kimlik" json:"donanim_tipi"`
	Marka       string    `gorm:"column:marka;uniqueIndex:idx_stok_toplam_kimlik" json:"marka"`
	Model       string    `gorm:"column:model;uniqueIndex:idx_stok_toplam_kimlik" json:"model"`
	IfsNo       string    `gorm:"column:ifs_no;uniqueIndex:idx_stok_toplam_kimlik" json:"ifs_no"`
	Toplam      int       `gorm:"column:toplam;not null;default:0" json:"toplam"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (StokToplam) TableName() string { return "stok_toplamlari" }

// StokZimmet records one completed allocation. Append-only and purely
// informational: derivable from the movement log plus the target record, kept
// denormalized for listing pages.
type StokZimmet struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DonanimTipi string    `gorm:"column:donanim_tipi;not null;index" json:"donanim_tipi"`
	Marka       string    `gorm:"column:marka" json:"marka"`
	Model       string    `gorm:"column:model" json:"model"`
	IfsNo       string    `gorm:"column:ifs_no" json:"ifs_no"`
	Miktar      int       `gorm:"column:miktar;not null" json:"miktar"`
	HedefTip    string    `gorm:"column:hedef_tip;not null" json:"hedef_tip"`
	HedefID     uint      `gorm:"column:hedef_id;not null" json:"hedef_id"`
	HedefEtiket string    `gorm:"column:hedef_etiket" json:"hedef_etiket"`
	Kullanici   string    `gorm:"column:kullanici" json:"kullanici"`
	Tarih       time.Time `gorm:"column:tarih;autoCreateTime" json:"tarih"`
}

func (StokZimmet) TableName() string { return "stok_zimmetleri" }
