package models

import "time"

// Request states.
const (
	TalepAcik   = "acik"
	TalepKapali = "kapali"
)

// Talep is an internal hardware request. The request workflow owns this
// table; the ledger only sees it through the fulfillment bridge, which
// converts open requests into stock movements or allocations and adjusts
// KalanMiktar.
type Talep struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TalepEden   string    `gorm:"column:talep_eden;not null" json:"talep_eden"`
	DonanimTipi string    `gorm:"column:donanim_tipi;not null" json:"donanim_tipi"`
	Marka       string    `gorm:"column:marka" json:"marka"`
	Model       string    `gorm:"column:model" json:"model"`
	Miktar      int       `gorm:"column:miktar;not null" json:"miktar"`
	KalanMiktar int       `gorm:"column:kalan_miktar;not null" json:"kalan_miktar"`
	Durum       string    `gorm:"column:durum;not null;default:acik" json:"durum"`
	Aciklama    string    `gorm:"column:aciklama" json:"aciklama"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Talep) TableName() string { return "talepler" }
