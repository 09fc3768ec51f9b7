package models

// Reference catalog tables. Rows are maintained by the admin flows; the
// ledger only reads them to resolve numeric ids to display names.

// DonanimTipi is a hardware type (Laptop, Monitör, ...).
type DonanimTipi struct {
	ID uint   `gorm:"primaryKey" json:"id"`
	Ad string `gorm:"column:ad;not null;uniqueIndex" json:"ad"`
}

func (DonanimTipi) TableName() string { return "donanim_tipleri" }

// Marka is a device brand.
type Marka struct {
	ID uint   `gorm:"primaryKey" json:"id"`
	Ad string `gorm:"column:ad;not null;uniqueIndex" json:"ad"`
}

func (Marka) TableName() string { return "markalar" }

// CihazModel is a device model belonging to a brand.
type CihazModel struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Ad      string `gorm:"column:ad;not null" json:"ad"`
	MarkaID *uint  `gorm:"column:marka_id;index" json:"marka_id"`
}

func (CihazModel) TableName() string { return "modeller" }

// KullanimAlani is a usage area (office, production line, ...).
type KullanimAlani struct {
	ID uint   `gorm:"primaryKey" json:"id"`
	Ad string `gorm:"column:ad;not null;uniqueIndex" json:"ad"`
}

func (KullanimAlani) TableName() string { return "kullanim_alanlari" }

// LisansAdi is a license product name (Office, AutoCAD, ...). It is a
// separate catalog from hardware types but shares the same id space from the
// caller's point of view, hence the resolver's lookup precedence.
type LisansAdi struct {
	ID uint   `gorm:"primaryKey" json:"id"`
	Ad string `gorm:"column:ad;not null;uniqueIndex" json:"ad"`
}

func (LisansAdi) TableName() string { return "lisans_adlari" }

// Fabrika is a factory/site.
type Fabrika struct {
	ID uint   `gorm:"primaryKey" json:"id"`
	Ad string `gorm:"column:ad;not null;uniqueIndex" json:"ad"`
}

func (Fabrika) TableName() string { return "fabrikalar" }

// Departman is an organizational department.
type Departman struct {
	ID uint   `gorm:"primaryKey" json:"id"`
	Ad string `gorm:"column:ad;not null;uniqueIndex" json:"ad"`
}

func (Departman) TableName() string { return "departmanlar" }
