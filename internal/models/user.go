package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an application account. Login is by username (kullanici_adi);
// directory-synced accounts carry the same hash rules as local ones.
type User struct {
	UserID       uuid.UUID      `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	AdSoyad      string         `gorm:"column:ad_soyad;not null" json:"ad_soyad"`
	KullaniciAdi string         `gorm:"column:kullanici_adi;not null;uniqueIndex" json:"kullanici_adi"`
	PasswordHash string         `gorm:"column:password_hash;not null" json:"-"`
	Role         string         `gorm:"column:role;not null;default:viewer" json:"role"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "kullanicilar"
}

// BeforeCreate sets UUID if not set (for DBs without gen_random_uuid).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
