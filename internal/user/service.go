package user

import (
	"errors"

	"envanter-backend/internal/constants"
	"envanter-backend/internal/models"
	"envanter-backend/internal/pkg/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidUsername = errors.New("Username must be 3-64 lowercase letters, digits, dots, underscores or hyphens")
	ErrInvalidPassword = errors.New("Password must be at least 8 characters with a letter, a digit and a special character")
	ErrInvalidFullname = errors.New("Full name may only contain letters, spaces, hyphens and apostrophes")
	ErrInvalidRole     = errors.New("Unknown role")
	ErrUsernameTaken   = errors.New("Username is already in use")
)

// Service manages application accounts. Account creation is the only write
// exposed; role changes go through the same endpoint by superadmins.
type Service struct {
	DB *gorm.DB
}

// CreateInput for a new account.
type CreateInput struct {
	AdSoyad      string `json:"ad_soyad"`
	KullaniciAdi string `json:"kullanici_adi"`
	Sifre        string `json:"sifre"`
	Role         string `json:"role"`
}

var validRoles = map[string]bool{
	constants.Viewer:     true,
	constants.Tekniker:   true,
	constants.Admin:      true,
	constants.Superadmin: true,
}

// CreateUser validates the input, hashes the password and persists the
// account.
func (s *Service) CreateUser(in CreateInput) (*models.User, error) {
	if !validation.IsValidUsername(in.KullaniciAdi) {
		return nil, ErrInvalidUsername
	}
	if !validation.IsValidPassword(in.Sifre) {
		return nil, ErrInvalidPassword
	}
	if !validation.IsValidFullname(in.AdSoyad) {
		return nil, ErrInvalidFullname
	}
	if in.Role == "" {
		in.Role = constants.Viewer
	}
	if !validRoles[in.Role] {
		return nil, ErrInvalidRole
	}

	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("kullanici_adi = ?", in.KullaniciAdi).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Sifre), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := models.User{
		AdSoyad:      in.AdSoyad,
		KullaniciAdi: in.KullaniciAdi,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := s.DB.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
