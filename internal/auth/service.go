package auth

import (
	"envanter-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginInput for login request body.
type LoginInput struct {
	KullaniciAdi string `json:"kullanici_adi"`
	Sifre        string `json:"sifre"`
}

// SessionUserShape is the object stored in session and returned by /me.
type SessionUserShape struct {
	UserID       string `json:"user_id"`
	AdSoyad      string `json:"ad_soyad"`
	KullaniciAdi string `json:"kullanici_adi"`
	Role         string `json:"role"`
}

// UserFinder abstracts user lookup by username+password (production GORM or
// test doubles).
type UserFinder interface {
	FindByUsernameAndPassword(username, password string) (*models.User, error)
}

// GormUserFinder implements UserFinder using GORM and bcrypt.
type GormUserFinder struct{ DB *gorm.DB }

func (g *GormUserFinder) FindByUsernameAndPassword(username, password string) (*models.User, error) {
	return LoginUser(g.DB, LoginInput{KullaniciAdi: username, Sifre: password})
}

// LoginUser finds the user by username and verifies the password.
func LoginUser(db *gorm.DB, input LoginInput) (*models.User, error) {
	if input.KullaniciAdi == "" || input.Sifre == "" {
		return nil, ErrCredentialsRequired
	}
	var u models.User
	if err := db.Where("kullanici_adi = ?", input.KullaniciAdi).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidUsername
		}
		return nil, err
	}
	if u.PasswordHash == "" {
		return nil, ErrInvalidUsername
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Sifre)); err != nil {
		return nil, ErrIncorrectPassword
	}
	return &u, nil
}

// VerifyUser validates the session user object and returns the /me shape.
func VerifyUser(sessionUser interface{}) (*SessionUserShape, error) {
	if sessionUser == nil {
		return nil, ErrNotAuthenticated
	}
	m, ok := sessionUser.(map[string]interface{})
	if !ok {
		return nil, ErrNotAuthenticated
	}
	userID, _ := m["user_id"].(string)
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return &SessionUserShape{
		UserID:       userID,
		AdSoyad:      str(m["ad_soyad"]),
		KullaniciAdi: str(m["kullanici_adi"]),
		Role:         str(m["role"]),
	}, nil
}

// ActorName returns the display name recorded on ledger rows for the
// session user, falling back to the username.
func ActorName(sessionUser interface{}) string {
	u, err := VerifyUser(sessionUser)
	if err != nil {
		return ""
	}
	if u.AdSoyad != "" {
		return u.AdSoyad
	}
	return u.KullaniciAdi
}

func str(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
