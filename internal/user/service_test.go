package user

import (
	"testing"

	"envanter-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return &Service{DB: db}
}

func TestCreateUser_Success(t *testing.T) {
	svc := setupUserTest(t)

	u, err := svc.CreateUser(CreateInput{
		AdSoyad:      "Ali Veli",
		KullaniciAdi: "ali.veli",
		Sifre:        "gizli12!",
		Role:         "tekniker",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "", u.UserID.String())
	assert.Equal(t, "tekniker", u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("gizli12!")))
}

func TestCreateUser_DefaultsToViewer(t *testing.T) {
	svc := setupUserTest(t)

	u, err := svc.CreateUser(CreateInput{
		AdSoyad:      "Ali Veli",
		KullaniciAdi: "ali.veli",
		Sifre:        "gizli12!",
	})
	require.NoError(t, err)
	assert.Equal(t, "viewer", u.Role)
}

func TestCreateUser_Validation(t *testing.T) {
	svc := setupUserTest(t)

	_, err := svc.CreateUser(CreateInput{AdSoyad: "Ali", KullaniciAdi: "AB", Sifre: "gizli12!"})
	assert.Equal(t, ErrInvalidUsername, err)

	_, err = svc.CreateUser(CreateInput{AdSoyad: "Ali", KullaniciAdi: "ali.veli", Sifre: "kisa"})
	assert.Equal(t, ErrInvalidPassword, err)

	_, err = svc.CreateUser(CreateInput{AdSoyad: "Ali 123", KullaniciAdi: "ali.veli", Sifre: "gizli12!"})
	assert.Equal(t, ErrInvalidFullname, err)

	_, err = svc.CreateUser(CreateInput{AdSoyad: "Ali", KullaniciAdi: "ali.veli", Sifre: "gizli12!", Role: "patron"})
	assert.Equal(t, ErrInvalidRole, err)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	svc := setupUserTest(t)

	_, err := svc.CreateUser(CreateInput{AdSoyad: "Ali Veli", KullaniciAdi: "ali.veli", Sifre: "gizli12!"})
	require.NoError(t, err)

	_, err = svc.CreateUser(CreateInput{AdSoyad: "Veli Ali", KullaniciAdi: "ali.veli", Sifre: "gizli34!"})
	assert.Equal(t, ErrUsernameTaken, err)
}
