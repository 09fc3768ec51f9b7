package auth

import (
	"testing"

	"envanter-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	hash, err := bcrypt.GenerateFromPassword([]byte("gizli123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		AdSoyad:      "Ali Veli",
		KullaniciAdi: "ali.veli",
		PasswordHash: string(hash),
		Role:         "tekniker",
	}).Error)
	return db
}

func TestLoginUser_Success(t *testing.T) {
	db := setupAuthTest(t)

	u, err := LoginUser(db, LoginInput{KullaniciAdi: "ali.veli", Sifre: "gizli123"})
	require.NoError(t, err)
	assert.Equal(t, "Ali Veli", u.AdSoyad)
	assert.Equal(t, "tekniker", u.Role)
}

func TestLoginUser_MissingCredentials(t *testing.T) {
	db := setupAuthTest(t)

	_, err := LoginUser(db, LoginInput{KullaniciAdi: "", Sifre: "x"})
	assert.Equal(t, ErrCredentialsRequired, err)

	_, err = LoginUser(db, LoginInput{KullaniciAdi: "ali.veli", Sifre: ""})
	assert.Equal(t, ErrCredentialsRequired, err)
}

func TestLoginUser_UnknownUsername(t *testing.T) {
	db := setupAuthTest(t)

	_, err := LoginUser(db, LoginInput{KullaniciAdi: "yok.boyle", Sifre: "gizli123"})
	assert.Equal(t, ErrInvalidUsername, err)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	db := setupAuthTest(t)

	_, err := LoginUser(db, LoginInput{KullaniciAdi: "ali.veli", Sifre: "yanlis"})
	assert.Equal(t, ErrIncorrectPassword, err)
}

func TestVerifyUser_Nil(t *testing.T) {
	u, err := VerifyUser(nil)
	assert.Nil(t, u)
	assert.Equal(t, ErrNotAuthenticated, err)
}

func TestVerifyUser_NoUserID(t *testing.T) {
	u, err := VerifyUser(map[string]interface{}{"ad_soyad": "Ali Veli"})
	assert.Nil(t, u)
	assert.Equal(t, ErrNotAuthenticated, err)
}

func TestVerifyUser_Valid(t *testing.T) {
	u, err := VerifyUser(map[string]interface{}{
		"user_id":       "550e8400-e29b-41d4-a716-446655440000",
		"ad_soyad":      "Ali Veli",
		"kullanici_adi": "ali.veli",
		"role":          "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ali Veli", u.AdSoyad)
	assert.Equal(t, "ali.veli", u.KullaniciAdi)
	assert.Equal(t, "admin", u.Role)
}

func TestActorName(t *testing.T) {
	assert.Equal(t, "", ActorName(nil))
	assert.Equal(t, "Ali Veli", ActorName(map[string]interface{}{
		"user_id":  "550e8400-e29b-41d4-a716-446655440000",
		"ad_soyad": "Ali Veli",
	}))
	assert.Equal(t, "ali.veli", ActorName(map[string]interface{}{
		"user_id":       "550e8400-e29b-41d4-a716-446655440000",
		"kullanici_adi": "ali.veli",
	}))
}
