package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authsvc "envanter-backend/internal/auth"
	"envanter-backend/internal/middleware"
	"envanter-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserFinder returns the configured user for the right credentials.
type fakeUserFinder struct {
	user *models.User
}

func (f *fakeUserFinder) FindByUsernameAndPassword(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, authsvc.ErrCredentialsRequired
	}
	if f.user == nil || f.user.KullaniciAdi != username {
		return nil, authsvc.ErrInvalidUsername
	}
	if password != "gizli123" {
		return nil, authsvc.ErrIncorrectPassword
	}
	return f.user, nil
}

func setupAuthApp(t *testing.T) (*fiber.App, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})

	h := NewHandlers(&fakeUserFinder{user: &models.User{
		UserID:       uuid.New(),
		AdSoyad:      "Ali Veli",
		KullaniciAdi: "ali.veli",
		Role:         "tekniker",
	}}, rdb, middleware.SessionCookieConfig(middleware.SessionConfig{}))

	app := fiber.New()
	app.Use(middleware.SessionWithClient(rdb))
	app.Post("/login", h.Login)
	app.Get("/me", h.Me)
	app.Delete("/logout", h.Logout)
	return app, rdb
}

func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"kullanici_adi": "ali.veli",
		"sifre":         "gizli123",
	})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLogin_SetsSessionCookieAndRedisKey(t *testing.T) {
	app, rdb := setupAuthApp(t)

	cookie := login(t, app)
	assert.NotEmpty(t, cookie.Value)

	b, err := rdb.Get(context.Background(), middleware.SessionRedisPrefix+cookie.Value).Bytes()
	require.NoError(t, err)
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &data))
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "ali.veli", user["kullanici_adi"])
	assert.Equal(t, "tekniker", user["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	app, _ := setupAuthApp(t)

	body, _ := json.Marshal(map[string]string{
		"kullanici_adi": "ali.veli",
		"sifre":         "yanlis",
	})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLogin_MissingCredentials(t *testing.T) {
	app, _ := setupAuthApp(t)

	body, _ := json.Marshal(map[string]string{})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestMe_WithAndWithoutSession(t *testing.T) {
	app, _ := setupAuthApp(t)

	req := httptest.NewRequest("GET", "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	cookie := login(t, app)
	req = httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "Ali Veli", data["ad_soyad"])
}

func TestLogout_DestroysSession(t *testing.T) {
	app, rdb := setupAuthApp(t)

	cookie := login(t, app)
	req := httptest.NewRequest("DELETE", "/logout", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	err = rdb.Get(context.Background(), middleware.SessionRedisPrefix+cookie.Value).Err()
	assert.Equal(t, redis.Nil, err)

	// The old cookie no longer authenticates.
	req = httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
