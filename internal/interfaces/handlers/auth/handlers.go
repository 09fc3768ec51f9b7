package auth

import (
	"context"

	"envanter-backend/internal/auth"
	"envanter-backend/internal/middleware"
	"envanter-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Handlers for login, session check and logout.
type Handlers struct {
	Users     auth.UserFinder
	Redis     *redis.Client
	CookieCfg fiber.Cookie
}

func NewHandlers(users auth.UserFinder, rdb *redis.Client, cookieCfg fiber.Cookie) *Handlers {
	return &Handlers{Users: users, Redis: rdb, CookieCfg: cookieCfg}
}

// Login verifies credentials, regenerates the session id and stores the
// user in the session.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var input auth.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	user, err := h.Users.FindByUsernameAndPassword(input.KullaniciAdi, input.Sifre)
	if err != nil {
		switch err {
		case auth.ErrCredentialsRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case auth.ErrInvalidUsername, auth.ErrIncorrectPassword:
			return response.Unauthorized(c, err.Error())
		default:
			return response.Error(c, "Login failed", fiber.StatusInternalServerError, nil)
		}
	}

	sid := middleware.RegenerateSessionID(c)
	middleware.SetSessionUser(c, middleware.SessionUser{
		UserID:       user.UserID.String(),
		AdSoyad:      user.AdSoyad,
		KullaniciAdi: user.KullaniciAdi,
		Role:         user.Role,
	})

	cookie := h.CookieCfg
	cookie.Value = sid
	c.Cookie(&cookie)

	return response.Success(c, "Login successful", auth.SessionUserShape{
		UserID:       user.UserID.String(),
		AdSoyad:      user.AdSoyad,
		KullaniciAdi: user.KullaniciAdi,
		Role:         user.Role,
	}, nil)
}

// Me returns the session user or 401.
func (h *Handlers) Me(c *fiber.Ctx) error {
	user, err := auth.VerifyUser(middleware.GetUser(c))
	if err != nil {
		return response.Unauthorized(c, "Not authenticated")
	}
	return response.Success(c, "Authenticated", user, nil)
}

// Logout destroys the session and clears the cookie.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	if sid := middleware.GetSessionID(c); sid != "" && h.Redis != nil {
		h.Redis.Del(context.Background(), middleware.SessionRedisPrefix+sid)
	}
	middleware.DestroySession(c)
	c.Locals("session_id", "")

	cookie := h.CookieCfg
	cookie.Value = ""
	cookie.MaxAge = -1
	c.Cookie(&cookie)

	return response.Success(c, "Logged out", nil, nil)
}
