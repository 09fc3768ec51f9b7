package user

import (
	"errors"

	"envanter-backend/internal/pkg/response"
	"envanter-backend/internal/user"

	"github.com/gofiber/fiber/v2"
)

// Handlers for account management.
type Handlers struct {
	Service *user.Service
}

func NewHandlers(s *user.Service) *Handlers {
	return &Handlers{Service: s}
}

// CreateUser creates an account. Superadmin only (enforced by route
// middleware).
func (h *Handlers) CreateUser(c *fiber.Ctx) error {
	var input user.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	u, err := h.Service.CreateUser(input)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameTaken):
			return response.Error(c, err.Error(), fiber.StatusConflict, nil)
		case errors.Is(err, user.ErrInvalidUsername),
			errors.Is(err, user.ErrInvalidPassword),
			errors.Is(err, user.ErrInvalidFullname),
			errors.Is(err, user.ErrInvalidRole):
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "Internal server error", fiber.StatusInternalServerError, nil)
		}
	}
	return response.SuccessCreated(c, "User created", fiber.Map{
		"user_id":       u.UserID,
		"ad_soyad":      u.AdSoyad,
		"kullanici_adi": u.KullaniciAdi,
		"role":          u.Role,
	}, nil)
}
