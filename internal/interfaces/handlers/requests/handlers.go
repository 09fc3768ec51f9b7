package requests

import (
	"errors"

	"envanter-backend/internal/auth"
	"envanter-backend/internal/middleware"
	"envanter-backend/internal/pkg/response"
	"envanter-backend/internal/requests"
	"envanter-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

// Handlers bridges approved requests into the stock ledger.
type Handlers struct {
	Service *requests.Service
}

func NewHandlers(s *requests.Service) *Handlers {
	return &Handlers{Service: s}
}

type convertBody struct {
	TalepID uint `json:"talep_id"`
	Miktar  int  `json:"miktar"`
}

// ConvertToStock turns an open request into an inbound movement.
func (h *Handlers) ConvertToStock(c *fiber.Ctx) error {
	var body convertBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	res, err := h.Service.ConvertToStock(c.UserContext(), body.TalepID, body.Miktar,
		auth.ActorName(middleware.GetUser(c)))
	if err != nil {
		return requestError(c, err)
	}
	return response.SuccessCreated(c, "Request converted to stock", res, nil)
}

type fulfillBody struct {
	TalepID     uint              `json:"talep_id"`
	DonanimTipi string            `json:"donanim_tipi"`
	Marka       string            `json:"marka"`
	Model       string            `json:"model"`
	IfsNo       string            `json:"ifs_no"`
	HedefTip    string            `json:"hedef_tip"`
	Form        map[string]string `json:"form"`
}

// Fulfill satisfies one unit of an open request by allocating stock.
func (h *Handlers) Fulfill(c *fiber.Ctx) error {
	var body fulfillBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	res, err := h.Service.FulfillByAllocation(c.UserContext(), body.TalepID, stock.AllocateInput{
		HardwareType: body.DonanimTipi,
		Brand:        body.Marka,
		Model:        body.Model,
		Reference:    body.IfsNo,
		TargetKind:   body.HedefTip,
		Form:         body.Form,
		Actor:        auth.ActorName(middleware.GetUser(c)),
	})
	if err != nil {
		return requestError(c, err)
	}
	return response.SuccessCreated(c, "Request fulfilled", res, nil)
}

func requestError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, requests.ErrRequestNotFound):
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	case errors.Is(err, requests.ErrRequestClosed),
		errors.Is(err, requests.ErrOverConversion),
		errors.Is(err, stock.ErrInsufficientStock):
		return response.Error(c, err.Error(), fiber.StatusConflict, nil)
	case errors.Is(err, stock.ErrInvalidQuantity),
		errors.Is(err, stock.ErrUnknownMovementKind),
		errors.Is(err, stock.ErrUnknownTargetKind),
		errors.Is(err, stock.ErrMissingFormFields):
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	case errors.Is(err, stock.ErrInvalidStockIdentity):
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	default:
		return response.Error(c, "Internal server error", fiber.StatusInternalServerError, nil)
	}
}
