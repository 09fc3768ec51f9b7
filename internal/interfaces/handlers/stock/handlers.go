package stock

import (
	"errors"
	"strconv"
	"time"

	"envanter-backend/internal/auth"
	"envanter-backend/internal/export"
	"envanter-backend/internal/middleware"
	"envanter-backend/internal/pkg/response"
	"envanter-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

// Handlers exposes the stock ledger over HTTP.
type Handlers struct {
	Service *stock.Service
}

func NewHandlers(s *stock.Service) *Handlers {
	return &Handlers{Service: s}
}

type movementBody struct {
	DonanimTipi   string `json:"donanim_tipi"`
	Marka         string `json:"marka"`
	Model         string `json:"model"`
	IfsNo         string `json:"ifs_no"`
	Miktar        int    `json:"miktar"`
	Islem         string `json:"islem"`
	Aciklama      string `json:"aciklama"`
	LisansAnahtar string `json:"lisans_anahtari"`
	MailAdresi    string `json:"mail_adresi"`
}

// AddMovement records one inbound/outbound/scrap movement.
func (h *Handlers) AddMovement(c *fiber.Ctx) error {
	var body movementBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	id, err := h.Service.AddMovement(c.UserContext(), stock.MovementInput{
		HardwareType: body.DonanimTipi,
		Brand:        body.Marka,
		Model:        body.Model,
		Reference:    body.IfsNo,
		Quantity:     body.Miktar,
		Kind:         body.Islem,
		Actor:        auth.ActorName(middleware.GetUser(c)),
		Description:  body.Aciklama,
		LicenseKey:   body.LisansAnahtar,
		MailAddress:  body.MailAdresi,
	})
	if err != nil {
		return stockError(c, err)
	}
	return response.SuccessCreated(c, "Movement recorded", fiber.Map{"hareket_id": id}, nil)
}

// Status returns the per-identity net projection of the ledger.
func (h *Handlers) Status(c *fiber.Ctx) error {
	rows, err := h.Service.Status(c.UserContext())
	if err != nil {
		return stockError(c, err)
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		m := fiber.Map{
			"donanim_tipi": r.Identity.HardwareType,
			"marka":        r.Identity.Brand,
			"model":        r.Identity.Model,
			"ifs_no":       r.Identity.Reference,
			"mevcut":       r.Net,
			"son_hareket":  r.LastMovement,
		}
		if r.SourceType != "" {
			m["kaynak_tip"] = r.SourceType
			m["kaynak_id"] = r.SourceID
		}
		out = append(out, m)
	}
	return response.Success(c, "Stock status", out, fiber.Map{"count": len(out)})
}

// Options lists pools with positive net, filtered by ?q=.
func (h *Handlers) Options(c *fiber.Ctx) error {
	opts, err := h.Service.AllocatableOptions(c.UserContext(), c.Query("q"))
	if err != nil {
		return stockError(c, err)
	}
	return response.Success(c, "Allocatable stock", opts, fiber.Map{"count": len(opts)})
}

type allocateBody struct {
	DonanimTipi string            `json:"donanim_tipi"`
	Marka       string            `json:"marka"`
	Model       string            `json:"model"`
	IfsNo       string            `json:"ifs_no"`
	Miktar      *int              `json:"miktar"`
	HedefTip    string            `json:"hedef_tip"`
	Form        map[string]string `json:"form"`
}

// Allocate converts stock into a target record.
func (h *Handlers) Allocate(c *fiber.Ctx) error {
	var body allocateBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	// Omitting miktar means one unit; an explicit zero or negative value is
	// rejected by the service.
	qty := 1
	if body.Miktar != nil {
		qty = *body.Miktar
	}

	res, err := h.Service.Allocate(c.UserContext(), stock.AllocateInput{
		HardwareType: body.DonanimTipi,
		Brand:        body.Marka,
		Model:        body.Model,
		Reference:    body.IfsNo,
		Quantity:     qty,
		TargetKind:   body.HedefTip,
		Form:         body.Form,
		Actor:        auth.ActorName(middleware.GetUser(c)),
	})
	if err != nil {
		return stockError(c, err)
	}
	return response.SuccessCreated(c, "Stock allocated", res, nil)
}

// SourceDetail returns the created target record behind a projection row.
func (h *Handlers) SourceDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.Error(c, "Invalid id", fiber.StatusBadRequest, nil)
	}
	detail, err := h.Service.SourceDetail(c.Params("kind"), uint(id))
	if err != nil {
		return stockError(c, err)
	}
	return response.Success(c, "Source detail", detail, nil)
}

// Export streams the status projection as an xlsx workbook.
func (h *Handlers) Export(c *fiber.Ctx) error {
	rows, err := h.Service.Status(c.UserContext())
	if err != nil {
		return stockError(c, err)
	}
	f, err := export.StatusSheet(rows)
	if err != nil {
		return response.Error(c, "Export failed", fiber.StatusInternalServerError, nil)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return response.Error(c, "Export failed", fiber.StatusInternalServerError, nil)
	}

	filename := "stok-durumu-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// stockError maps service sentinels onto HTTP statuses.
func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, stock.ErrInvalidQuantity),
		errors.Is(err, stock.ErrUnknownMovementKind),
		errors.Is(err, stock.ErrUnknownTargetKind),
		errors.Is(err, stock.ErrMissingFormFields):
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	case errors.Is(err, stock.ErrInvalidStockIdentity):
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	case errors.Is(err, stock.ErrInsufficientStock):
		return response.Error(c, err.Error(), fiber.StatusConflict, nil)
	default:
		return response.Error(c, "Internal server error", fiber.StatusInternalServerError, nil)
	}
}
