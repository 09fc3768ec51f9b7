package requests

import (
	"context"
	"errors"

	"envanter-backend/internal/models"
	"envanter-backend/internal/stock"

	"gorm.io/gorm"
)

var (
	ErrRequestNotFound = errors.New("Request not found")
	ErrRequestClosed   = errors.New("Request is already closed")
	ErrOverConversion  = errors.New("Quantity exceeds the request's remaining amount")
)

// Service is the thin bridge between the request (talep) workflow and the
// stock ledger. It owns the request's remaining-quantity bookkeeping; the
// ledger semantics stay in stock.Service.
type Service struct {
	DB    *gorm.DB
	Stock *stock.Service
}

// ConvertResult reports the movement created from a request conversion.
type ConvertResult struct {
	MovementID uint `json:"hareket_id"`
	Remaining  int  `json:"kalan_miktar"`
	Closed     bool `json:"kapandi"`
}

// ConvertToStock turns (part of) an open request into an inbound stock
// movement with provenance pointing back at the request, decrementing its
// remaining quantity and closing it at zero. One transaction: the movement,
// the total bump and the request update commit or roll back together.
func (s *Service) ConvertToStock(ctx context.Context, requestID uint, quantity int, actor string) (*ConvertResult, error) {
	if quantity <= 0 {
		return nil, stock.ErrInvalidQuantity
	}
	var res ConvertResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		talep, err := lockRequest(tx, requestID)
		if err != nil {
			return err
		}
		if quantity > talep.KalanMiktar {
			return ErrOverConversion
		}

		movementID, err := s.Stock.ApplyMovement(tx, stock.MovementInput{
			HardwareType: talep.DonanimTipi,
			Brand:        talep.Marka,
			Model:        talep.Model,
			Quantity:     quantity,
			Kind:         stock.KindInbound,
			Actor:        actor,
			Description:  "talep donusumu: " + talep.TalepEden,
			Provenance:   &stock.Provenance{Type: "talep", ID: talep.ID},
		})
		if err != nil {
			return err
		}

		remaining := talep.KalanMiktar - quantity
		updates := map[string]interface{}{"kalan_miktar": remaining}
		if remaining == 0 {
			updates["durum"] = models.TalepKapali
		}
		if err := tx.Model(&models.Talep{}).Where("id = ?", talep.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		res = ConvertResult{
			MovementID: movementID,
			Remaining:  remaining,
			Closed:     remaining == 0,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// FulfillResult reports an allocation made on behalf of a request.
type FulfillResult struct {
	Allocation *stock.AllocationResult `json:"atama"`
	Remaining  int                     `json:"kalan_miktar"`
	Closed     bool                    `json:"kapandi"`
}

// FulfillByAllocation satisfies one unit of an open request by allocating
// existing stock into a target record. The allocation and the request
// bookkeeping share one transaction.
func (s *Service) FulfillByAllocation(ctx context.Context, requestID uint, in stock.AllocateInput) (*FulfillResult, error) {
	var res FulfillResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		talep, err := lockRequest(tx, requestID)
		if err != nil {
			return err
		}
		if talep.KalanMiktar < 1 {
			return ErrOverConversion
		}

		if in.HardwareType == "" {
			in.HardwareType = talep.DonanimTipi
		}
		if in.Brand == "" {
			in.Brand = talep.Marka
		}
		if in.Model == "" {
			in.Model = talep.Model
		}
		in.Quantity = 1

		alloc, err := s.Stock.AllocateTx(tx, in)
		if err != nil {
			return err
		}

		remaining := talep.KalanMiktar - 1
		updates := map[string]interface{}{"kalan_miktar": remaining}
		if remaining == 0 {
			updates["durum"] = models.TalepKapali
		}
		if err := tx.Model(&models.Talep{}).Where("id = ?", talep.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		res = FulfillResult{
			Allocation: alloc,
			Remaining:  remaining,
			Closed:     remaining == 0,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// lockRequest fetches an open request under a row lock so two fulfillments
// cannot both consume the same remaining quantity.
func lockRequest(tx *gorm.DB, id uint) (*models.Talep, error) {
	var talep models.Talep
	err := stock.LockForUpdate(tx).
		First(&talep, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if talep.Durum != models.TalepAcik {
		return nil, ErrRequestClosed
	}
	return &talep, nil
}
