package service

import (
	"context"
	"time"

	"AutoSync/dao"
	"AutoSync/models"
	"AutoSync/types"

	"gorm.io/gorm"
)

var _ ISaleService = (*SaleService)(nil)

type ISaleService interface {
	List(ctx context.Context, f *types.SaleFilter) ([]*models.Sale, int64, error)
	Get(ctx context.Context, id int64) (*models.Sale, error)

	// Create records the sale and marks the vehicle sold in one transaction.
	// The vehicle must be available; commission defaults to the seller's rate.
	Create(ctx context.Context, actor int64, req *types.CreateSaleRequest, ip string) (*models.Sale, error)

	Update(ctx context.Context, actor, id int64, req *types.UpdateSaleRequest, ip string) (*models.Sale, error)

	// Cancel removes the sale and puts the vehicle back on the market.
	Cancel(ctx context.Context, actor, id int64, ip string) error

	Statistics(ctx context.Context) (*types.SaleStatistics, error)
	TopSellers(ctx context.Context, limit int) ([]*types.TopSeller, error)
}

type SaleService struct {
	Sales    *dao.Sales
	Vehicles *dao.Vehicles
	Users    *dao.Users
	Stands   *dao.Stands
	Audit    IAuditService
}

func parseSoldAt(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (s *SaleService) List(ctx context.Context, f *types.SaleFilter) ([]*models.Sale, int64, error) {
	f.Normalize()
	sales, total, err := s.Sales.List(ctx, f)
	if err != nil {
		return nil, 0, errPersistence(err)
	}
	return sales, total, nil
}

func (s *SaleService) Get(ctx context.Context, id int64) (*models.Sale, error) {
	sale, err := s.Sales.FindByID(ctx, id)
	if err != nil {
		return nil, errNotFound("sale %d not found", id)
	}
	return sale, nil
}

func (s *SaleService) Create(ctx context.Context, actor int64, req *types.CreateSaleRequest, ip string) (*models.Sale, error) {
	soldAt, err := parseSoldAt(req.SoldAt)
	if err != nil {
		return nil, errValidation("sold_at must be an RFC3339 timestamp or a 2006-01-02 date")
	}

	vehicle, err := s.Vehicles.FindByID(ctx, req.VehicleID)
	if err != nil {
		return nil, errNotFound("vehicle %d not found", req.VehicleID)
	}
	if vehicle.Status != models.VehicleStatusAvailable {
		return nil, errValidation("vehicle %d is not available for sale", req.VehicleID)
	}

	seller, err := s.Users.FindByID(ctx, req.SellerID)
	if err != nil {
		return nil, errNotFound("seller %d not found", req.SellerID)
	}
	if exists, _ := s.Stands.IsExist(ctx, "id = ?", req.StandID); !exists {
		return nil, errNotFound("stand %d not found", req.StandID)
	}

	commission := req.SalePrice * seller.CommissionRate / 100
	if req.CommissionAmount != nil {
		commission = *req.CommissionAmount
	}

	sale := &models.Sale{
		VehicleID:        req.VehicleID,
		SellerID:         req.SellerID,
		StandID:          req.StandID,
		SalePrice:        req.SalePrice,
		CommissionAmount: commission,
		PaymentMethod:    req.PaymentMethod,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		Notes:            req.Notes,
		SoldAt:           soldAt,
	}
	err = s.Sales.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		return tx.Model(&models.Vehicle{}).
			Where("id = ?", req.VehicleID).
			Update("status", models.VehicleStatusSold).Error
	})
	if err != nil {
		return nil, errPersistence(err)
	}

	s.Audit.Record(ctx, &actor, models.AuditActionCreate, sale.TableName(), sale.ID, req, ip)
	return sale, nil
}

func (s *SaleService) Update(ctx context.Context, actor, id int64, req *types.UpdateSaleRequest, ip string) (*models.Sale, error) {
	sale, err := s.Sales.FindByID(ctx, id)
	if err != nil {
		return nil, errNotFound("sale %d not found", id)
	}

	updates := map[string]any{}
	if req.SalePrice != nil {
		updates["sale_price"] = *req.SalePrice
	}
	if req.CommissionAmount != nil {
		updates["commission_amount"] = *req.CommissionAmount
	}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		updates["customer_email"] = *req.CustomerEmail
	}
	if req.CustomerPhone != nil {
		updates["customer_phone"] = *req.CustomerPhone
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if err := s.Sales.UpdateByID(ctx, id, updates); err != nil {
		return nil, errPersistence(err)
	}

	s.Audit.Record(ctx, &actor, models.AuditActionUpdate, sale.TableName(), id, updates, ip)
	updated, err := s.Sales.FindByID(ctx, id)
	if err != nil {
		return nil, errPersistence(err)
	}
	return updated, nil
}

func (s *SaleService) Cancel(ctx context.Context, actor, id int64, ip string) error {
	sale, err := s.Sales.FindByID(ctx, id)
	if err != nil {
		return errNotFound("sale %d not found", id)
	}

	err = s.Sales.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Delete(&models.Sale{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Vehicle{}).
			Where("id = ?", sale.VehicleID).
			Update("status", models.VehicleStatusAvailable).Error
	})
	if err != nil {
		return errPersistence(err)
	}

	s.Audit.Record(ctx, &actor, models.AuditActionDelete, sale.TableName(), id, nil, ip)
	return nil
}

func (s *SaleService) Statistics(ctx context.Context) (*types.SaleStatistics, error) {
	stats, err := s.Sales.Statistics(ctx)
	if err != nil {
		return nil, errPersistence(err)
	}
	return stats, nil
}

func (s *SaleService) TopSellers(ctx context.Context, limit int) ([]*types.TopSeller, error) {
	if limit <= 0 {
		limit = 10
	}
	sellers, err := s.Sales.TopSellers(ctx, limit)
	if err != nil {
		return nil, errPersistence(err)
	}
	return sellers, nil
}
