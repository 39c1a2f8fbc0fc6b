package service

import (
	"context"
	"testing"

	"AutoSync/dao"
	"AutoSync/models"
	"AutoSync/types"

	"gorm.io/gorm"
)

func newSaleService(db *gorm.DB) *SaleService {
	return &SaleService{
		Sales:    dao.NewSales(db),
		Vehicles: dao.NewVehicles(db),
		Users:    dao.NewUsers(db),
		Stands:   dao.NewStands(db),
		Audit:    newAuditService(db),
	}
}

func TestCreateSaleMarksVehicleSold(t *testing.T) {
	db := setupDB(t)
	stand := seedStand(t, db)
	vehicle := seedVehicle(t, db, stand.ID)
	seller := seedUser(t, db, models.RoleSeller, 5)
	svc := newSaleService(db)

	sale, err := svc.Create(context.Background(), seller.ID, &types.CreateSaleRequest{
		VehicleID:     vehicle.ID,
		SellerID:      seller.ID,
		StandID:       stand.ID,
		SalePrice:     20000,
		PaymentMethod: models.PaymentCash,
		CustomerName:  "Ana",
		SoldAt:        "2026-08-01",
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	// 5% of 20000
	if sale.CommissionAmount != 1000 {
		t.Errorf("commission = %v, want 1000", sale.CommissionAmount)
	}

	var v models.Vehicle
	if err := db.First(&v, "id = ?", vehicle.ID).Error; err != nil {
		t.Fatalf("reload vehicle: %v", err)
	}
	if v.Status != models.VehicleStatusSold {
		t.Errorf("vehicle status = %s, want sold", v.Status)
	}
}

func TestCreateSaleExplicitCommissionWins(t *testing.T) {
	db := setupDB(t)
	stand := seedStand(t, db)
	vehicle := seedVehicle(t, db, stand.ID)
	seller := seedUser(t, db, models.RoleSeller, 5)
	svc := newSaleService(db)

	commission := 750.0
	sale, err := svc.Create(context.Background(), seller.ID, &types.CreateSaleRequest{
		VehicleID:        vehicle.ID,
		SellerID:         seller.ID,
		StandID:          stand.ID,
		SalePrice:        20000,
		CommissionAmount: &commission,
		PaymentMethod:    models.PaymentFinancing,
		CustomerName:     "Rui",
		SoldAt:           "2026-08-01",
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if sale.CommissionAmount != commission {
		t.Errorf("commission = %v, want %v", sale.CommissionAmount, commission)
	}
}

func TestCreateSaleRejectsSoldVehicle(t *testing.T) {
	db := setupDB(t)
	stand := seedStand(t, db)
	vehicle := seedVehicle(t, db, stand.ID)
	seller := seedUser(t, db, models.RoleSeller, 5)
	svc := newSaleService(db)

	if err := db.Model(&models.Vehicle{}).Where("id = ?", vehicle.ID).
		Update("status", models.VehicleStatusSold).Error; err != nil {
		t.Fatalf("mark sold: %v", err)
	}

	_, err := svc.Create(context.Background(), seller.ID, &types.CreateSaleRequest{
		VehicleID:     vehicle.ID,
		SellerID:      seller.ID,
		StandID:       stand.ID,
		SalePrice:     20000,
		PaymentMethod: models.PaymentCash,
		CustomerName:  "Ana",
		SoldAt:        "2026-08-01",
	}, "127.0.0.1")
	if KindOf(err) != ErrKindValidation {
		t.Fatalf("kind = %v, want validation", KindOf(err))
	}
}

func TestCreateSaleRejectsReservedVehicle(t *testing.T) {
	db := setupDB(t)
	stand := seedStand(t, db)
	vehicle := seedVehicle(t, db, stand.ID)
	seller := seedUser(t, db, models.RoleSeller, 5)
	svc := newSaleService(db)

	if err := db.Model(&models.Vehicle{}).Where("id = ?", vehicle.ID).
		Update("status", models.VehicleStatusReserved).Error; err != nil {
		t.Fatalf("mark reserved: %v", err)
	}

	_, err := svc.Create(context.Background(), seller.ID, &types.CreateSaleRequest{
		VehicleID:     vehicle.ID,
		SellerID:      seller.ID,
		StandID:       stand.ID,
		SalePrice:     20000,
		PaymentMethod: models.PaymentCash,
		CustomerName:  "Ana",
		SoldAt:        "2026-08-01",
	}, "127.0.0.1")
	if KindOf(err) != ErrKindValidation {
		t.Fatalf("kind = %v, want validation", KindOf(err))
	}

	var count int64
	if err := db.Model(&models.Sale{}).Count(&count).Error; err != nil {
		t.Fatalf("count sales: %v", err)
	}
	if count != 0 {
		t.Errorf("sales = %d, want 0", count)
	}
}

func TestCancelSaleRestoresVehicle(t *testing.T) {
	db := setupDB(t)
	stand := seedStand(t, db)
	vehicle := seedVehicle(t, db, stand.ID)
	seller := seedUser(t, db, models.RoleSeller, 5)
	svc := newSaleService(db)

	sale, err := svc.Create(context.Background(), seller.ID, &types.CreateSaleRequest{
		VehicleID:     vehicle.ID,
		SellerID:      seller.ID,
		StandID:       stand.ID,
		SalePrice:     20000,
		PaymentMethod: models.PaymentCash,
		CustomerName:  "Ana",
		SoldAt:        "2026-08-01",
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	if err := svc.Cancel(context.Background(), seller.ID, sale.ID, "127.0.0.1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	var v models.Vehicle
	if err := db.First(&v, "id = ?", vehicle.ID).Error; err != nil {
		t.Fatalf("reload vehicle: %v", err)
	}
	if v.Status != models.VehicleStatusAvailable {
		t.Errorf("vehicle status = %s, want available", v.Status)
	}
	if _, err := svc.Get(context.Background(), sale.ID); KindOf(err) != ErrKindNotFound {
		t.Errorf("cancelled sale still readable, kind = %v", KindOf(err))
	}
}
