package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"AutoSync/dao"
	"AutoSync/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:autosync_%d?mode=memory&cache=shared", seq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(
		&models.Stand{},
		&models.User{},
		&models.Vehicle{},
		&models.VehicleImage{},
		&models.Sale{},
		&models.Inquiry{},
		&models.Favorite{},
		&models.VehicleView{},
		&models.AuditLog{},
		&models.ImageCleanupTask{},
	)
	if err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedStand(t *testing.T, db *gorm.DB) *models.Stand {
	t.Helper()
	stand := &models.Stand{
		Name:     "Central",
		Slug:     fmt.Sprintf("central-%d", atomic.AddInt64(&testDBSeq, 1)),
		Address:  "Main St 1",
		City:     "Lisbon",
		IsActive: true,
	}
	if err := db.Create(stand).Error; err != nil {
		t.Fatalf("seed stand: %v", err)
	}
	return stand
}

func seedVehicle(t *testing.T, db *gorm.DB, standID int64) *models.Vehicle {
	t.Helper()
	v := &models.Vehicle{
		StandID:      standID,
		Reference:    fmt.Sprintf("REF-%d", atomic.AddInt64(&testDBSeq, 1)),
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2021,
		FuelType:     models.FuelGasoline,
		Transmission: models.TransmissionManual,
		Doors:        5,
		Seats:        5,
		Price:        18000,
		Status:       models.VehicleStatusAvailable,
	}
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	return v
}

func seedUser(t *testing.T, db *gorm.DB, role string, commissionRate float64) *models.User {
	t.Helper()
	u := &models.User{
		Name:           "Seller",
		Email:          fmt.Sprintf("seller%d@example.com", atomic.AddInt64(&testDBSeq, 1)),
		Password:       "x",
		Role:           role,
		CommissionRate: commissionRate,
		IsActive:       true,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func newAuditService(db *gorm.DB) *AuditService {
	return &AuditService{Logs: dao.NewAuditLogs(db)}
}
