package service

import (
	"context"
	"strings"
	"testing"

	"AutoSync/dao"
	"AutoSync/models"
	"AutoSync/types"

	"gorm.io/gorm"
)

func newInquiryService(db *gorm.DB) *InquiryService {
	return &InquiryService{
		Inquiries: dao.NewInquiries(db),
		Vehicles:  dao.NewVehicles(db),
		Users:     dao.NewUsers(db),
		Audit:     newAuditService(db),
	}
}

func TestInquiryContactedAtStampedOnce(t *testing.T) {
	db := setupDB(t)
	svc := newInquiryService(db)
	ctx := context.Background()

	inquiry, err := svc.Create(ctx, &types.CreateInquiryRequest{
		Name:    "Maria",
		Email:   "maria@example.com",
		Message: "Is the Corolla still available?",
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inquiry.Status != models.InquiryStatusNew || inquiry.ContactedAt != nil {
		t.Fatalf("fresh inquiry status = %s contacted_at = %v", inquiry.Status, inquiry.ContactedAt)
	}

	contacted := models.InquiryStatusContacted
	updated, err := svc.Update(ctx, 1, inquiry.ID, &types.UpdateInquiryRequest{Status: &contacted}, "127.0.0.1")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ContactedAt == nil {
		t.Fatal("contacted_at must be stamped on the first status change")
	}
	stamp := *updated.ContactedAt

	qualified := models.InquiryStatusQualified
	updated, err = svc.Update(ctx, 1, inquiry.ID, &types.UpdateInquiryRequest{Status: &qualified}, "127.0.0.1")
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if updated.ContactedAt == nil || !updated.ContactedAt.Equal(stamp) {
		t.Errorf("contacted_at changed on later updates: %v != %v", updated.ContactedAt, stamp)
	}
}

func TestInquiryAddNoteAppends(t *testing.T) {
	db := setupDB(t)
	svc := newInquiryService(db)
	ctx := context.Background()

	inquiry, err := svc.Create(ctx, &types.CreateInquiryRequest{
		Name:    "Maria",
		Email:   "maria@example.com",
		Message: "Test drive?",
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.AddNote(ctx, 1, inquiry.ID, &types.AddInquiryNoteRequest{Note: "called, no answer"}, ""); err != nil {
		t.Fatalf("first note: %v", err)
	}
	updated, err := svc.AddNote(ctx, 1, inquiry.ID, &types.AddInquiryNoteRequest{Note: "scheduled for friday"}, "")
	if err != nil {
		t.Fatalf("second note: %v", err)
	}

	if !strings.Contains(updated.Notes, "called, no answer") ||
		!strings.Contains(updated.Notes, "scheduled for friday") {
		t.Errorf("notes missing entries: %q", updated.Notes)
	}
	if strings.Count(updated.Notes, "\n") != 1 {
		t.Errorf("expected two note lines, got %q", updated.Notes)
	}
}

func TestAssignInquiryRejectsInactiveUser(t *testing.T) {
	db := setupDB(t)
	svc := newInquiryService(db)
	ctx := context.Background()

	inactive := seedUser(t, db, models.RoleSeller, 0)
	if err := db.Model(&models.User{}).Where("id = ?", inactive.ID).
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	inquiry, err := svc.Create(ctx, &types.CreateInquiryRequest{
		Name:    "Maria",
		Email:   "maria@example.com",
		Message: "Financing options?",
	}, "127.0.0.1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Assign(ctx, 1, inquiry.ID, &types.AssignInquiryRequest{AssignedTo: inactive.ID}, "")
	if KindOf(err) != ErrKindValidation {
		t.Fatalf("kind = %v, want validation", KindOf(err))
	}
}
