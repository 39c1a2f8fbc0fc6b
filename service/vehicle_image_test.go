package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"sync"
	"testing"

	"AutoSync/config"
	"AutoSync/dao"
	"AutoSync/models"
	"AutoSync/pkg/objectstore"

	"gorm.io/gorm"
)

type fakeStore struct {
	mu        sync.Mutex
	uploads   int
	failAt    int // 1-based upload that fails, 0 means never
	deleteErr error
	deleted   []string
}

func (f *fakeStore) Upload(ctx context.Context, data []byte, folder, ext string) (*objectstore.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	if f.failAt > 0 && f.uploads == f.failAt {
		return nil, errors.New("store unavailable")
	}
	return &objectstore.Result{
		ExternalID: fmt.Sprintf("%s/obj-%d%s", folder, f.uploads, ext),
		URL:        fmt.Sprintf("https://cdn.example.com/%s/obj-%d%s", folder, f.uploads, ext),
		Width:      2,
		Height:     2,
		ByteSize:   len(data),
	}, nil
}

func (f *fakeStore) Delete(ctx context.Context, externalID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, externalID)
	return nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func pngUploads(t *testing.T, n int) []ImageUpload {
	t.Helper()
	uploads := make([]ImageUpload, n)
	for i := range uploads {
		uploads[i] = ImageUpload{Data: pngBytes(t), AltText: fmt.Sprintf("photo %d", i)}
	}
	return uploads
}

func newImageService(db *gorm.DB, store objectstore.Client) IVehicleImageService {
	return NewVehicleImageService(
		store,
		dao.NewVehicleImages(db),
		dao.NewVehicles(db),
		dao.NewImageCleanupTasks(db),
		&config.OssConfig{Folder: "vehicles"},
	)
}

func imageRows(t *testing.T, db *gorm.DB, vehicleID int64) []models.VehicleImage {
	t.Helper()
	var rows []models.VehicleImage
	if err := db.Where("vehicle_id = ?", vehicleID).Order("order_index ASC").Find(&rows).Error; err != nil {
		t.Fatalf("load images: %v", err)
	}
	return rows
}

func primaryCount(t *testing.T, db *gorm.DB, vehicleID int64) int64 {
	t.Helper()
	var count int64
	err := db.Model(&models.VehicleImage{}).
		Where("vehicle_id = ? AND is_primary = ?", vehicleID, true).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count primaries: %v", err)
	}
	return count
}

func TestUploadBatchFirstImageBecomesPrimary(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	svc := newImageService(db, &fakeStore{})

	created, err := svc.UploadBatch(context.Background(), vehicle.ID, pngUploads(t, 3))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("created = %d, want 3", len(created))
	}
	if !created[0].IsPrimary {
		t.Error("first image of an empty collection must be primary")
	}
	for i, img := range created {
		if img.OrderIndex != i {
			t.Errorf("image %d order_index = %d, want %d", i, img.OrderIndex, i)
		}
		if i > 0 && img.IsPrimary {
			t.Errorf("image %d must not be primary", i)
		}
	}
	if got := primaryCount(t, db, vehicle.ID); got != 1 {
		t.Fatalf("primary count = %d, want 1", got)
	}
}

func TestUploadBatchAppendsAfterExisting(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	svc := newImageService(db, &fakeStore{})

	if _, err := svc.UploadBatch(context.Background(), vehicle.ID, pngUploads(t, 2)); err != nil {
		t.Fatalf("first upload: %v", err)
	}
	created, err := svc.UploadBatch(context.Background(), vehicle.ID, pngUploads(t, 2))
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}

	for i, img := range created {
		if img.IsPrimary {
			t.Errorf("appended image %d must not be primary", i)
		}
		if want := 2 + i; img.OrderIndex != want {
			t.Errorf("appended image %d order_index = %d, want %d", i, img.OrderIndex, want)
		}
	}
	if got := primaryCount(t, db, vehicle.ID); got != 1 {
		t.Fatalf("primary count = %d, want 1", got)
	}
}

func TestUploadBatchRollsBackOnStoreFailure(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	svc := newImageService(db, &fakeStore{failAt: 3})

	_, err := svc.UploadBatch(context.Background(), vehicle.ID, pngUploads(t, 5))
	if err == nil {
		t.Fatal("expected error")
	}
	if KindOf(err) != ErrKindExternalStore {
		t.Fatalf("kind = %v, want external store", KindOf(err))
	}
	if rows := imageRows(t, db, vehicle.ID); len(rows) != 0 {
		t.Fatalf("rows after rollback = %d, want 0", len(rows))
	}
}

func TestUploadBatchRejectsBadBatchSizes(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	store := &fakeStore{}
	svc := newImageService(db, store)

	if _, err := svc.UploadBatch(context.Background(), vehicle.ID, nil); KindOf(err) != ErrKindValidation {
		t.Errorf("empty batch: kind = %v, want validation", KindOf(err))
	}
	if _, err := svc.UploadBatch(context.Background(), vehicle.ID, pngUploads(t, 11)); KindOf(err) != ErrKindValidation {
		t.Errorf("oversized batch: kind = %v, want validation", KindOf(err))
	}
	if store.uploads != 0 {
		t.Errorf("store uploads = %d, want 0", store.uploads)
	}
}

func TestUploadBatchRejectsNonImagePayload(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	store := &fakeStore{}
	svc := newImageService(db, store)

	uploads := []ImageUpload{
		{Data: pngBytes(t)},
		{Data: []byte("definitely not an image")},
	}
	_, err := svc.UploadBatch(context.Background(), vehicle.ID, uploads)
	if KindOf(err) != ErrKindValidation {
		t.Fatalf("kind = %v, want validation", KindOf(err))
	}
	// validation runs before any remote call
	if store.uploads != 0 {
		t.Errorf("store uploads = %d, want 0", store.uploads)
	}
}

func TestUploadBatchUnknownVehicle(t *testing.T) {
	db := setupDB(t)
	svc := newImageService(db, &fakeStore{})

	_, err := svc.UploadBatch(context.Background(), 9999, pngUploads(t, 1))
	if KindOf(err) != ErrKindNotFound {
		t.Fatalf("kind = %v, want not found", KindOf(err))
	}
}

func TestDeletePromotesLowestOrderedSurvivor(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	svc := newImageService(db, &fakeStore{})

	created, err := svc.UploadBatch(context.Background(), vehicle.ID, pngUploads(t, 3))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := svc.Delete(context.Background(), vehicle.ID, created[0].ID); err != nil {
		t.Fatalf("delete primary: %v", err)
	}

	rows := imageRows(t, db, vehicle.ID)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if got := primaryCount(t, db, vehicle.ID); got != 1 {
		t.Fatalf("primary count = %d, want 1", got)
	}
	if !rows[0].IsPrimary || rows[0].ID != created[1].ID {
		t.Errorf("survivor with lowest order_index must be promoted, got primary=%v id=%d", rows[0].IsPrimary, rows[0].ID)
	}
}

func TestDeleteLastImageLeavesEmptyCollection(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	svc := newImageService(db, &fakeStore{})

	created, err := svc.UploadBatch(context.Background(), vehicle.ID, pngUploads(t, 1))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := svc.Delete(context.Background(), vehicle.ID, created[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rows := imageRows(t, db, vehicle.ID); len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}
}

func TestDeleteQueuesCleanupWhenRemoteFails(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	store := &fakeStore{}
	svc := newImageService(db, store)

	created, err := svc.UploadBatch(context.Background(), vehicle.ID, pngUploads(t, 1))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	store.deleteErr = errors.New("store unavailable")
	if err := svc.Delete(context.Background(), vehicle.ID, created[0].ID); err != nil {
		t.Fatalf("delete must succeed despite remote failure: %v", err)
	}

	if rows := imageRows(t, db, vehicle.ID); len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}
	var tasks []models.ImageCleanupTask
	if err := db.Find(&tasks).Error; err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ExternalID != created[0].ExternalID {
		t.Fatalf("expected one cleanup task for %s, got %+v", created[0].ExternalID, tasks)
	}
}

func TestDeleteRejectsCrossVehicleImage(t *testing.T) {
	db := setupDB(t)
	stand := seedStand(t, db)
	v1 := seedVehicle(t, db, stand.ID)
	v2 := seedVehicle(t, db, stand.ID)
	svc := newImageService(db, &fakeStore{})

	created, err := svc.UploadBatch(context.Background(), v1.ID, pngUploads(t, 1))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	err = svc.Delete(context.Background(), v2.ID, created[0].ID)
	if KindOf(err) != ErrKindNotFound {
		t.Fatalf("kind = %v, want not found", KindOf(err))
	}
	if rows := imageRows(t, db, v1.ID); len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
}

func TestSetPrimaryMovesFlagAndIsIdempotent(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	svc := newImageService(db, &fakeStore{})

	created, err := svc.UploadBatch(context.Background(), vehicle.ID, pngUploads(t, 3))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := svc.SetPrimary(context.Background(), vehicle.ID, created[2].ID); err != nil {
			t.Fatalf("set primary (call %d): %v", i+1, err)
		}
		if got := primaryCount(t, db, vehicle.ID); got != 1 {
			t.Fatalf("primary count = %d, want 1", got)
		}
		var img models.VehicleImage
		if err := db.First(&img, "id = ?", created[2].ID).Error; err != nil {
			t.Fatalf("reload: %v", err)
		}
		if !img.IsPrimary {
			t.Fatal("target must be primary")
		}
	}
}

func TestReorderAssignsPositionIndexes(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	svc := newImageService(db, &fakeStore{})

	created, err := svc.UploadBatch(context.Background(), vehicle.ID, pngUploads(t, 3))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	order := []int64{created[2].ID, created[0].ID, created[1].ID}
	if err := svc.Reorder(context.Background(), vehicle.ID, order); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	rows := imageRows(t, db, vehicle.ID)
	for i, id := range order {
		if rows[i].ID != id {
			t.Errorf("position %d = image %d, want %d", i, rows[i].ID, id)
		}
		if rows[i].OrderIndex != i {
			t.Errorf("image %d order_index = %d, want %d", rows[i].ID, rows[i].OrderIndex, i)
		}
	}
	// order alone never touches the primary flag
	if got := primaryCount(t, db, vehicle.ID); got != 1 {
		t.Fatalf("primary count = %d, want 1", got)
	}
}

func TestReorderRejectsForeignImages(t *testing.T) {
	db := setupDB(t)
	stand := seedStand(t, db)
	v1 := seedVehicle(t, db, stand.ID)
	v2 := seedVehicle(t, db, stand.ID)
	svc := newImageService(db, &fakeStore{})

	mine, err := svc.UploadBatch(context.Background(), v1.ID, pngUploads(t, 1))
	if err != nil {
		t.Fatalf("upload v1: %v", err)
	}
	theirs, err := svc.UploadBatch(context.Background(), v2.ID, pngUploads(t, 1))
	if err != nil {
		t.Fatalf("upload v2: %v", err)
	}

	err = svc.Reorder(context.Background(), v1.ID, []int64{mine[0].ID, theirs[0].ID})
	if KindOf(err) != ErrKindValidation {
		t.Fatalf("kind = %v, want validation", KindOf(err))
	}
}

func TestReorderLeavesOmittedImagesUntouched(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	svc := newImageService(db, &fakeStore{})

	created, err := svc.UploadBatch(context.Background(), vehicle.ID, pngUploads(t, 3))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	// move only the last image to the front
	if err := svc.Reorder(context.Background(), vehicle.ID, []int64{created[2].ID}); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	var moved, untouched models.VehicleImage
	if err := db.First(&moved, "id = ?", created[2].ID).Error; err != nil {
		t.Fatalf("reload moved: %v", err)
	}
	if err := db.First(&untouched, "id = ?", created[1].ID).Error; err != nil {
		t.Fatalf("reload untouched: %v", err)
	}
	if moved.OrderIndex != 0 {
		t.Errorf("moved order_index = %d, want 0", moved.OrderIndex)
	}
	if untouched.OrderIndex != 1 {
		t.Errorf("omitted image order_index = %d, want 1", untouched.OrderIndex)
	}
}

func TestListOrdersPrimaryFirst(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	svc := newImageService(db, &fakeStore{})

	created, err := svc.UploadBatch(context.Background(), vehicle.ID, pngUploads(t, 3))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := svc.SetPrimary(context.Background(), vehicle.ID, created[2].ID); err != nil {
		t.Fatalf("set primary: %v", err)
	}

	images, err := svc.List(context.Background(), vehicle.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("images = %d, want 3", len(images))
	}
	if images[0].ID != created[2].ID {
		t.Errorf("first listed = %d, want primary %d", images[0].ID, created[2].ID)
	}
}
