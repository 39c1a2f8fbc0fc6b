package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"AutoSync/config"
	"AutoSync/dao"
	"AutoSync/models"
	"AutoSync/pkg/log"
	"AutoSync/pkg/objectstore"
	"AutoSync/pkg/snowflake"
	"AutoSync/types"

	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
	"gorm.io/gorm"
)

// ImageUpload is one file of an upload batch, already read into memory.
type ImageUpload struct {
	Data    []byte
	AltText string
}

var _ IVehicleImageService = (*VehicleImageService)(nil)

type IVehicleImageService interface {
	// UploadBatch stores 1-10 images for a vehicle in input order. The whole
	// batch is one transaction: an object-store failure rolls every row back.
	UploadBatch(ctx context.Context, vehicleID int64, uploads []ImageUpload) ([]*models.VehicleImage, error)

	// List returns the vehicle's images, primary first then by order_index.
	List(ctx context.Context, vehicleID int64) ([]*models.VehicleImage, error)

	// Delete removes the image row and best-effort deletes the remote object.
	// Deleting the primary promotes the lowest-ordered survivor.
	Delete(ctx context.Context, vehicleID, imageID int64) error

	// SetPrimary makes the target the vehicle's only primary image.
	SetPrimary(ctx context.Context, vehicleID, imageID int64) error

	// Reorder assigns order_index by position for the referenced images.
	// Images omitted from the sequence keep their previous index.
	Reorder(ctx context.Context, vehicleID int64, imageIDs []int64) error
}

type VehicleImageService struct {
	Store    objectstore.Client
	Images   *dao.VehicleImages
	Vehicles *dao.Vehicles
	Cleanup  *dao.ImageCleanupTasks
	OssConf  *config.OssConfig

	// one mutex per vehicle so primary/order invariants are linearizable
	locks cmap.ConcurrentMap[string, *sync.Mutex]
}

func NewVehicleImageService(
	store objectstore.Client,
	images *dao.VehicleImages,
	vehicles *dao.Vehicles,
	cleanup *dao.ImageCleanupTasks,
	ossConf *config.OssConfig,
) IVehicleImageService {
	return &VehicleImageService{
		Store:    store,
		Images:   images,
		Vehicles: vehicles,
		Cleanup:  cleanup,
		OssConf:  ossConf,
		locks:    cmap.New[*sync.Mutex](),
	}
}

func (s *VehicleImageService) lockVehicle(vehicleID int64) func() {
	key := strconv.FormatInt(vehicleID, 10)
	mu, _ := s.locks.Get(key)
	if mu == nil {
		mu = &sync.Mutex{}
		if !s.locks.SetIfAbsent(key, mu) {
			mu, _ = s.locks.Get(key)
		}
	}
	mu.Lock()
	return mu.Unlock
}

var allowedImageMime = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// validateUpload sniffs the MIME type and decodes the image header.
// Returns the file extension for the object key.
func validateUpload(index int, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errValidation("file %d is empty", index)
	}
	if len(data) > types.MaxImageSize {
		return "", errValidation("file %d exceeds %d bytes", index, types.MaxImageSize)
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	contentType := http.DetectContentType(head)
	ext, ok := allowedImageMime[contentType]
	if !ok {
		return "", errValidation("file %d has unsupported type %s", index, contentType)
	}

	if _, format, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", errValidation("file %d is not a decodable image", index)
	} else if f := strings.ToLower(format); f != "jpeg" && f != "png" && f != "webp" {
		return "", errValidation("file %d has unsupported format %s", index, f)
	}
	return ext, nil
}

func (s *VehicleImageService) folder(vehicleID int64) string {
	base := s.OssConf.Folder
	if base == "" {
		base = "vehicles"
	}
	return fmt.Sprintf("%s/%d", strings.Trim(base, "/"), vehicleID)
}

func (s *VehicleImageService) UploadBatch(ctx context.Context, vehicleID int64, uploads []ImageUpload) ([]*models.VehicleImage, error) {
	if len(uploads) < 1 || len(uploads) > types.MaxImagesPerBatch {
		return nil, errValidation("expected between 1 and %d files, got %d", types.MaxImagesPerBatch, len(uploads))
	}

	exts := make([]string, len(uploads))
	for i, up := range uploads {
		ext, err := validateUpload(i, up.Data)
		if err != nil {
			return nil, err
		}
		exts[i] = ext
	}

	unlock := s.lockVehicle(vehicleID)
	defer unlock()

	exists, err := s.Vehicles.IsExist(ctx, "id = ?", vehicleID)
	if err != nil {
		return nil, errPersistence(err)
	}
	if !exists {
		return nil, errNotFound("vehicle %d not found", vehicleID)
	}

	existing, err := s.Images.CountByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, errPersistence(err)
	}

	created := make([]*models.VehicleImage, 0, len(uploads))
	err = s.Images.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, up := range uploads {
			result, err := s.Store.Upload(ctx, up.Data, s.folder(vehicleID), exts[i])
			if err != nil {
				return errExternalStore(err)
			}

			img := &models.VehicleImage{
				ID:         snowflake.GenID(),
				VehicleID:  vehicleID,
				ExternalID: result.ExternalID,
				URL:        result.URL,
				AltText:    up.AltText,
				// primary is decided once per vehicle: the first file
				// attached to a still-empty collection
				IsPrimary:  existing == 0 && i == 0,
				OrderIndex: int(existing) + i,
				FileSize:   result.ByteSize,
				Width:      result.Width,
				Height:     result.Height,
				CreatedAt:  time.Now(),
				UpdatedAt:  time.Now(),
			}
			if err := tx.Create(img).Error; err != nil {
				return errPersistence(err)
			}
			created = append(created, img)
		}
		return nil
	})
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, errPersistence(err)
	}

	log.L.Info("vehicle images uploaded",
		zap.Int64("vehicle_id", vehicleID),
		zap.Int("count", len(created)),
	)
	return created, nil
}

func (s *VehicleImageService) List(ctx context.Context, vehicleID int64) ([]*models.VehicleImage, error) {
	exists, err := s.Vehicles.IsExist(ctx, "id = ?", vehicleID)
	if err != nil {
		return nil, errPersistence(err)
	}
	if !exists {
		return nil, errNotFound("vehicle %d not found", vehicleID)
	}
	images, err := s.Images.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, errPersistence(err)
	}
	return images, nil
}

func (s *VehicleImageService) Delete(ctx context.Context, vehicleID, imageID int64) error {
	unlock := s.lockVehicle(vehicleID)
	defer unlock()

	img, err := s.Images.FindByVehicleAndID(ctx, vehicleID, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("image %d not found for vehicle %d", imageID, vehicleID)
		}
		return errPersistence(err)
	}

	// remote delete is best effort: the local row is authoritative and goes
	// away regardless; failures are queued for the cleanup worker
	if img.ExternalID != "" {
		if err := s.Store.Delete(ctx, img.ExternalID); err != nil {
			log.L.Warn("remote image delete failed, queueing cleanup",
				zap.String("external_id", img.ExternalID),
				zap.Error(err),
			)
			task := &models.ImageCleanupTask{ExternalID: img.ExternalID, LastError: err.Error()}
			if err := s.Cleanup.Create(ctx, task); err != nil {
				log.L.Error("enqueue image cleanup task", zap.Error(err))
			}
		}
	}

	err = s.Images.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", img.ID).Delete(&models.VehicleImage{}).Error; err != nil {
			return err
		}
		if !img.IsPrimary {
			return nil
		}
		// promote the lowest-ordered survivor
		var next models.VehicleImage
		err := tx.Where("vehicle_id = ? AND id != ?", vehicleID, img.ID).
			Order("is_primary DESC, order_index ASC").
			First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&models.VehicleImage{}).
			Where("id = ?", next.ID).
			Update("is_primary", true).Error
	})
	if err != nil {
		return errPersistence(err)
	}
	return nil
}

func (s *VehicleImageService) SetPrimary(ctx context.Context, vehicleID, imageID int64) error {
	unlock := s.lockVehicle(vehicleID)
	defer unlock()

	img, err := s.Images.FindByVehicleAndID(ctx, vehicleID, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("image %d not found for vehicle %d", imageID, vehicleID)
		}
		return errPersistence(err)
	}

	err = s.Images.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.VehicleImage{}).
			Where("vehicle_id = ? AND id != ?", vehicleID, img.ID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.VehicleImage{}).
			Where("id = ?", img.ID).
			Update("is_primary", true).Error
	})
	if err != nil {
		return errPersistence(err)
	}
	return nil
}

func (s *VehicleImageService) Reorder(ctx context.Context, vehicleID int64, imageIDs []int64) error {
	if len(imageIDs) == 0 {
		return errValidation("image_ids must not be empty")
	}

	unlock := s.lockVehicle(vehicleID)
	defer unlock()

	unique := make(map[int64]struct{}, len(imageIDs))
	for _, id := range imageIDs {
		unique[id] = struct{}{}
	}
	distinct := make([]int64, 0, len(unique))
	for id := range unique {
		distinct = append(distinct, id)
	}
	owned, err := s.Images.CountByVehicleAndIDs(ctx, vehicleID, distinct)
	if err != nil {
		return errPersistence(err)
	}
	if owned != int64(len(distinct)) {
		return errValidation("image_ids contain images that do not belong to vehicle %d", vehicleID)
	}

	// position in the sequence wins; duplicate ids resolve to the last
	// position, images omitted from the sequence keep their old index
	err = s.Images.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range imageIDs {
			if err := tx.Model(&models.VehicleImage{}).
				Where("id = ? AND vehicle_id = ?", id, vehicleID).
				Update("order_index", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errPersistence(err)
	}
	return nil
}
