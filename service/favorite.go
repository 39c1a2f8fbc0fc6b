package service

import (
	"context"
	"errors"

	"AutoSync/dao"
	"AutoSync/models"

	"gorm.io/gorm"
)

var _ IFavoriteService = (*FavoriteService)(nil)

type IFavoriteService interface {
	List(ctx context.Context, userID int64) ([]*models.Favorite, error)
	Add(ctx context.Context, userID, vehicleID int64) (*models.Favorite, error)
	Remove(ctx context.Context, userID, vehicleID int64) error

	// Toggle adds the favorite if absent, removes it if present.
	// Returns true when the vehicle ends up favorited.
	Toggle(ctx context.Context, userID, vehicleID int64) (bool, error)

	Check(ctx context.Context, userID, vehicleID int64) (bool, error)
}

type FavoriteService struct {
	Favorites *dao.Favorites
	Vehicles  *dao.Vehicles
}

func (s *FavoriteService) ensureVehicle(ctx context.Context, vehicleID int64) error {
	exists, err := s.Vehicles.IsExist(ctx, "id = ?", vehicleID)
	if err != nil {
		return errPersistence(err)
	}
	if !exists {
		return errNotFound("vehicle %d not found", vehicleID)
	}
	return nil
}

func (s *FavoriteService) List(ctx context.Context, userID int64) ([]*models.Favorite, error) {
	favorites, err := s.Favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, errPersistence(err)
	}
	return favorites, nil
}

func (s *FavoriteService) Add(ctx context.Context, userID, vehicleID int64) (*models.Favorite, error) {
	if err := s.ensureVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}
	fav, err := s.Favorites.FirstOrCreate(ctx, userID, vehicleID)
	if err != nil {
		return nil, errPersistence(err)
	}
	return fav, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, vehicleID int64) error {
	if _, err := s.Favorites.Find(ctx, userID, vehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("vehicle %d is not in favorites", vehicleID)
		}
		return errPersistence(err)
	}
	if err := s.Favorites.Delete(ctx, userID, vehicleID); err != nil {
		return errPersistence(err)
	}
	return nil
}

func (s *FavoriteService) Toggle(ctx context.Context, userID, vehicleID int64) (bool, error) {
	if err := s.ensureVehicle(ctx, vehicleID); err != nil {
		return false, err
	}
	_, err := s.Favorites.Find(ctx, userID, vehicleID)
	if err == nil {
		if err := s.Favorites.Delete(ctx, userID, vehicleID); err != nil {
			return true, errPersistence(err)
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, errPersistence(err)
	}
	if _, err := s.Favorites.FirstOrCreate(ctx, userID, vehicleID); err != nil {
		return false, errPersistence(err)
	}
	return true, nil
}

func (s *FavoriteService) Check(ctx context.Context, userID, vehicleID int64) (bool, error) {
	_, err := s.Favorites.Find(ctx, userID, vehicleID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, errPersistence(err)
}
