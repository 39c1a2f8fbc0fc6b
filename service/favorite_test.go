package service

import (
	"context"
	"testing"

	"AutoSync/dao"
	"AutoSync/models"

	"gorm.io/gorm"
)

func newFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{
		Favorites: dao.NewFavorites(db),
		Vehicles:  dao.NewVehicles(db),
	}
}

func TestToggleFavorite(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	user := seedUser(t, db, models.RoleViewer, 0)
	svc := newFavoriteService(db)
	ctx := context.Background()

	on, err := svc.Toggle(ctx, user.ID, vehicle.ID)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !on {
		t.Fatal("first toggle must favorite")
	}

	if ok, err := svc.Check(ctx, user.ID, vehicle.ID); err != nil || !ok {
		t.Fatalf("check after toggle on = %v, %v", ok, err)
	}

	off, err := svc.Toggle(ctx, user.ID, vehicle.ID)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if off {
		t.Fatal("second toggle must unfavorite")
	}
	if ok, _ := svc.Check(ctx, user.ID, vehicle.ID); ok {
		t.Fatal("check after toggle off must be false")
	}
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	db := setupDB(t)
	vehicle := seedVehicle(t, db, seedStand(t, db).ID)
	user := seedUser(t, db, models.RoleViewer, 0)
	svc := newFavoriteService(db)
	ctx := context.Background()

	first, err := svc.Add(ctx, user.ID, vehicle.ID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := svc.Add(ctx, user.ID, vehicle.ID)
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("re-add created a new row: %d != %d", first.ID, second.ID)
	}

	favorites, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("favorites = %d, want 1", len(favorites))
	}
}

func TestFavoriteUnknownVehicle(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db, models.RoleViewer, 0)
	svc := newFavoriteService(db)

	if _, err := svc.Add(context.Background(), user.ID, 424242); KindOf(err) != ErrKindNotFound {
		t.Fatalf("kind = %v, want not found", KindOf(err))
	}
}
