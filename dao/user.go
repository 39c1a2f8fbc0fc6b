package dao

import (
	"context"
	"time"

	"AutoSync/models"
	"AutoSync/types"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

func (d *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return d.FindByWhere(ctx, "email = ?", email)
}

func (d *Users) IsEmailTaken(ctx context.Context, email string) bool {
	exist, _ := d.IsExist(ctx, "email = ?", email)
	return exist
}

func (d *Users) List(ctx context.Context, f *types.UserFilter) ([]*models.User, int64, error) {
	q := d.Db.WithContext(ctx).Model(&models.User{})
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.StandID != nil {
		q = q.Where("stand_id = ?", *f.StandID)
	}
	if f.Active != nil {
		q = q.Where("is_active = ?", *f.Active)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*models.User
	err := q.Order("created_at DESC").
		Limit(f.PerPage).
		Offset(f.Offset()).
		Find(&users).Error
	return users, total, err
}

func (d *Users) UpdateByID(ctx context.Context, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (d *Users) TouchLastLogin(ctx context.Context, id int64) error {
	now := time.Now()
	return d.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", now).Error
}
