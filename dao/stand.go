package dao

import (
	"context"

	"AutoSync/models"
	"AutoSync/types"

	"gorm.io/gorm"
)

type Stands struct {
	Repo[models.Stand]
}

func NewStands(db *gorm.DB) *Stands {
	return &Stands{
		Repo: NewRepo[models.Stand](db),
	}
}

func (d *Stands) List(ctx context.Context, f *types.StandFilter) ([]*models.Stand, int64, error) {
	q := d.Db.WithContext(ctx).Model(&models.Stand{})
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Active != nil {
		q = q.Where("is_active = ?", *f.Active)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR city LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var stands []*models.Stand
	err := q.Order("name ASC").
		Limit(f.PerPage).
		Offset(f.Offset()).
		Find(&stands).Error
	return stands, total, err
}

func (d *Stands) FindBySlug(ctx context.Context, slug string) (*models.Stand, error) {
	return d.FindByWhere(ctx, "slug = ?", slug)
}

func (d *Stands) ByCity(ctx context.Context, city string) ([]*models.Stand, error) {
	var stands []*models.Stand
	err := d.Db.WithContext(ctx).
		Where("city = ? AND is_active = ?", city, true).
		Order("name ASC").
		Find(&stands).Error
	return stands, err
}

func (d *Stands) UpdateByID(ctx context.Context, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Stand{}).
		Where("id = ?", id).
		Updates(updates).Error
}
