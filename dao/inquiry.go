package dao

import (
	"context"

	"AutoSync/models"
	"AutoSync/types"

	"gorm.io/gorm"
)

type Inquiries struct {
	Repo[models.Inquiry]
}

func NewInquiries(db *gorm.DB) *Inquiries {
	return &Inquiries{
		Repo: NewRepo[models.Inquiry](db),
	}
}

func (d *Inquiries) List(ctx context.Context, f *types.InquiryFilter) ([]*models.Inquiry, int64, error) {
	q := d.Db.WithContext(ctx).Model(&models.Inquiry{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.StandID != nil {
		q = q.Where("stand_id = ?", *f.StandID)
	}
	if f.AssignedTo != nil {
		q = q.Where("assigned_to = ?", *f.AssignedTo)
	}
	if f.Unassigned != nil && *f.Unassigned {
		q = q.Where("assigned_to IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var inquiries []*models.Inquiry
	err := q.Order("created_at DESC").
		Limit(f.PerPage).
		Offset(f.Offset()).
		Find(&inquiries).Error
	return inquiries, total, err
}

func (d *Inquiries) UpdateByID(ctx context.Context, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Inquiry{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (d *Inquiries) Statistics(ctx context.Context) (*types.InquiryStatistics, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := d.Db.WithContext(ctx).Model(&models.Inquiry{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var stats types.InquiryStatistics
	for _, r := range rows {
		stats.Total += r.Count
		switch r.Status {
		case models.InquiryStatusNew:
			stats.New = r.Count
		case models.InquiryStatusContacted:
			stats.Contacted = r.Count
		case models.InquiryStatusQualified:
			stats.Qualified = r.Count
		case models.InquiryStatusConverted:
			stats.Converted = r.Count
		case models.InquiryStatusLost:
			stats.Lost = r.Count
		}
	}
	return &stats, nil
}

func (d *Inquiries) CountByStand(ctx context.Context, standID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Inquiry{}).
		Where("stand_id = ?", standID).
		Count(&count).Error
	return count, err
}
