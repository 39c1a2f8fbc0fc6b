package dao

import (
	"context"

	"AutoSync/models"
	"AutoSync/types"

	"gorm.io/gorm"
)

type Sales struct {
	Repo[models.Sale]
}

func NewSales(db *gorm.DB) *Sales {
	return &Sales{
		Repo: NewRepo[models.Sale](db),
	}
}

func (d *Sales) List(ctx context.Context, f *types.SaleFilter) ([]*models.Sale, int64, error) {
	q := d.Db.WithContext(ctx).Model(&models.Sale{})
	if f.SellerID != nil {
		q = q.Where("seller_id = ?", *f.SellerID)
	}
	if f.StandID != nil {
		q = q.Where("stand_id = ?", *f.StandID)
	}
	if f.PaymentMethod != "" {
		q = q.Where("payment_method = ?", f.PaymentMethod)
	}
	if f.From != nil {
		q = q.Where("sold_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("sold_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []*models.Sale
	err := q.Order("sold_at DESC").
		Limit(f.PerPage).
		Offset(f.Offset()).
		Find(&sales).Error
	return sales, total, err
}

func (d *Sales) UpdateByID(ctx context.Context, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Sale{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (d *Sales) Statistics(ctx context.Context) (*types.SaleStatistics, error) {
	var stats types.SaleStatistics
	err := d.Db.WithContext(ctx).Model(&models.Sale{}).
		Select("COUNT(*) AS total_sales," +
			" COALESCE(SUM(sale_price), 0) AS total_revenue," +
			" COALESCE(SUM(commission_amount), 0) AS total_commissions," +
			" COALESCE(AVG(sale_price), 0) AS average_price").
		Scan(&stats).Error
	return &stats, err
}

func (d *Sales) TopSellers(ctx context.Context, limit int) ([]*types.TopSeller, error) {
	var sellers []*types.TopSeller
	err := d.Db.WithContext(ctx).Model(&models.Sale{}).
		Select("sales.seller_id AS seller_id," +
			" users.name AS seller_name," +
			" COUNT(*) AS sales_count," +
			" COALESCE(SUM(sales.sale_price), 0) AS revenue").
		Joins("JOIN users ON users.id = sales.seller_id").
		Group("sales.seller_id, users.name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&sellers).Error
	return sellers, err
}

// StandStatistics aggregates sales figures for one stand.
func (d *Sales) StandStatistics(ctx context.Context, standID int64) (count int64, revenue float64, err error) {
	row := struct {
		Count   int64
		Revenue float64
	}{}
	err = d.Db.WithContext(ctx).Model(&models.Sale{}).
		Select("COUNT(*) AS count, COALESCE(SUM(sale_price), 0) AS revenue").
		Where("stand_id = ?", standID).
		Scan(&row).Error
	return row.Count, row.Revenue, err
}
