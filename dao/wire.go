//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewStands,
	NewUsers,
	NewVehicles,
	NewVehicleImages,
	NewSales,
	NewInquiries,
	NewFavorites,
	NewVehicleViews,
	NewAuditLogs,
	NewImageCleanupTasks,
)
