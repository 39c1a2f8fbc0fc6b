//go:build wireinject
// +build wireinject

package service

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	NewVehicleImageService,

	wire.Struct(new(VehicleService), "*"),
	wire.Bind(new(IVehicleService), new(*VehicleService)),

	wire.Struct(new(StandService), "*"),
	wire.Bind(new(IStandService), new(*StandService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(SaleService), "*"),
	wire.Bind(new(ISaleService), new(*SaleService)),

	wire.Struct(new(InquiryService), "*"),
	wire.Bind(new(IInquiryService), new(*InquiryService)),

	wire.Struct(new(FavoriteService), "*"),
	wire.Bind(new(IFavoriteService), new(*FavoriteService)),

	wire.Struct(new(VehicleViewService), "*"),
	wire.Bind(new(IVehicleViewService), new(*VehicleViewService)),

	wire.Struct(new(AuditService), "*"),
	wire.Bind(new(IAuditService), new(*AuditService)),

	wire.Struct(new(ImageCleanupService), "*"),
	NewImageCleanupCron,
)
