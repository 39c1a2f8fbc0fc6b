//go:build wireinject
// +build wireinject

package handler

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	wire.Struct(new(Auth), "*"),
	wire.Struct(new(User), "*"),
	wire.Struct(new(Vehicle), "*"),
	wire.Struct(new(VehicleImage), "*"),
	wire.Struct(new(Stand), "*"),
	wire.Struct(new(Sale), "*"),
	wire.Struct(new(Inquiry), "*"),
	wire.Struct(new(Favorite), "*"),
	wire.Struct(new(View), "*"),
	wire.Struct(new(Audit), "*"),
)
