package server

import (
	"AutoSync/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	User         *handler.User
	Vehicle      *handler.Vehicle
	VehicleImage *handler.VehicleImage
	Stand        *handler.Stand
	Sale         *handler.Sale
	Inquiry      *handler.Inquiry
	Favorite     *handler.Favorite
	View         *handler.View
	Audit        *handler.Audit
}
