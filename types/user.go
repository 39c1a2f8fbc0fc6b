package types

type UserFilter struct {
	PageQuery
	Role    string `form:"role"`
	StandID *int64 `form:"stand_id"`
	Active  *bool  `form:"active"`
	Search  string `form:"search"`
}

type CreateUserRequest struct {
	Name           string  `json:"name" binding:"required,max=255"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=8"`
	Role           string  `json:"role" binding:"required,oneof=admin manager seller viewer"`
	Phone          string  `json:"phone" binding:"max=20"`
	StandID        *int64  `json:"stand_id"`
	CommissionRate float64 `json:"commission_rate" binding:"min=0,max=100"`
}

type UpdateUserRequest struct {
	Name           *string  `json:"name"`
	Email          *string  `json:"email" binding:"omitempty,email"`
	Role           *string  `json:"role" binding:"omitempty,oneof=admin manager seller viewer"`
	Phone          *string  `json:"phone"`
	AvatarURL      *string  `json:"avatar_url"`
	StandID        *int64   `json:"stand_id"`
	CommissionRate *float64 `json:"commission_rate" binding:"omitempty,min=0,max=100"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
