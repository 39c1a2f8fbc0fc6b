package types

type InquiryFilter struct {
	PageQuery
	Status     string `form:"status"`
	Type       string `form:"type"`
	StandID    *int64 `form:"stand_id"`
	AssignedTo *int64 `form:"assigned_to"`
	Unassigned *bool  `form:"unassigned"`
}

type CreateInquiryRequest struct {
	VehicleID *int64 `json:"vehicle_id"`
	StandID   *int64 `json:"stand_id"`
	Name      string `json:"name" binding:"required,max=255"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"max=20"`
	Type      string `json:"type" binding:"omitempty,oneof=general vehicle test_drive financing trade_in"`
	Message   string `json:"message" binding:"required"`
}

type UpdateInquiryRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=new contacted qualified converted lost"`
	Notes  *string `json:"notes"`
}

type AssignInquiryRequest struct {
	AssignedTo int64 `json:"assigned_to" binding:"required"`
}

type AddInquiryNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

type InquiryStatistics struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Contacted int64 `json:"contacted"`
	Qualified int64 `json:"qualified"`
	Converted int64 `json:"converted"`
	Lost      int64 `json:"lost"`
}
