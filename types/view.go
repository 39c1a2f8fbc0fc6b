package types

type RecordViewRequest struct {
	VehicleID int64  `json:"vehicle_id" binding:"required"`
	UserID    *int64 `json:"user_id"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent" binding:"max=500"`
	Referer   string `json:"referer" binding:"max=500"`
	SessionID string `json:"session_id" binding:"max=255"`
}

type ViewStatistics struct {
	TotalViews  int64 `json:"total_views"`
	UniqueUsers int64 `json:"unique_users"`
	Last24h     int64 `json:"last_24h"`
	Last7d      int64 `json:"last_7d"`
}
