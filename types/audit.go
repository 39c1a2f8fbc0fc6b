package types

type AuditLogFilter struct {
	PageQuery
	UserID    *int64 `form:"user_id"`
	Action    string `form:"action"`
	TableName string `form:"table_name"`
	RecordID  *int64 `form:"record_id"`
}
