package warning

// CreateWarningRequest represents the input for sending an account warning.
type CreateWarningRequest struct {
	TargetType string `json:"targetType" form:"targetType" binding:"required"`
	TargetUUID string `json:"targetUuid" form:"targetUuid" binding:"required,uuid"`
	Messages   string `json:"messages" form:"messages" binding:"required"`
}
