package report

import "github.com/gin-gonic/gin"

// ReportModule implements the app.Module interface for user-filed reports.
type ReportModule struct {
	handler *ReportHandler
}

// NewModule creates a new ReportModule with the given handler.
// Panics if h is nil.
func NewModule(h *ReportHandler) *ReportModule {
	if h == nil {
		panic("report.NewModule: handler must not be nil")
	}
	return &ReportModule{handler: h}
}

// RegisterRoutes registers report API routes.
func (m *ReportModule) RegisterRoutes(public, protected *gin.RouterGroup) {
	protected.GET("/reports", m.handler.List)
}
