package warning

import "github.com/gin-gonic/gin"

// WarningModule implements the app.Module interface for account warnings.
type WarningModule struct {
	handler *WarningHandler
}

// NewModule creates a new WarningModule with the given handler.
// Panics if h is nil.
func NewModule(h *WarningHandler) *WarningModule {
	if h == nil {
		panic("warning.NewModule: handler must not be nil")
	}
	return &WarningModule{handler: h}
}

// RegisterRoutes registers warning API routes.
func (m *WarningModule) RegisterRoutes(public, protected *gin.RouterGroup) {
	warnings := protected.Group("/warnings")
	warnings.GET("", m.handler.List)
	warnings.POST("", m.handler.Create)
}
