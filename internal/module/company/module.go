package company

import "github.com/gin-gonic/gin"

// CompanyModule implements the app.Module interface for employer profiles.
type CompanyModule struct {
	handler *CompanyHandler
}

// NewModule creates a new CompanyModule with the given handler.
// Panics if h is nil.
func NewModule(h *CompanyHandler) *CompanyModule {
	if h == nil {
		panic("company.NewModule: handler must not be nil")
	}
	return &CompanyModule{handler: h}
}

// RegisterRoutes registers company API routes.
func (m *CompanyModule) RegisterRoutes(public, protected *gin.RouterGroup) {
	protected.GET("/companies", m.handler.List)
}
