package user

import "github.com/gin-gonic/gin"

// UserModule implements the app.Module interface for account records.
type UserModule struct {
	handler *UserHandler
}

// NewModule creates a new UserModule with the given handler.
// Panics if h is nil.
func NewModule(h *UserHandler) *UserModule {
	if h == nil {
		panic("user.NewModule: handler must not be nil")
	}
	return &UserModule{handler: h}
}

// RegisterRoutes registers user API routes.
func (m *UserModule) RegisterRoutes(public, protected *gin.RouterGroup) {
	users := protected.Group("/users")
	users.GET("/:uuid", m.handler.Detail)
	users.POST("/:uuid/toggle-status", m.handler.ToggleStatus)
}
