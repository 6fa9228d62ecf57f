package student

import "github.com/gin-gonic/gin"

// StudentModule implements the app.Module interface for student profiles.
type StudentModule struct {
	handler *StudentHandler
}

// NewModule creates a new StudentModule with the given handler.
// Panics if h is nil.
func NewModule(h *StudentHandler) *StudentModule {
	if h == nil {
		panic("student.NewModule: handler must not be nil")
	}
	return &StudentModule{handler: h}
}

// RegisterRoutes registers student API routes.
func (m *StudentModule) RegisterRoutes(public, protected *gin.RouterGroup) {
	students := protected.Group("/students")
	students.GET("", m.handler.List)
	students.GET("/:uuid", m.handler.Detail)
}
