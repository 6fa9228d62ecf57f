package skill

import "github.com/gin-gonic/gin"

// SkillModule implements the app.Module interface for skill tags.
type SkillModule struct {
	handler *SkillHandler
}

// NewModule creates a new SkillModule with the given handler.
// Panics if h is nil.
func NewModule(h *SkillHandler) *SkillModule {
	if h == nil {
		panic("skill.NewModule: handler must not be nil")
	}
	return &SkillModule{handler: h}
}

// RegisterRoutes registers skill API routes.
func (m *SkillModule) RegisterRoutes(public, protected *gin.RouterGroup) {
	skills := protected.Group("/skills")
	skills.GET("", m.handler.List)
	skills.POST("", m.handler.Create)
}
