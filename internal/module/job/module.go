package job

import "github.com/gin-gonic/gin"

// JobModule implements the app.Module interface for job posts.
type JobModule struct {
	handler *JobHandler
}

// NewModule creates a new JobModule with the given handler.
// Panics if h is nil.
func NewModule(h *JobHandler) *JobModule {
	if h == nil {
		panic("job.NewModule: handler must not be nil")
	}
	return &JobModule{handler: h}
}

// RegisterRoutes registers job API routes.
func (m *JobModule) RegisterRoutes(public, protected *gin.RouterGroup) {
	jobs := protected.Group("/jobs")
	jobs.GET("", m.handler.List)
	jobs.GET("/:uuid", m.handler.Detail)
}
