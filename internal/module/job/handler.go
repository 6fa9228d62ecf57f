package job

import (
	"github.com/gin-gonic/gin"

	"github.com/hirebridge/backoffice/internal/domain"
	"github.com/hirebridge/backoffice/internal/listview"
	"github.com/hirebridge/backoffice/internal/middleware"
	"github.com/hirebridge/backoffice/internal/pkg"
)

// JobHandler handles REST API requests for job posts.
type JobHandler struct {
	svc   domain.JobService
	views *listview.Registry[domain.Job]
}

// NewHandler creates a new JobHandler. Panics if any dependency is nil.
func NewHandler(svc domain.JobService, views *listview.Registry[domain.Job]) *JobHandler {
	if svc == nil {
		panic("job.NewHandler: service must not be nil")
	}
	if views == nil {
		panic("job.NewHandler: views must not be nil")
	}
	return &JobHandler{svc: svc, views: views}
}

// List handles GET /api/v1/jobs.
func (h *JobHandler) List(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	ctl := h.views.For(sess.ID)
	ctl.Apply(pkg.ParsePageQuery(c))

	snap := ctl.Load(c.Request.Context())
	if snap.Err != nil && !snap.Stale {
		pkg.Error(c, snap.Err)
		return
	}

	data := pkg.ListData{
		Items: snap.Items,
		Pagination: pkg.PageMeta{
			Page:       snap.Query.Page,
			PageSize:   snap.Query.PageSize,
			TotalCount: snap.TotalCount,
			TotalPage:  snap.TotalPage,
		},
	}
	if snap.Stale {
		data.Warning = pkg.ErrorMessage(snap.Err)
	}
	pkg.List(c, data)
}

// Detail handles GET /api/v1/jobs/:uuid.
func (h *JobHandler) Detail(c *gin.Context) {
	j, err := h.svc.GetDetail(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, j)
}
