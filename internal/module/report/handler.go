package report

import (
	"github.com/gin-gonic/gin"

	"github.com/hirebridge/backoffice/internal/domain"
	"github.com/hirebridge/backoffice/internal/listview"
	"github.com/hirebridge/backoffice/internal/middleware"
	"github.com/hirebridge/backoffice/internal/pkg"
)

// ReportHandler handles REST API requests for user-filed reports.
type ReportHandler struct {
	svc   domain.ReportService
	views *listview.Registry[domain.Report]
}

// NewHandler creates a new ReportHandler. Panics if any dependency is nil.
func NewHandler(svc domain.ReportService, views *listview.Registry[domain.Report]) *ReportHandler {
	if svc == nil {
		panic("report.NewHandler: service must not be nil")
	}
	if views == nil {
		panic("report.NewHandler: views must not be nil")
	}
	return &ReportHandler{svc: svc, views: views}
}

// List handles GET /api/v1/reports. The list is always scoped to one target
// entity via target_type and target_uuid; switching targets resets the page
// back to 1 so a page number from the previous target never carries over.
func (h *ReportHandler) List(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	q := pkg.ParsePageQuery(c)
	if !domain.ValidTargetType(q.TargetType) {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "target_type must be one of student, company, job", nil))
		return
	}
	if q.TargetUUID == "" {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "target_uuid is required", nil))
		return
	}

	ctl := h.views.For(sess.ID)
	ctl.Apply(q)

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
