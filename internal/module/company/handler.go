package company

import (
	"github.com/gin-gonic/gin"

	"github.com/hirebridge/backoffice/internal/domain"
	"github.com/hirebridge/backoffice/internal/listview"
	"github.com/hirebridge/backoffice/internal/middleware"
	"github.com/hirebridge/backoffice/internal/pkg"
)

// CompanyHandler handles REST API requests for employer profiles.
type CompanyHandler struct {
	svc   domain.CompanyService
	views *listview.Registry[domain.Company]
	users domain.UserCache
}

// NewHandler creates a new CompanyHandler. Panics if any dependency is nil.
func NewHandler(svc domain.CompanyService, views *listview.Registry[domain.Company], users domain.UserCache) *CompanyHandler {
	if svc == nil {
		panic("company.NewHandler: service must not be nil")
	}
	if views == nil {
		panic("company.NewHandler: views must not be nil")
	}
	if users == nil {
		panic("company.NewHandler: users must not be nil")
	}
	return &CompanyHandler{svc: svc, views: views, users: users}
}

// List handles GET /api/v1/companies.
func (h *CompanyHandler) List(c *gin.Context) {
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

	rows := make([]CompanyRow, 0, len(snap.Items))
	uuids := make([]string, 0, len(snap.Items))
	for _, co := range snap.Items {
		rows = append(rows, CompanyRow{Company: co, Account: h.users.Peek(co.UserUUID)})
		uuids = append(uuids, co.UserUUID)
	}
	h.users.Prime(c.Request.Context(), uuids)

	data := pkg.ListData{
		Items: rows,
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
