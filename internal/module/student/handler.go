package student

import (
	"github.com/gin-gonic/gin"

	"github.com/hirebridge/backoffice/internal/domain"
	"github.com/hirebridge/backoffice/internal/listview"
	"github.com/hirebridge/backoffice/internal/middleware"
	"github.com/hirebridge/backoffice/internal/pkg"
)

// StudentHandler handles REST API requests for student profiles.
type StudentHandler struct {
	svc   domain.StudentService
	views *listview.Registry[domain.Student]
	users domain.UserCache
}

// NewHandler creates a new StudentHandler. Panics if any dependency is nil.
func NewHandler(svc domain.StudentService, views *listview.Registry[domain.Student], users domain.UserCache) *StudentHandler {
	if svc == nil {
		panic("student.NewHandler: service must not be nil")
	}
	if views == nil {
		panic("student.NewHandler: views must not be nil")
	}
	if users == nil {
		panic("student.NewHandler: users must not be nil")
	}
	return &StudentHandler{svc: svc, views: views, users: users}
}

// List handles GET /api/v1/students.
func (h *StudentHandler) List(c *gin.Context) {
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

	rows := make([]StudentRow, 0, len(snap.Items))
	uuids := make([]string, 0, len(snap.Items))
	for _, s := range snap.Items {
		rows = append(rows, StudentRow{Student: s, Account: h.users.Peek(s.UserUUID)})
		uuids = append(uuids, s.UserUUID)
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

// Detail handles GET /api/v1/students/:uuid.
func (h *StudentHandler) Detail(c *gin.Context) {
	st, err := h.svc.GetDetail(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	// The detail view shows the account section, so the record is fetched
	// synchronously on a cache miss. A failed account fetch still returns
	// the profile with a null account.
	account, _ := h.users.Get(c.Request.Context(), st.UserUUID)

	pkg.Success(c, StudentRow{Student: *st, Account: account})
}
