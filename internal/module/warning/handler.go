package warning

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hirebridge/backoffice/internal/domain"
	"github.com/hirebridge/backoffice/internal/listview"
	"github.com/hirebridge/backoffice/internal/middleware"
	"github.com/hirebridge/backoffice/internal/pkg"
)

// WarningHandler handles REST API requests for account warnings.
type WarningHandler struct {
	svc   domain.WarningService
	views *listview.Registry[domain.Warning]
}

// NewHandler creates a new WarningHandler. Panics if any dependency is nil.
func NewHandler(svc domain.WarningService, views *listview.Registry[domain.Warning]) *WarningHandler {
	if svc == nil {
		panic("warning.NewHandler: service must not be nil")
	}
	if views == nil {
		panic("warning.NewHandler: views must not be nil")
	}
	return &WarningHandler{svc: svc, views: views}
}

// Create handles POST /api/v1/warnings. A warning whose message is blank
// after trimming is rejected before any upstream call is made.
func (h *WarningHandler) Create(c *gin.Context) {
	var req CreateWarningRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	if !domain.ValidTargetType(req.TargetType) {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "targetType must be one of student, company, job", nil))
		return
	}

	messages := strings.TrimSpace(req.Messages)
	if messages == "" {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "warning message must not be blank", nil))
		return
	}

	w := domain.Warning{
		TargetType: req.TargetType,
		TargetUUID: req.TargetUUID,
		Messages:   messages,
	}
	if err := h.svc.Create(c.Request.Context(), w); err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "warning sent successfully",
		Data:    w,
	})
}

// List handles GET /api/v1/warnings.
func (h *WarningHandler) List(c *gin.Context) {
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
