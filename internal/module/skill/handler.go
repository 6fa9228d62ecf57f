package skill

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hirebridge/backoffice/internal/domain"
	"github.com/hirebridge/backoffice/internal/listview"
	"github.com/hirebridge/backoffice/internal/middleware"
	"github.com/hirebridge/backoffice/internal/pkg"
)

// SkillHandler handles REST API requests for skill tags.
type SkillHandler struct {
	svc   domain.SkillService
	views *listview.Registry[domain.Skill]
}

// NewHandler creates a new SkillHandler. Panics if any dependency is nil.
func NewHandler(svc domain.SkillService, views *listview.Registry[domain.Skill]) *SkillHandler {
	if svc == nil {
		panic("skill.NewHandler: service must not be nil")
	}
	if views == nil {
		panic("skill.NewHandler: views must not be nil")
	}
	return &SkillHandler{svc: svc, views: views}
}

// List handles GET /api/v1/skills.
func (h *SkillHandler) List(c *gin.Context) {
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

// Create handles POST /api/v1/skills. The trimmed name must be non-empty;
// whitespace-only names never reach the upstream API.
func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "skill name must not be blank", nil))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), name)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "skill created successfully",
		Data:    created,
	})
}
