package user

import (
	"github.com/gin-gonic/gin"

	"github.com/hirebridge/backoffice/internal/domain"
	"github.com/hirebridge/backoffice/internal/pkg"
)

// UserHandler handles REST API requests for account records.
type UserHandler struct {
	svc   domain.UserService
	cache domain.UserCache
}

// NewHandler creates a new UserHandler. Panics if any dependency is nil.
func NewHandler(svc domain.UserService, cache domain.UserCache) *UserHandler {
	if svc == nil {
		panic("user.NewHandler: service must not be nil")
	}
	if cache == nil {
		panic("user.NewHandler: cache must not be nil")
	}
	return &UserHandler{svc: svc, cache: cache}
}

// Detail handles GET /api/v1/users/:uuid. Served from the side cache,
// fetching on a miss.
func (h *UserHandler) Detail(c *gin.Context) {
	u, err := h.cache.Get(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, u)
}

// ToggleStatus handles POST /api/v1/users/:uuid/toggle-status. After the
// upstream flips the lock status, only this account's cache entry is
// refreshed; the rest of the cache is untouched.
func (h *UserHandler) ToggleStatus(c *gin.Context) {
	uuid := c.Param("uuid")

	if err := h.svc.UpdateStatus(c.Request.Context(), uuid); err != nil {
		pkg.Error(c, err)
		return
	}

	u, err := h.cache.Refresh(c.Request.Context(), uuid)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, u)
}
