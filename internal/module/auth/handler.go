package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/hirebridge/backoffice/internal/domain"
	"github.com/hirebridge/backoffice/internal/middleware"
	"github.com/hirebridge/backoffice/internal/pkg"
)

// AuthHandler handles REST API requests for authentication.
type AuthHandler struct {
	svc *Service
}

// NewHandler creates a new AuthHandler with the given service.
func NewHandler(svc *Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, resp)
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	if err := h.svc.Logout(c.Request.Context(), sess); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
