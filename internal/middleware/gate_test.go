package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hirebridge/backoffice/internal/domain"
	"github.com/hirebridge/backoffice/internal/upstream"
)

type fakeResolver struct {
	sess *domain.Session
	err  error
	got  string
}

func (f *fakeResolver) Resolve(_ context.Context, token string) (*domain.Session, error) {
	f.got = token
	if f.err != nil {
		return nil, f.err
	}
	return f.sess, nil
}

func gateRouter(resolver SessionResolver) (*gin.Engine, *struct {
	sess  *domain.Session
	token string
	ok    bool
}) {
	gin.SetMode(gin.TestMode)
	captured := &struct {
		sess  *domain.Session
		token string
		ok    bool
	}{}
	r := gin.New()
	r.Use(SessionGate(resolver))
	r.GET("/ping", func(c *gin.Context) {
		captured.sess = CurrentSession(c)
		captured.token, captured.ok = upstream.TokenFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r, captured
}

func TestSessionGate_AttachesSessionAndUpstreamToken(t *testing.T) {
	resolver := &fakeResolver{sess: &domain.Session{ID: "sess-1", UserUUID: "u-1", UpstreamToken: "up-tok"}}
	r, captured := gateRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer console-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resolver.got != "console-token" {
		t.Errorf("expected raw token passed to resolver, got %q", resolver.got)
	}
	if captured.sess == nil || captured.sess.ID != "sess-1" {
		t.Errorf("expected session in context, got %+v", captured.sess)
	}
	if !captured.ok || captured.token != "up-tok" {
		t.Errorf("expected upstream token in request context, got %q", captured.token)
	}
}

func TestSessionGate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		err    error
	}{
		{"no header", "", nil},
		{"wrong scheme", "Basic abc", nil},
		{"bare token", "console-token", nil},
		{"resolver rejects", "Bearer expired", domain.ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeResolver{sess: &domain.Session{ID: "sess-1"}, err: tt.err}
			r, captured := gateRouter(resolver)

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
			if captured.sess != nil {
				t.Error("handler must not run behind a failed gate")
			}
		})
	}
}

func TestSessionGate_CaseInsensitiveBearer(t *testing.T) {
	resolver := &fakeResolver{sess: &domain.Session{ID: "sess-1", UpstreamToken: "up-tok"}}
	r, _ := gateRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "bearer console-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for lowercase scheme, got %d", w.Code)
	}
}
