package student

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hirebridge/backoffice/internal/domain"
	"github.com/hirebridge/backoffice/internal/listview"
	"github.com/hirebridge/backoffice/internal/middleware"
)

// --- mock student service ---

type mockStudentService struct {
	page      *domain.Page[domain.Student]
	detail    map[string]*domain.Student
	lastQuery domain.PageQuery
	err       error
}

func (m *mockStudentService) GetPage(_ context.Context, q domain.PageQuery) (*domain.Page[domain.Student], error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func (m *mockStudentService) GetDetail(_ context.Context, uuid string) (*domain.Student, error) {
	s, ok := m.detail[uuid]
	if !ok {
		return nil, domain.NewAppError(domain.CodeNotFound, "student not found", nil)
	}
	return s, nil
}

// --- mock cache ---

type mockCache struct {
	known  map[string]*domain.User
	primes [][]string
}

func (m *mockCache) Get(_ context.Context, uuid string) (*domain.User, error) {
	u, ok := m.known[uuid]
	if !ok {
		return nil, domain.NewAppError(domain.CodeNotFound, "user not found", nil)
	}
	return u, nil
}

func (m *mockCache) Peek(uuid string) *domain.User { return m.known[uuid] }

func (m *mockCache) Refresh(ctx context.Context, uuid string) (*domain.User, error) {
	return m.Get(ctx, uuid)
}

func (m *mockCache) Prime(_ context.Context, uuids []string) {
	m.primes = append(m.primes, uuids)
}

type stubResolver struct{}

func (stubResolver) Resolve(_ context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	return &domain.Session{ID: "sess-1", UserUUID: "admin-1", UpstreamToken: "up-tok"}, nil
}

func newTestRouter(svc *mockStudentService, cache *mockCache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	views := listview.NewRegistry(func() *listview.Controller[domain.Student] {
		return listview.NewController(svc.GetPage, listview.Options{})
	}, 0)
	h := NewHandler(svc, views, cache)
	r := gin.New()
	protected := r.Group("/")
	protected.Use(middleware.SessionGate(stubResolver{}))
	protected.GET("/students", h.List)
	protected.GET("/students/:uuid", h.Detail)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer console-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func studentPage() *domain.Page[domain.Student] {
	return &domain.Page[domain.Student]{
		Items: []domain.Student{
			{UUID: "st-1", UserUUID: "u-1", FullName: "An Nguyen"},
			{UUID: "st-2", UserUUID: "u-2", FullName: "Binh Tran"},
		},
		TotalCount: 2,
		TotalPage:  1,
	}
}

type listBody struct {
	Data struct {
		Items []struct {
			UUID    string       `json:"uuid"`
			Account *domain.User `json:"account"`
		} `json:"items"`
		Warning string `json:"warning"`
	} `json:"data"`
}

func TestListStudents_DecoratesRowsFromCache(t *testing.T) {
	svc := &mockStudentService{page: studentPage()}
	cache := &mockCache{known: map[string]*domain.User{
		"u-1": {UUID: "u-1", Email: "an@example.com", Status: domain.UserStatusActive},
		// u-2 is not cached yet
	}}
	r := newTestRouter(svc, cache)

	w := get(r, "/students")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp listBody
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data.Items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(resp.Data.Items))
	}
	if resp.Data.Items[0].Account == nil || resp.Data.Items[0].Account.Email != "an@example.com" {
		t.Errorf("expected cached account on first row, got %+v", resp.Data.Items[0].Account)
	}
	// A pending account renders as null, never blocks the page.
	if resp.Data.Items[1].Account != nil {
		t.Errorf("expected null account for uncached row, got %+v", resp.Data.Items[1].Account)
	}
}

func TestListStudents_PrimesAccountsForVisibleRows(t *testing.T) {
	svc := &mockStudentService{page: studentPage()}
	cache := &mockCache{known: map[string]*domain.User{}}
	r := newTestRouter(svc, cache)

	if w := get(r, "/students"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if len(cache.primes) != 1 {
		t.Fatalf("expected one prime fan-out, got %d", len(cache.primes))
	}
	got := cache.primes[0]
	if len(got) != 2 || got[0] != "u-1" || got[1] != "u-2" {
		t.Errorf("expected visible rows primed, got %v", got)
	}
}

func TestListStudents_StaleWhileError(t *testing.T) {
	svc := &mockStudentService{page: studentPage()}
	cache := &mockCache{known: map[string]*domain.User{}}
	r := newTestRouter(svc, cache)

	if w := get(r, "/students"); w.Code != http.StatusOK {
		t.Fatalf("first load failed: %d", w.Code)
	}

	// The next page fetch fails; the last good page is served with a warning.
	svc.err = domain.NewAppError(domain.CodeUnavailable, "cannot reach upstream service", nil)
	w := get(r, "/students?page=2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with stale data, got %d", w.Code)
	}

	var resp listBody
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data.Items) != 2 {
		t.Errorf("expected stale items, got %d", len(resp.Data.Items))
	}
	if resp.Data.Warning == "" {
		t.Error("expected warning alongside stale items")
	}
}

func TestListStudents_ErrorWithoutPriorPage(t *testing.T) {
	svc := &mockStudentService{err: domain.NewAppError(domain.CodeUnavailable, "cannot reach upstream service", nil)}
	cache := &mockCache{known: map[string]*domain.User{}}
	r := newTestRouter(svc, cache)

	w := get(r, "/students")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 with no prior page, got %d", w.Code)
	}
}

func TestStudentDetail_FetchesAccount(t *testing.T) {
	svc := &mockStudentService{detail: map[string]*domain.Student{
		"st-1": {UUID: "st-1", UserUUID: "u-1", FullName: "An Nguyen"},
	}}
	cache := &mockCache{known: map[string]*domain.User{
		"u-1": {UUID: "u-1", Email: "an@example.com"},
	}}
	r := newTestRouter(svc, cache)

	w := get(r, "/students/st-1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			UUID    string       `json:"uuid"`
			Account *domain.User `json:"account"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.UUID != "st-1" {
		t.Errorf("unexpected student: %+v", resp.Data)
	}
	if resp.Data.Account == nil || resp.Data.Account.Email != "an@example.com" {
		t.Errorf("expected account attached, got %+v", resp.Data.Account)
	}
}
