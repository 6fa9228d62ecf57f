package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hirebridge/backoffice/internal/domain"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientPost_SuccessEnvelope(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		w.Write([]byte(`{"data":{"uuid":"u-1","name":"Go"},"error":{"code":"success","message":""}}`))
	})

	c := NewClient(srv.URL, 0, nil)
	var out domain.Skill
	if err := c.post(context.Background(), "/Skill/detail", nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.UUID != "u-1" || out.Name != "Go" {
		t.Errorf("unexpected data: %+v", out)
	}
}

func TestClientPost_BearerTokenFromContext(t *testing.T) {
	var gotAuth string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":null,"error":{"code":"success","message":""}}`))
	})

	c := NewClient(srv.URL, 0, nil)

	ctx := WithToken(context.Background(), "token-123")
	if err := c.post(ctx, "/x", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer token-123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}

	gotAuth = ""
	if err := c.post(context.Background(), "/x", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClientPost_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "application error in envelope",
			status:   http.StatusOK,
			body:     `{"data":null,"error":{"code":"not_found","message":"record missing"}}`,
			wantCode: domain.CodeUpstream,
			wantMsg:  "record missing",
		},
		{
			name:     "application error without message",
			status:   http.StatusOK,
			body:     `{"data":null,"error":{"code":"failed","message":"  "}}`,
			wantCode: domain.CodeUpstream,
			wantMsg:  "upstream request failed",
		},
		{
			name:     "rejected token",
			status:   http.StatusUnauthorized,
			body:     `{"data":null,"error":{"code":"unauthorized","message":"bad token"}}`,
			wantCode: domain.CodeUnauthorized,
			wantMsg:  "upstream session expired",
		},
		{
			name:     "non-envelope response",
			status:   http.StatusBadGateway,
			body:     `<html>502 Bad Gateway</html>`,
			wantCode: domain.CodeUnavailable,
			wantMsg:  "unexpected upstream response (status 502)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			c := NewClient(srv.URL, 0, nil)
			err := c.post(context.Background(), "/x", nil, nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			appErr, ok := err.(*domain.AppError)
			if !ok {
				t.Fatalf("expected *domain.AppError, got %T", err)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, appErr.Code)
			}
			if appErr.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, appErr.Message)
			}
		})
	}
}

func TestClientPost_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing is listening anymore

	c := NewClient(srv.URL, 0, nil)
	err := c.post(context.Background(), "/x", nil, nil)
	if !domain.IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestGetPage_WireShape(t *testing.T) {
	var gotBody map[string]any
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(`{
			"data": {
				"items": [{"uuid":"s-1","name":"Go"},{"uuid":"s-2","name":"SQL"}],
				"pagination": {"totalCount": 42, "totalPage": 5}
			},
			"error": {"code":"success","message":""}
		}`))
	})

	c := NewClient(srv.URL, 0, nil)
	q := domain.PageQuery{
		Page:     2,
		PageSize: 10,
		Keyword:  "  go  ",
		Filters:  map[string]string{"status": "1"},
	}
	page, err := getPage[domain.Skill](context.Background(), c, "/Skill/get-list-page-skill", q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Items) != 2 || page.TotalCount != 42 || page.TotalPage != 5 {
		t.Errorf("unexpected page: %+v", page)
	}
	if gotBody["page"] != float64(2) || gotBody["pageSize"] != float64(10) {
		t.Errorf("unexpected pagination fields: %v", gotBody)
	}
	if gotBody["keyword"] != "go" {
		t.Errorf("expected trimmed keyword, got %v", gotBody["keyword"])
	}
	if gotBody["status"] != "1" {
		t.Errorf("expected filter field, got %v", gotBody["status"])
	}
	if _, ok := gotBody["targetType"]; ok {
		t.Error("empty target fields must be omitted")
	}
}

func TestGetPage_NilItemsBecomeEmptySlice(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"items":null,"pagination":{"totalCount":0,"totalPage":0}},"error":{"code":"success","message":""}}`))
	})

	c := NewClient(srv.URL, 0, nil)
	page, err := getPage[domain.Skill](context.Background(), c, "/x", domain.PageQuery{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Items == nil {
		t.Fatal("expected non-nil items slice")
	}
	if len(page.Items) != 0 {
		t.Errorf("expected empty items, got %d", len(page.Items))
	}
}

func TestQueryBody_FiltersCannotShadowReservedFields(t *testing.T) {
	q := domain.PageQuery{
		Page:     3,
		PageSize: 20,
		Filters:  map[string]string{"page": "999", "gender": "1"},
	}
	body := queryBody(q)
	if body["page"] != 3 {
		t.Errorf("filter must not shadow page, got %v", body["page"])
	}
	if body["gender"] != "1" {
		t.Errorf("expected gender filter, got %v", body["gender"])
	}
}
