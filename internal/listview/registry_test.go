package listview

import (
	"context"
	"testing"
	"time"

	"github.com/hirebridge/backoffice/internal/domain"
)

func newTestRegistry(ttl time.Duration) *Registry[row] {
	return NewRegistry(func() *Controller[row] {
		return NewController(func(_ context.Context, q domain.PageQuery) (*domain.Page[row], error) {
			return pageOf(), nil
		}, Options{})
	}, ttl)
}

func TestRegistry_OneControllerPerSession(t *testing.T) {
	r := newTestRegistry(0)

	a1 := r.For("session-a")
	a2 := r.For("session-a")
	b := r.For("session-b")

	if a1 != a2 {
		t.Error("same session must get the same controller")
	}
	if a1 == b {
		t.Error("different sessions must get different controllers")
	}

	// State set through one handle is visible through the other.
	a1.SetPage(4)
	if q := a2.Query(); q.Page != 4 {
		t.Errorf("expected shared state, got page %d", q.Page)
	}
}

func TestRegistry_Drop(t *testing.T) {
	r := newTestRegistry(0)

	before := r.For("session-a")
	before.SetPage(9)
	r.Drop("session-a")

	after := r.For("session-a")
	if before == after {
		t.Error("expected a fresh controller after drop")
	}
	if q := after.Query(); q.Page != 1 {
		t.Errorf("expected fresh state, got page %d", q.Page)
	}
}

func TestRegistry_EvictsIdleEntries(t *testing.T) {
	r := newTestRegistry(time.Minute)

	current := time.Now()
	r.now = func() time.Time { return current }

	stale := r.For("session-a")

	// Two minutes later the entry has idled past the ttl.
	current = current.Add(2 * time.Minute)
	fresh := r.For("session-a")

	if stale == fresh {
		t.Error("expected idle controller to be evicted")
	}
}

func TestRegistry_KeepsActiveEntries(t *testing.T) {
	r := newTestRegistry(time.Minute)

	current := time.Now()
	r.now = func() time.Time { return current }

	first := r.For("session-a")

	// Touched every 30s, the entry never idles past the ttl.
	for i := 0; i < 5; i++ {
		current = current.Add(30 * time.Second)
		if got := r.For("session-a"); got != first {
			t.Fatalf("active controller was evicted on touch %d", i)
		}
	}
}
