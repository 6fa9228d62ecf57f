package domain

import "context"

// Account status values used by the upstream API.
const (
	UserStatusLocked = 0
	UserStatusActive = 1
)

// User is the account record behind a student or company profile,
// referenced by userUuid and fetched lazily per row.
type User struct {
	UUID      string `json:"uuid"`
	Email     string `json:"email"`
	IsVerify  bool   `json:"isVerify"`
	Status    int    `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// UserService fetches account records and toggles their lock status on the
// upstream API.
type UserService interface {
	GetDetail(ctx context.Context, uuid string) (*User, error)
	UpdateStatus(ctx context.Context, uuid string) error
}

// UserCache is the side-table cache of account records keyed by userUuid.
// It is populated opportunistically as profile pages render and shared by
// every component that displays account state. Writes are last-writer-wins.
type UserCache interface {
	// Get returns the cached record for uuid, fetching it on a miss.
	// Concurrent calls for the same key share one upstream fetch.
	Get(ctx context.Context, uuid string) (*User, error)
	// Peek returns the cached record without fetching, or nil on a miss.
	Peek(uuid string) *User
	// Refresh drops the cached record for uuid and fetches it again.
	Refresh(ctx context.Context, uuid string) (*User, error)
	// Prime fetches the given keys in the background, deduplicating keys
	// that are already cached or in flight. It does not block on results;
	// ctx contributes its values but not its cancellation.
	Prime(ctx context.Context, uuids []string)
}
