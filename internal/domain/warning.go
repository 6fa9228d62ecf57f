package domain

import "context"

// Warning is an account warning sent to a student, company, or job owner.
// The back office creates warnings and lists previously sent ones.
type Warning struct {
	UUID       string `json:"uuid,omitempty"`
	TargetType string `json:"targetType"`
	TargetUUID string `json:"targetUuid"`
	Messages   string `json:"messages"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// WarningService creates and lists account warnings on the upstream API.
type WarningService interface {
	Create(ctx context.Context, w Warning) error
	GetPage(ctx context.Context, q PageQuery) (*Page[Warning], error)
}
