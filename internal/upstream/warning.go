package upstream

import (
	"context"

	"github.com/hirebridge/backoffice/internal/domain"
)

// warningService implements domain.WarningService against the upstream API.
type warningService struct {
	c *Client
}

// NewWarningService creates a WarningService backed by the given client.
func NewWarningService(c *Client) domain.WarningService {
	return &warningService{c: c}
}

// Create sends an account warning to the target named by w.
func (s *warningService) Create(ctx context.Context, w domain.Warning) error {
	body := map[string]string{
		"targetType": w.TargetType,
		"targetUuid": w.TargetUUID,
		"messages":   w.Messages,
	}
	return s.c.post(ctx, "/UserWarning/create-warning", body, nil)
}

// GetPage fetches one page of previously sent warnings.
func (s *warningService) GetPage(ctx context.Context, q domain.PageQuery) (*domain.Page[domain.Warning], error) {
	return getPage[domain.Warning](ctx, s.c, "/UserWarning/get-page-list-warning", q)
}
