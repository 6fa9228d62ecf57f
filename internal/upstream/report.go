package upstream

import (
	"context"

	"github.com/hirebridge/backoffice/internal/domain"
)

// reportService implements domain.ReportService against the upstream API.
type reportService struct {
	c *Client
}

// NewReportService creates a ReportService backed by the given client.
func NewReportService(c *Client) domain.ReportService {
	return &reportService{c: c}
}

// GetPage fetches one page of reports filed against the target named by the
// query.
func (s *reportService) GetPage(ctx context.Context, q domain.PageQuery) (*domain.Page[domain.Report], error) {
	if !domain.ValidTargetType(q.TargetType) || q.TargetUUID == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "report query requires a target", nil)
	}
	return getPage[domain.Report](ctx, s.c, "/Report/get-list-page-report", q)
}
