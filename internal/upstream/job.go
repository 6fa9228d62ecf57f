package upstream

import (
	"context"

	"github.com/hirebridge/backoffice/internal/domain"
)

// jobService implements domain.JobService against the upstream API.
type jobService struct {
	c *Client
}

// NewJobService creates a JobService backed by the given client.
func NewJobService(c *Client) domain.JobService {
	return &jobService{c: c}
}

// GetPage fetches one page of job postings with their embedded company and
// skill list.
func (s *jobService) GetPage(ctx context.Context, q domain.PageQuery) (*domain.Page[domain.Job], error) {
	return getPage[domain.Job](ctx, s.c, "/Job/get-list-page-job", q)
}

// GetDetail fetches a single job posting by uuid.
func (s *jobService) GetDetail(ctx context.Context, uuid string) (*domain.Job, error) {
	var job domain.Job
	if err := s.c.post(ctx, "/Job/detail-job", map[string]string{"uuid": uuid}, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
