package upstream

import (
	"context"

	"github.com/hirebridge/backoffice/internal/domain"
)

// companyService implements domain.CompanyService against the upstream API.
type companyService struct {
	c *Client
}

// NewCompanyService creates a CompanyService backed by the given client.
func NewCompanyService(c *Client) domain.CompanyService {
	return &companyService{c: c}
}

// GetPage fetches one page of company profiles.
func (s *companyService) GetPage(ctx context.Context, q domain.PageQuery) (*domain.Page[domain.Company], error) {
	return getPage[domain.Company](ctx, s.c, "/Companies/get-page-list-company", q)
}
