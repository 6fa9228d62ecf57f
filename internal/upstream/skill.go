package upstream

import (
	"context"

	"github.com/hirebridge/backoffice/internal/domain"
)

// skillService implements domain.SkillService against the upstream API.
type skillService struct {
	c *Client
}

// NewSkillService creates a SkillService backed by the given client.
func NewSkillService(c *Client) domain.SkillService {
	return &skillService{c: c}
}

// GetPage fetches one page of skill tags.
func (s *skillService) GetPage(ctx context.Context, q domain.PageQuery) (*domain.Page[domain.Skill], error) {
	return getPage[domain.Skill](ctx, s.c, "/Skill/get-list-page-skill", q)
}

// Create registers a new skill tag and returns the created record.
func (s *skillService) Create(ctx context.Context, name string) (*domain.Skill, error) {
	var sk domain.Skill
	if err := s.c.post(ctx, "/Skill/create-skill", map[string]string{"name": name}, &sk); err != nil {
		return nil, err
	}
	return &sk, nil
}
