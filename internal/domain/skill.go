package domain

import "context"

// Skill is a skill tag managed through the back office.
type Skill struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// SkillService lists and creates skill tags on the upstream API.
type SkillService interface {
	GetPage(ctx context.Context, q PageQuery) (*Page[Skill], error)
	Create(ctx context.Context, name string) (*Skill, error)
}
