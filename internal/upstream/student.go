package upstream

import (
	"context"

	"github.com/hirebridge/backoffice/internal/domain"
)

// studentService implements domain.StudentService against the upstream API.
type studentService struct {
	c *Client
}

// NewStudentService creates a StudentService backed by the given client.
func NewStudentService(c *Client) domain.StudentService {
	return &studentService{c: c}
}

// GetPage fetches one page of student profiles.
func (s *studentService) GetPage(ctx context.Context, q domain.PageQuery) (*domain.Page[domain.Student], error) {
	return getPage[domain.Student](ctx, s.c, "/Student/get-page-list-student", q)
}

// GetDetail fetches a single student profile by its profile uuid.
func (s *studentService) GetDetail(ctx context.Context, uuid string) (*domain.Student, error) {
	var st domain.Student
	err := s.c.post(ctx, "/Student/detail-student-by-studentuuid", map[string]string{"uuid": uuid}, &st)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
