package student

import "github.com/hirebridge/backoffice/internal/domain"

// StudentRow is a student profile decorated with its cached account record.
// Account is null until the side cache holds the record for the row's
// userUuid.
type StudentRow struct {
	domain.Student
	Account *domain.User `json:"account"`
}
