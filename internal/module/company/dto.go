package company

import "github.com/hirebridge/backoffice/internal/domain"

// CompanyRow is an employer profile decorated with its cached account
// record. Account is null until the side cache holds the record for the
// row's userUuid.
type CompanyRow struct {
	domain.Company
	Account *domain.User `json:"account"`
}
