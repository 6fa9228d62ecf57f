package domain

import "context"

// Report target types accepted by the upstream API.
const (
	TargetStudent = "student"
	TargetCompany = "company"
	TargetJob     = "job"
)

// ValidTargetType reports whether t names a reportable entity type.
func ValidTargetType(t string) bool {
	switch t {
	case TargetStudent, TargetCompany, TargetJob:
		return true
	default:
		return false
	}
}

// Report is a user-filed report against a student, company, or job posting.
// Reports are created outside the back office; this system only lists them.
type Report struct {
	UUID         string `json:"uuid"`
	ReporterUUID string `json:"reporterUuid"`
	TargetUUID   string `json:"targetUuid"`
	TargetType   string `json:"targetType"`
	Reason       string `json:"reason"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

// ReportService lists reports scoped to one target entity. The query must
// carry TargetType and TargetUUID.
type ReportService interface {
	GetPage(ctx context.Context, q PageQuery) (*Page[Report], error)
}
