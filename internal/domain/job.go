package domain

import "context"

// Job posting type and salary model values used by the upstream API.
const (
	JobTypeRemote     = "remote"
	JobTypePartTime   = "parttime"
	JobTypeInternship = "internship"
	JobTypeFullTime   = "fulltime"

	SalaryTypeFixed      = "fixed"
	SalaryTypeMonthly    = "monthly"
	SalaryTypeDaily      = "daily"
	SalaryTypeHourly     = "hourly"
	SalaryTypeNegotiable = "negotiable"
)

// JobSchedule is one working-hours entry of a job posting.
type JobSchedule struct {
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Job is a job posting as served by the upstream API. The company embed and
// the skill list are pre-joined server-side; both may be absent.
type Job struct {
	UUID        string        `json:"uuid"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	JobType     string        `json:"jobType"`
	SalaryType  string        `json:"salaryType"`
	SalaryMin   float64       `json:"salaryMin,omitempty"`
	SalaryMax   float64       `json:"salaryMax,omitempty"`
	SalaryFixed float64       `json:"salaryFixed,omitempty"`
	Currency    string        `json:"currency"`
	Status      string        `json:"status"`
	Company     *Company      `json:"company,omitempty"`
	Skills      []Skill       `json:"listSkill,omitempty"`
	Schedule    []JobSchedule `json:"schedule,omitempty"`
	CreatedAt   string        `json:"createdAt"`
}

// JobService lists job postings and fetches single postings from the
// upstream API.
type JobService interface {
	GetPage(ctx context.Context, q PageQuery) (*Page[Job], error)
	GetDetail(ctx context.Context, uuid string) (*Job, error)
}
