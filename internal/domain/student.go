package domain

import "context"

// Gender values used by the upstream API for student profiles.
const (
	GenderMale   = 0
	GenderFemale = 1
)

// Student is a student profile as served by the upstream API.
type Student struct {
	UUID        string    `json:"uuid"`
	UserUUID    string    `json:"userUuid"`
	FullName    string    `json:"fullname"`
	PhoneNumber string    `json:"phoneNumber"`
	Gender      int       `json:"gender"`
	Birthday    string    `json:"birthday"`
	University  string    `json:"university"`
	Major       string    `json:"major"`
	Province    *Location `json:"tp,omitempty"`
	District    *Location `json:"qh,omitempty"`
	Ward        *Location `json:"xa,omitempty"`
}

// StudentService lists student profiles and fetches single profiles from
// the upstream API.
type StudentService interface {
	GetPage(ctx context.Context, q PageQuery) (*Page[Student], error)
	GetDetail(ctx context.Context, uuid string) (*Student, error)
}
