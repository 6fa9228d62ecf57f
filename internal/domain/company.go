package domain

import "context"

// Location is an administrative area embedded in company and student
// profiles (province, district, ward). The upstream API omits it for
// records without a registered address.
type Location struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
}

// Company is an employer profile as served by the upstream API.
// The tp/qh/xa embeds are optional; nil means no registered address.
type Company struct {
	UUID        string    `json:"uuid"`
	UserUUID    string    `json:"userUuid"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Province    *Location `json:"tp,omitempty"`
	District    *Location `json:"qh,omitempty"`
	Ward        *Location `json:"xa,omitempty"`
}

// CompanyService lists company profiles from the upstream API.
type CompanyService interface {
	GetPage(ctx context.Context, q PageQuery) (*Page[Company], error)
}
