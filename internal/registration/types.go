// Package registration holds the registration domain types and the rules
// that turn untrusted request payloads into validated records.
package registration

import (
	"time"

	"github.com/reach-summit/summit-api/internal/pricing"
)

type Accommodation string

const (
	AccommodationDorm    Accommodation = pricing.Dorm
	AccommodationDayPass Accommodation = pricing.DayPass
)

type IndividualPayment string

const (
	PaymentNow   IndividualPayment = "now"
	PaymentVenue IndividualPayment = "venue"
)

type GroupPayment string

const (
	GroupPaymentNow   GroupPayment = "paynow"
	GroupPaymentVenue GroupPayment = "venue"
)

// IndividualInput is the raw individual payload as submitted by the form.
type IndividualInput struct {
	Name             string   `json:"name,omitempty" doc:"Full name"`
	Email            string   `json:"email,omitempty" doc:"Email address"`
	Phone            string   `json:"phone,omitempty" doc:"Phone number, 10 to 15 digits"`
	Church           string   `json:"church,omitempty" doc:"Church or organisation"`
	Country          string   `json:"country,omitempty"`
	EmergencyName    string   `json:"emergencyName,omitempty" doc:"Emergency contact name"`
	EmergencyContact string   `json:"emergencyContact,omitempty" doc:"Emergency contact number"`
	Indemnity        bool     `json:"indemnity,omitempty" doc:"Indemnity agreement accepted"`
	Accommodation    string   `json:"accommodation,omitempty" doc:"dorm or dayPass"`
	Bedding          bool     `json:"bedding,omitempty" doc:"Brings own bedding, required for dorm"`
	DayPass          []string `json:"dayPass,omitempty" doc:"Selected days, required for dayPass"`
	Payment          string   `json:"payment,omitempty" doc:"now or venue"`
	Commitment       bool     `json:"commitment,omitempty" doc:"Commitment to attend, required for venue payment"`
	_                struct{} `json:"-" additionalProperties:"true"`
}

type LeaderInput struct {
	Name    string   `json:"name,omitempty"`
	Email   string   `json:"email,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Church  string   `json:"church,omitempty"`
	Country string   `json:"country,omitempty"`
	_       struct{} `json:"-" additionalProperties:"true"`
}

type MemberInput struct {
	Name   string   `json:"name,omitempty"`
	Gender string   `json:"gender,omitempty"`
	Email  string   `json:"email,omitempty"`
	Phone  string   `json:"phone,omitempty" doc:"Required for every member"`
	_      struct{} `json:"-" additionalProperties:"true"`
}

// GroupInput is the raw group payload. Client supplied totals are accepted
// on the wire but never trusted.
type GroupInput struct {
	Leader        LeaderInput   `json:"leader,omitempty"`
	Members       []MemberInput `json:"members,omitempty"`
	Accommodation string        `json:"accommodation,omitempty" doc:"dorm or dayPass"`
	Payment       string        `json:"payment,omitempty" doc:"paynow or venue"`
	_             struct{}      `json:"-" additionalProperties:"true"`
}

// Individual is a validated individual registration.
type Individual struct {
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Church           string            `json:"church"`
	Country          string            `json:"country"`
	EmergencyName    string            `json:"emergencyName"`
	EmergencyContact string            `json:"emergencyContact"`
	Indemnity        bool              `json:"indemnity"`
	Accommodation    Accommodation     `json:"accommodation"`
	Bedding          bool              `json:"bedding"`
	DayPass          []string          `json:"dayPass"`
	Payment          IndividualPayment `json:"payment"`
	Commitment       bool              `json:"commitment"`
}

type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Church  string `json:"church"`
	Country string `json:"country"`
}

type Member struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

// Group is a validated group registration.
type Group struct {
	Leader        Profile       `json:"leader"`
	Members       []Member      `json:"members"`
	Accommodation Accommodation `json:"accommodation"`
	Payment       GroupPayment  `json:"payment"`
}

// IndividualRecord is a stored individual registration.
type IndividualRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Individual
}

// GroupRecord is a stored group registration with its server computed quote.
type GroupRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Group
	RawTotal pricing.Amount `json:"rawTotal"`
	Discount pricing.Amount `json:"discount"`
	Total    pricing.Amount `json:"total"`
}
