package registration

import (
	"errors"
	"regexp"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	emailExp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@.]+$`)
	phoneExp = regexp.MustCompile(`^\d{10,15}$`)
)

const (
	msgRequired       = "is required"
	msgEmail          = "must be a valid email address"
	msgPhone          = "must be 10 to 15 digits"
	msgIndemnity      = "you must accept the indemnity agreement"
	msgBedding        = "you must confirm you will bring bedding"
	msgDayPass        = "select at least one day"
	msgCommitment     = "you must commit to attend"
	msgAccommodation  = "must be one of dorm, dayPass"
	msgPayment        = "must be one of now, venue"
	msgGroupPayment   = "must be one of paynow, venue"
	msgMembers        = "at least one member is required"
	msgMemberPhone    = "each group member must have a phone number"
	msgMalformedField = "is invalid"
)

func required() validation.Rule {
	return validation.Required.Error(msgRequired)
}

func email() []validation.Rule {
	return []validation.Rule{required(), validation.Match(emailExp).Error(msgEmail)}
}

func phone(requiredMsg string) []validation.Rule {
	return []validation.Rule{validation.Required.Error(requiredMsg), validation.Match(phoneExp).Error(msgPhone)}
}

// ParseIndividual normalises and validates an individual payload. On failure
// the returned error is a *ValidationError holding every failing field.
func ParseIndividual(in IndividualInput) (Individual, error) {
	ind := normalizeIndividual(in)

	var beddingRules, dayPassRules, commitmentRules []validation.Rule
	if ind.Accommodation == AccommodationDorm {
		beddingRules = append(beddingRules, validation.Required.Error(msgBedding))
	}
	if ind.Accommodation == AccommodationDayPass {
		dayPassRules = append(dayPassRules, validation.Required.Error(msgDayPass))
	}
	if ind.Payment == PaymentVenue {
		commitmentRules = append(commitmentRules, validation.Required.Error(msgCommitment))
	}

	err := validation.ValidateStruct(&ind,
		validation.Field(&ind.Name, required()),
		validation.Field(&ind.Email, email()...),
		validation.Field(&ind.Phone, phone(msgRequired)...),
		validation.Field(&ind.Church, required()),
		validation.Field(&ind.Country, required()),
		validation.Field(&ind.EmergencyName, required()),
		validation.Field(&ind.EmergencyContact, required()),
		validation.Field(&ind.Indemnity, validation.Required.Error(msgIndemnity)),
		validation.Field(&ind.Accommodation, required(),
			validation.In(AccommodationDorm, AccommodationDayPass).Error(msgAccommodation)),
		validation.Field(&ind.Bedding, beddingRules...),
		validation.Field(&ind.DayPass, dayPassRules...),
		validation.Field(&ind.Payment, required(),
			validation.In(PaymentNow, PaymentVenue).Error(msgPayment)),
		validation.Field(&ind.Commitment, commitmentRules...),
	)
	if err != nil {
		return Individual{}, newValidationError(err)
	}
	return ind, nil
}

// ParseGroup normalises and validates a group payload.
func ParseGroup(in GroupInput) (Group, error) {
	g := normalizeGroup(in)

	err := validation.ValidateStruct(&g,
		validation.Field(&g.Leader),
		validation.Field(&g.Members, validation.Required.Error(msgMembers)),
		validation.Field(&g.Accommodation, required(),
			validation.In(AccommodationDorm, AccommodationDayPass).Error(msgAccommodation)),
		validation.Field(&g.Payment, required(),
			validation.In(GroupPaymentNow, GroupPaymentVenue).Error(msgGroupPayment)),
	)
	if err != nil {
		return Group{}, newValidationError(err)
	}
	return g, nil
}

func (p Profile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, required()),
		validation.Field(&p.Email, email()...),
		validation.Field(&p.Phone, phone(msgRequired)...),
		validation.Field(&p.Church, required()),
		validation.Field(&p.Country, required()),
	)
}

func (m Member) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, required()),
		validation.Field(&m.Email, email()...),
		validation.Field(&m.Phone, phone(msgMemberPhone)...),
	)
}

func normalizeIndividual(in IndividualInput) Individual {
	ind := Individual{
		Name:             strings.TrimSpace(in.Name),
		Email:            strings.TrimSpace(in.Email),
		Phone:            strings.TrimSpace(in.Phone),
		Church:           strings.TrimSpace(in.Church),
		Country:          strings.TrimSpace(in.Country),
		EmergencyName:    strings.TrimSpace(in.EmergencyName),
		EmergencyContact: strings.TrimSpace(in.EmergencyContact),
		Indemnity:        in.Indemnity,
		Accommodation:    normalizeAccommodation(in.Accommodation),
		Payment:          IndividualPayment(strings.ToLower(strings.TrimSpace(in.Payment))),
		DayPass:          []string{},
	}

	// Only the chosen accommodation branch is kept.
	switch ind.Accommodation {
	case AccommodationDorm:
		ind.Bedding = in.Bedding
	case AccommodationDayPass:
		ind.DayPass = uniqueDays(in.DayPass)
	}
	if ind.Payment == PaymentVenue {
		ind.Commitment = in.Commitment
	}
	return ind
}

func normalizeGroup(in GroupInput) Group {
	g := Group{
		Leader: Profile{
			Name:    strings.TrimSpace(in.Leader.Name),
			Email:   strings.TrimSpace(in.Leader.Email),
			Phone:   strings.TrimSpace(in.Leader.Phone),
			Church:  strings.TrimSpace(in.Leader.Church),
			Country: strings.TrimSpace(in.Leader.Country),
		},
		Members:       make([]Member, 0, len(in.Members)),
		Accommodation: normalizeAccommodation(in.Accommodation),
		Payment:       GroupPayment(strings.ToLower(strings.TrimSpace(in.Payment))),
	}
	for _, m := range in.Members {
		g.Members = append(g.Members, Member{
			Name:   strings.TrimSpace(m.Name),
			Gender: strings.TrimSpace(m.Gender),
			Email:  strings.TrimSpace(m.Email),
			Phone:  strings.TrimSpace(m.Phone),
		})
	}
	return g
}

// normalizeAccommodation maps the legacy "daypass" spelling onto dayPass.
func normalizeAccommodation(s string) Accommodation {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "dorm":
		return AccommodationDorm
	case "daypass":
		return AccommodationDayPass
	}
	return Accommodation(s)
}

func uniqueDays(days []string) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		d = strings.TrimSpace(d)
		if d == "" || slices.Contains(out, d) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// flatten turns nested ozzo errors into dotted field keys, e.g. members.1.phone.
func flatten(prefix string, err error, into map[string]string) {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		msg := err.Error()
		if msg == "" {
			msg = msgMalformedField
		}
		into[prefix] = msg
		return
	}
	for field, fieldErr := range errs {
		if fieldErr == nil {
			continue
		}
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		flatten(key, fieldErr, into)
	}
}
