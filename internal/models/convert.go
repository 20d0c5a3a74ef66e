package models

import (
	"github.com/reach-summit/summit-api/internal/pricing"
	"github.com/reach-summit/summit-api/internal/registration"
)

func NewIndividualRegistration(rec registration.IndividualRecord) IndividualRegistration {
	days := rec.DayPass
	if days == nil {
		days = []string{}
	}
	return IndividualRegistration{
		ID:               rec.ID,
		Name:             rec.Name,
		Email:            rec.Email,
		Phone:            rec.Phone,
		Church:           rec.Church,
		Country:          rec.Country,
		EmergencyName:    rec.EmergencyName,
		EmergencyContact: rec.EmergencyContact,
		Indemnity:        rec.Indemnity,
		Accommodation:    string(rec.Accommodation),
		Bedding:          rec.Bedding,
		DayPass:          days,
		Payment:          string(rec.Payment),
		Commitment:       rec.Commitment,
		CreatedAt:        rec.CreatedAt,
	}
}

func (m IndividualRegistration) Record() registration.IndividualRecord {
	days := []string(m.DayPass)
	if days == nil {
		days = []string{}
	}
	return registration.IndividualRecord{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		Individual: registration.Individual{
			Name:             m.Name,
			Email:            m.Email,
			Phone:            m.Phone,
			Church:           m.Church,
			Country:          m.Country,
			EmergencyName:    m.EmergencyName,
			EmergencyContact: m.EmergencyContact,
			Indemnity:        m.Indemnity,
			Accommodation:    registration.Accommodation(m.Accommodation),
			Bedding:          m.Bedding,
			DayPass:          days,
			Payment:          registration.IndividualPayment(m.Payment),
			Commitment:       m.Commitment,
		},
	}
}

func NewGroupRegistration(rec registration.GroupRecord) GroupRegistration {
	members := make([]GroupMember, 0, len(rec.Members))
	for _, m := range rec.Members {
		members = append(members, GroupMember{
			Name:   m.Name,
			Gender: m.Gender,
			Email:  m.Email,
			Phone:  m.Phone,
		})
	}
	return GroupRegistration{
		ID:            rec.ID,
		LeaderName:    rec.Leader.Name,
		LeaderEmail:   rec.Leader.Email,
		LeaderPhone:   rec.Leader.Phone,
		LeaderChurch:  rec.Leader.Church,
		LeaderCountry: rec.Leader.Country,
		Members:       members,
		Accommodation: string(rec.Accommodation),
		Payment:       string(rec.Payment),
		RawTotal:      int64(rec.RawTotal),
		Discount:      int64(rec.Discount),
		Total:         int64(rec.Total),
		CreatedAt:     rec.CreatedAt,
	}
}

func (m GroupRegistration) Record() registration.GroupRecord {
	members := make([]registration.Member, 0, len(m.Members))
	for _, gm := range m.Members {
		members = append(members, registration.Member{
			Name:   gm.Name,
			Gender: gm.Gender,
			Email:  gm.Email,
			Phone:  gm.Phone,
		})
	}
	return registration.GroupRecord{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		Group: registration.Group{
			Leader: registration.Profile{
				Name:    m.LeaderName,
				Email:   m.LeaderEmail,
				Phone:   m.LeaderPhone,
				Church:  m.LeaderChurch,
				Country: m.LeaderCountry,
			},
			Members:       members,
			Accommodation: registration.Accommodation(m.Accommodation),
			Payment:       registration.GroupPayment(m.Payment),
		},
		RawTotal: pricing.Amount(m.RawTotal),
		Discount: pricing.Amount(m.Discount),
		Total:    pricing.Amount(m.Total),
	}
}
