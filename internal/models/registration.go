package models

import (
	"time"

	"gorm.io/datatypes"
)

type IndividualRegistration struct {
	ID               string                      `gorm:"primaryKey;size:36" db:"id"`
	Name             string                      `gorm:"not null" db:"name"`
	Email            string                      `gorm:"not null" db:"email"`
	Phone            string                      `gorm:"not null" db:"phone"`
	Church           string                      `gorm:"not null" db:"church"`
	Country          string                      `gorm:"not null" db:"country"`
	EmergencyName    string                      `gorm:"not null" db:"emergency_name"`
	EmergencyContact string                      `gorm:"not null" db:"emergency_contact"`
	Indemnity        bool                        `gorm:"not null" db:"indemnity"`
	Accommodation    string                      `gorm:"not null" db:"accommodation"`
	Bedding          bool                        `gorm:"not null" db:"bedding"`
	DayPass          datatypes.JSONSlice[string] `db:"day_pass"`
	Payment          string                      `gorm:"not null" db:"payment"`
	Commitment       bool                        `gorm:"not null" db:"commitment"`
	CreatedAt        time.Time                   `gorm:"index" db:"created_at"`
}

// GroupMember is stored inside the members JSON column of a group row.
type GroupMember struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

// GroupRegistration amounts are stored in cents.
type GroupRegistration struct {
	ID            string                           `gorm:"primaryKey;size:36" db:"id"`
	LeaderName    string                           `gorm:"not null" db:"leader_name"`
	LeaderEmail   string                           `gorm:"not null" db:"leader_email"`
	LeaderPhone   string                           `gorm:"not null" db:"leader_phone"`
	LeaderChurch  string                           `gorm:"not null" db:"leader_church"`
	LeaderCountry string                           `gorm:"not null" db:"leader_country"`
	Members       datatypes.JSONSlice[GroupMember] `db:"members"`
	Accommodation string                           `gorm:"not null" db:"accommodation"`
	Payment       string                           `gorm:"not null" db:"payment"`
	RawTotal      int64                            `gorm:"not null" db:"raw_total"`
	Discount      int64                            `gorm:"not null" db:"discount"`
	Total         int64                            `gorm:"not null" db:"total"`
	CreatedAt     time.Time                        `gorm:"index" db:"created_at"`
}

// All lists every model owned by the schema migration.
func All() []any {
	return []any{&IndividualRegistration{}, &GroupRegistration{}}
}
