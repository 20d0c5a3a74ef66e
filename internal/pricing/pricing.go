// Package pricing computes registration costs in fixed-point cents.
package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reach-summit/summit-api/internal/config"
)

const (
	Dorm    = "dorm"
	DayPass = "dayPass"
)

// Amount is a monetary value in cents.
type Amount int64

func Rands(r int64) Amount {
	return Amount(r * 100)
}

func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON renders amounts as a JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	v, err := ParseAmount(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAmount parses a decimal string such as "1300", "12870.5" or "-3.25"
// without going through floating point. More than two decimals is an error.
func ParseAmount(s string) (Amount, error) {
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(digits, ".")
	if whole == "" || len(frac) > 2 || !allDigits(whole+frac) {
		return 0, fmt.Errorf("pricing: invalid amount %q", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("pricing: invalid amount %q: %w", s, err)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("pricing: invalid amount %q: %w", s, err)
	}
	v := Amount(w*100 + f)
	if neg {
		v = -v
	}
	return v, nil
}

type Rates struct {
	DormRate          Amount
	DayPassRate       Amount
	DaysOffered       int
	DiscountThreshold int
	DiscountPercent   int64
}

func DefaultRates() Rates {
	return Rates{
		DormRate:          Rands(1300),
		DayPassRate:       Rands(250),
		DaysOffered:       3,
		DiscountThreshold: 10,
		DiscountPercent:   10,
	}
}

func RatesFromConfig(cfg config.PricingConfig) Rates {
	return Rates{
		DormRate:          Rands(cfg.DormRate),
		DayPassRate:       Rands(cfg.DayPassRate),
		DaysOffered:       cfg.DaysOffered,
		DiscountThreshold: cfg.GroupDiscountThreshold,
		DiscountPercent:   cfg.GroupDiscountPercent,
	}
}

// Validate rejects rates that could price a group below zero.
func (r Rates) Validate() error {
	var errs []error
	if r.DormRate < 0 {
		errs = append(errs, fmt.Errorf("pricing: negative dorm rate %s", r.DormRate))
	}
	if r.DayPassRate < 0 {
		errs = append(errs, fmt.Errorf("pricing: negative day pass rate %s", r.DayPassRate))
	}
	if r.DaysOffered < 1 {
		errs = append(errs, fmt.Errorf("pricing: days offered must be at least 1, got %d", r.DaysOffered))
	}
	if r.DiscountThreshold < 0 {
		errs = append(errs, fmt.Errorf("pricing: negative discount threshold %d", r.DiscountThreshold))
	}
	if r.DiscountPercent < 0 || r.DiscountPercent > 100 {
		errs = append(errs, fmt.Errorf("pricing: discount percent %d outside 0..100", r.DiscountPercent))
	}
	return errors.Join(errs...)
}

type Quote struct {
	RawTotal Amount `json:"rawTotal"`
	Discount Amount `json:"discount"`
	Total    Amount `json:"total"`
}

type Engine struct {
	rates Rates
}

func NewEngine(rates Rates) *Engine {
	return &Engine{rates: rates}
}

func (e *Engine) Rates() Rates {
	return e.rates
}

// PerMember is the group rate for one member. A group day pass covers every
// day offered.
func (e *Engine) PerMember(accommodation string) (Amount, error) {
	switch accommodation {
	case Dorm:
		return e.rates.DormRate, nil
	case DayPass:
		return e.rates.DayPassRate * Amount(e.rates.DaysOffered), nil
	default:
		return 0, fmt.Errorf("pricing: unknown accommodation %q", accommodation)
	}
}

func (e *Engine) PriceGroup(memberCount int, accommodation string) (Quote, error) {
	if memberCount < 0 {
		return Quote{}, fmt.Errorf("pricing: negative member count %d", memberCount)
	}
	if err := e.rates.Validate(); err != nil {
		return Quote{}, err
	}
	rate, err := e.PerMember(accommodation)
	if err != nil {
		return Quote{}, err
	}

	raw := rate * Amount(memberCount)
	var discount Amount
	if memberCount > e.rates.DiscountThreshold {
		discount = percentOf(raw, e.rates.DiscountPercent)
	}

	return Quote{
		RawTotal: raw,
		Discount: discount,
		Total:    raw - discount,
	}, nil
}

// PriceIndividual is informational only. Day passes are charged per selected day.
func (e *Engine) PriceIndividual(accommodation string, days int) (Amount, error) {
	if err := e.rates.Validate(); err != nil {
		return 0, err
	}
	switch accommodation {
	case Dorm:
		return e.rates.DormRate, nil
	case DayPass:
		return e.rates.DayPassRate * Amount(days), nil
	default:
		return 0, fmt.Errorf("pricing: unknown accommodation %q", accommodation)
	}
}

// percentOf rounds half up to the cent.
func percentOf(a Amount, pct int64) Amount {
	return Amount((int64(a)*pct + 50) / 100)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
