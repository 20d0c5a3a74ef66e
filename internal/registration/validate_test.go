package registration

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validIndividual() IndividualInput {
	return IndividualInput{
		Name:             "Thandi Nkosi",
		Email:            "thandi@example.co.za",
		Phone:            "0821234567",
		Church:           "Grace Chapel",
		Country:          "South Africa",
		EmergencyName:    "Sipho Nkosi",
		EmergencyContact: "0827654321",
		Indemnity:        true,
		Accommodation:    "dorm",
		Bedding:          true,
		Payment:          "now",
	}
}

func validGroup(members int) GroupInput {
	g := GroupInput{
		Leader: LeaderInput{
			Name:    "Pastor John",
			Email:   "john@example.org",
			Phone:   "27831234567",
			Church:  "Hope Church",
			Country: "Botswana",
		},
		Accommodation: "dorm",
		Payment:       "paynow",
	}
	for i := 0; i < members; i++ {
		g.Members = append(g.Members, MemberInput{
			Name:   fmt.Sprintf("Member %d", i),
			Gender: "female",
			Email:  fmt.Sprintf("member%d@example.org", i),
			Phone:  fmt.Sprintf("07100000%02d", i),
		})
	}
	return g
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Fields
}

func TestParseIndividual_Valid(t *testing.T) {
	ind, err := ParseIndividual(validIndividual())
	require.NoError(t, err)
	assert.Equal(t, AccommodationDorm, ind.Accommodation)
	assert.Equal(t, PaymentNow, ind.Payment)
	assert.Empty(t, ind.DayPass)
}

func TestParseIndividual_RequiredFields(t *testing.T) {
	drop := map[string]func(*IndividualInput){
		"name":             func(in *IndividualInput) { in.Name = "" },
		"email":            func(in *IndividualInput) { in.Email = "" },
		"phone":            func(in *IndividualInput) { in.Phone = "  " },
		"church":           func(in *IndividualInput) { in.Church = "" },
		"country":          func(in *IndividualInput) { in.Country = "\t" },
		"emergencyName":    func(in *IndividualInput) { in.EmergencyName = "" },
		"emergencyContact": func(in *IndividualInput) { in.EmergencyContact = "" },
		"indemnity":        func(in *IndividualInput) { in.Indemnity = false },
		"accommodation":    func(in *IndividualInput) { in.Accommodation = "" },
		"payment":          func(in *IndividualInput) { in.Payment = "" },
	}

	for field, mutate := range drop {
		t.Run(field, func(t *testing.T) {
			in := validIndividual()
			mutate(&in)

			_, err := ParseIndividual(in)
			fields := fieldErrors(t, err)
			assert.Contains(t, fields, field)
		})
	}
}

func TestParseIndividual_CrossField(t *testing.T) {
	t.Run("dorm without bedding", func(t *testing.T) {
		in := validIndividual()
		in.Bedding = false
		_, err := ParseIndividual(in)
		assert.Contains(t, fieldErrors(t, err), "bedding")
	})

	t.Run("day pass without days", func(t *testing.T) {
		in := validIndividual()
		in.Accommodation = "dayPass"
		in.DayPass = []string{}
		_, err := ParseIndividual(in)
		assert.Contains(t, fieldErrors(t, err), "dayPass")
	})

	t.Run("venue without commitment", func(t *testing.T) {
		in := validIndividual()
		in.Payment = "venue"
		in.Commitment = false
		_, err := ParseIndividual(in)
		assert.Contains(t, fieldErrors(t, err), "commitment")
	})

	t.Run("venue with commitment", func(t *testing.T) {
		in := validIndividual()
		in.Payment = "venue"
		in.Commitment = true
		ind, err := ParseIndividual(in)
		require.NoError(t, err)
		assert.True(t, ind.Commitment)
	})
}

func TestParseIndividual_AllErrorsAtOnce(t *testing.T) {
	_, err := ParseIndividual(IndividualInput{Accommodation: "dorm", Payment: "venue"})
	fields := fieldErrors(t, err)

	for _, f := range []string{"name", "email", "phone", "church", "country", "emergencyName",
		"emergencyContact", "indemnity", "bedding", "commitment"} {
		assert.Contains(t, fields, f)
	}
	assert.NotContains(t, fields, "dayPass")
}

func TestParseIndividual_Formats(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*IndividualInput)
		field  string
	}{
		{"email without tld", func(in *IndividualInput) { in.Email = "thandi@example" }, "email"},
		{"email without at", func(in *IndividualInput) { in.Email = "thandi.example.com" }, "email"},
		{"phone with letters", func(in *IndividualInput) { in.Phone = "082abc4567" }, "phone"},
		{"phone too short", func(in *IndividualInput) { in.Phone = "082123" }, "phone"},
		{"phone too long", func(in *IndividualInput) { in.Phone = "0821234567890123" }, "phone"},
		{"phone with plus", func(in *IndividualInput) { in.Phone = "+27821234567" }, "phone"},
		{"unknown accommodation", func(in *IndividualInput) { in.Accommodation = "tent" }, "accommodation"},
		{"unknown payment", func(in *IndividualInput) { in.Payment = "paynow" }, "payment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validIndividual()
			tt.mutate(&in)
			_, err := ParseIndividual(in)
			fields := fieldErrors(t, err)
			assert.Contains(t, fields, tt.field)
			assert.Len(t, fields, 1)
		})
	}
}

func TestParseIndividual_Normalisation(t *testing.T) {
	in := validIndividual()
	in.Name = "  Thandi Nkosi  "
	in.Accommodation = "daypass"
	in.Bedding = true
	in.DayPass = []string{"day1", "day3", "day1", " "}

	ind, err := ParseIndividual(in)
	require.NoError(t, err)
	assert.Equal(t, "Thandi Nkosi", ind.Name)
	assert.Equal(t, AccommodationDayPass, ind.Accommodation)
	assert.Equal(t, []string{"day1", "day3"}, ind.DayPass)
	assert.False(t, ind.Bedding, "bedding belongs to the dorm branch and must be cleared")
}

func TestParseIndividual_DormClearsDayPass(t *testing.T) {
	in := validIndividual()
	in.DayPass = []string{"day2"}

	ind, err := ParseIndividual(in)
	require.NoError(t, err)
	assert.Empty(t, ind.DayPass)
}

func TestParseGroup_Valid(t *testing.T) {
	g, err := ParseGroup(validGroup(3))
	require.NoError(t, err)
	assert.Len(t, g.Members, 3)
	assert.Equal(t, GroupPaymentNow, g.Payment)
}

func TestParseGroup_NoMembers(t *testing.T) {
	_, err := ParseGroup(validGroup(0))
	assert.Contains(t, fieldErrors(t, err), "members")
}

func TestParseGroup_LeaderErrors(t *testing.T) {
	in := validGroup(1)
	in.Leader.Email = "not-an-email"
	in.Leader.Church = ""

	_, err := ParseGroup(in)
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "leader.email")
	assert.Contains(t, fields, "leader.church")
}

func TestParseGroup_MemberWithoutPhone(t *testing.T) {
	in := validGroup(5)
	in.Members[3].Phone = " "

	_, err := ParseGroup(in)
	fields := fieldErrors(t, err)
	assert.Equal(t, map[string]string{"members.3.phone": msgMemberPhone}, fields)
}

func TestParseGroup_AnyMemberWithoutPhoneFails(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		n := rapid.IntRange(1, 40).Draw(r, "members")
		missing := rapid.IntRange(0, n-1).Draw(r, "missing")

		in := validGroup(n)
		in.Members[missing].Phone = ""

		_, err := ParseGroup(in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			r.Fatalf("expected validation error, got %v", err)
		}
		key := fmt.Sprintf("members.%d.phone", missing)
		if _, ok := verr.Fields[key]; !ok {
			r.Fatalf("expected %s in %v", key, verr.Fields)
		}
	})
}

func TestParse_Idempotent(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		in := IndividualInput{
			Name:          rapid.StringMatching(`[ a-z]{0,6}`).Draw(r, "name"),
			Email:         rapid.SampledFrom([]string{"", "a@b.co", "bad"}).Draw(r, "email"),
			Phone:         rapid.StringMatching(`[0-9a]{0,16}`).Draw(r, "phone"),
			Indemnity:     rapid.Bool().Draw(r, "indemnity"),
			Accommodation: rapid.SampledFrom([]string{"", "dorm", "dayPass", "daypass", "x"}).Draw(r, "acc"),
			Bedding:       rapid.Bool().Draw(r, "bedding"),
			DayPass:       rapid.SliceOfN(rapid.SampledFrom([]string{"day1", "day2", "day3"}), 0, 4).Draw(r, "days"),
			Payment:       rapid.SampledFrom([]string{"", "now", "venue"}).Draw(r, "payment"),
			Commitment:    rapid.Bool().Draw(r, "commitment"),
		}

		first, err1 := ParseIndividual(in)
		second, err2 := ParseIndividual(in)
		if fmt.Sprint(err1) != fmt.Sprint(err2) {
			r.Fatalf("errors differ: %v vs %v", err1, err2)
		}
		if fmt.Sprintf("%+v", first) != fmt.Sprintf("%+v", second) {
			r.Fatalf("results differ: %+v vs %+v", first, second)
		}
	})
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"phone": "is required", "email": "is required"}}
	assert.Equal(t, "validation failed: email: is required; phone: is required", err.Error())
}
