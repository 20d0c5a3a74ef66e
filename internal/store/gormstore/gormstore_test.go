package gormstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/reach-summit/summit-api/internal/database"
	"github.com/reach-summit/summit-api/internal/pricing"
	"github.com/reach-summit/summit-api/internal/registration"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every new connection would get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func individual(id string, at time.Time) registration.IndividualRecord {
	return registration.IndividualRecord{
		ID:        id,
		CreatedAt: at,
		Individual: registration.Individual{
			Name:             "Lerato " + id,
			Email:            id + "@example.com",
			Phone:            "0831112222",
			Church:           "Grace",
			Country:          "Lesotho",
			EmergencyName:    "Mpho",
			EmergencyContact: "0833334444",
			Indemnity:        true,
			Accommodation:    registration.AccommodationDayPass,
			DayPass:          []string{"day1", "day2"},
			Payment:          registration.PaymentVenue,
			Commitment:       true,
		},
	}
}

func TestStore_Individuals(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.InsertIndividual(ctx, individual("a", base)))
	require.NoError(t, s.InsertIndividual(ctx, individual("c", base.Add(2*time.Minute))))
	require.NoError(t, s.InsertIndividual(ctx, individual("b", base.Add(time.Minute))))

	got, err := s.ListIndividuals(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []string{"c", "b", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, []string{"day1", "day2"}, got[0].DayPass)
	assert.Equal(t, registration.AccommodationDayPass, got[0].Accommodation)
	assert.True(t, got[0].CreatedAt.Equal(base.Add(2*time.Minute)))
}

func TestStore_Groups(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	rec := registration.GroupRecord{
		ID:        "g1",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Group: registration.Group{
			Leader: registration.Profile{Name: "Leader", Email: "l@example.com", Phone: "0711111111", Church: "Hope", Country: "Namibia"},
			Members: []registration.Member{
				{Name: "One", Gender: "male", Email: "one@example.com", Phone: "0712222222"},
				{Name: "Two", Email: "two@example.com", Phone: "0713333333"},
			},
			Accommodation: registration.AccommodationDorm,
			Payment:       registration.GroupPaymentVenue,
		},
		RawTotal: pricing.Rands(2600),
		Discount: 0,
		Total:    pricing.Rands(2600),
	}
	require.NoError(t, s.InsertGroup(ctx, rec))

	got, err := s.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, rec.Leader, got[0].Leader)
	assert.Equal(t, rec.Members, got[0].Members)
	assert.Equal(t, rec.Total, got[0].Total)
	assert.Equal(t, registration.GroupPaymentVenue, got[0].Payment)
}

func TestStore_EmptyLists(t *testing.T) {
	s := New(newTestDB(t))

	individuals, err := s.ListIndividuals(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, individuals)
	assert.Empty(t, individuals)

	groups, err := s.ListGroups(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestStore_ClosedDatabase(t *testing.T) {
	db := newTestDB(t)
	s := New(db)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.Error(t, s.InsertIndividual(context.Background(), individual("x", time.Now().UTC())))
	_, err = s.ListGroups(context.Background())
	assert.Error(t, err)
	assert.Error(t, s.Ping(context.Background()))
}
