// Package sqlstore implements store.Store with sqlx and squirrel over the
// tables migrated by the database package.
package sqlstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	"github.com/reach-summit/summit-api/internal/config"
	"github.com/reach-summit/summit-api/internal/models"
	"github.com/reach-summit/summit-api/internal/registration"
)

const (
	individualTable = "individual_registrations"
	groupTable      = "group_registrations"
)

var (
	individualColumns = []string{
		"id", "name", "email", "phone", "church", "country", "emergency_name", "emergency_contact",
		"indemnity", "accommodation", "bedding", "day_pass", "payment", "commitment", "created_at",
	}
	groupColumns = []string{
		"id", "leader_name", "leader_email", "leader_phone", "leader_church", "leader_country",
		"members", "accommodation", "payment", "raw_total", "discount", "total", "created_at",
	}
)

type Store struct {
	db   *sqlx.DB
	stmt sq.StatementBuilderType
}

// Open connects with the database/sql driver matching the configured driver name.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	sqlDriver := "sqlite3"
	if driver == config.DriverPostgres {
		sqlDriver = "postgres"
	}
	db, err := sqlx.ConnectContext(ctx, sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlx connect %s: %w", sqlDriver, err)
	}
	return New(db), nil
}

func New(db *sqlx.DB) *Store {
	var placeholder sq.PlaceholderFormat = sq.Question
	if db.DriverName() == "postgres" {
		placeholder = sq.Dollar
	}
	return &Store{
		db:   db,
		stmt: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) InsertIndividual(ctx context.Context, rec registration.IndividualRecord) error {
	row := models.NewIndividualRegistration(rec)
	query, args, err := s.stmt.Insert(individualTable).
		Columns(individualColumns...).
		Values(row.ID, row.Name, row.Email, row.Phone, row.Church, row.Country, row.EmergencyName,
			row.EmergencyContact, row.Indemnity, row.Accommodation, row.Bedding, row.DayPass,
			row.Payment, row.Commitment, row.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build individual insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert individual registration: %w", err)
	}
	return nil
}

func (s *Store) InsertGroup(ctx context.Context, rec registration.GroupRecord) error {
	row := models.NewGroupRegistration(rec)
	query, args, err := s.stmt.Insert(groupTable).
		Columns(groupColumns...).
		Values(row.ID, row.LeaderName, row.LeaderEmail, row.LeaderPhone, row.LeaderChurch, row.LeaderCountry,
			row.Members, row.Accommodation, row.Payment, row.RawTotal, row.Discount, row.Total, row.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build group insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert group registration: %w", err)
	}
	return nil
}

func (s *Store) ListIndividuals(ctx context.Context) ([]registration.IndividualRecord, error) {
	query, args, err := s.stmt.Select(individualColumns...).
		From(individualTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build individual select: %w", err)
	}

	var rows []models.IndividualRegistration
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list individual registrations: %w", err)
	}

	out := make([]registration.IndividualRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Record())
	}
	return out, nil
}

func (s *Store) ListGroups(ctx context.Context) ([]registration.GroupRecord, error) {
	query, args, err := s.stmt.Select(groupColumns...).
		From(groupTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build group select: %w", err)
	}

	var rows []models.GroupRegistration
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list group registrations: %w", err)
	}

	out := make([]registration.GroupRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Record())
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
