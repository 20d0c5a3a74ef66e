// Package gormstore implements store.Store on top of gorm.
package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/reach-summit/summit-api/internal/models"
	"github.com/reach-summit/summit-api/internal/registration"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertIndividual(ctx context.Context, rec registration.IndividualRecord) error {
	row := models.NewIndividualRegistration(rec)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert individual registration: %w", err)
	}
	return nil
}

func (s *Store) InsertGroup(ctx context.Context, rec registration.GroupRecord) error {
	row := models.NewGroupRegistration(rec)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert group registration: %w", err)
	}
	return nil
}

func (s *Store) ListIndividuals(ctx context.Context) ([]registration.IndividualRecord, error) {
	var rows []models.IndividualRegistration
	if err := s.db.WithContext(ctx).Order("created_at desc, id desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list individual registrations: %w", err)
	}

	out := make([]registration.IndividualRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Record())
	}
	return out, nil
}

func (s *Store) ListGroups(ctx context.Context) ([]registration.GroupRecord, error) {
	var rows []models.GroupRegistration
	if err := s.db.WithContext(ctx).Order("created_at desc, id desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list group registrations: %w", err)
	}

	out := make([]registration.GroupRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Record())
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
