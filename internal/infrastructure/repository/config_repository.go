package repository

import (
	"context"
	"errors"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	domainRepo "github.com/caiolopes/pdv-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type configRepository struct {
	db *gorm.DB
}

// NewConfigRepository creates a new event config repository
func NewConfigRepository(db *gorm.DB) domainRepo.ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) Get(ctx context.Context) (*entity.EventConfig, error) {
	var cfg entity.EventConfig
	err := r.db.WithContext(ctx).First(&cfg, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cfg, err
}

func (r *configRepository) Save(ctx context.Context, cfg *entity.EventConfig) error {
	cfg.ID = 1
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(cfg).Error
}
