package repository

import (
	"context"
	"errors"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	domainRepo "github.com/caiolopes/pdv-api/internal/domain/repository"
	"gorm.io/gorm"
)

type flavorRepository struct {
	db *gorm.DB
}

// NewFlavorRepository creates a new flavor repository
func NewFlavorRepository(db *gorm.DB) domainRepo.FlavorRepository {
	return &flavorRepository{db: db}
}

func (r *flavorRepository) ReplaceAll(ctx context.Context, flavors []entity.Flavor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Flavor{}).Error; err != nil {
			return err
		}
		if len(flavors) == 0 {
			return nil
		}
		return tx.Create(&flavors).Error
	})
}

func (r *flavorRepository) List(ctx context.Context) ([]entity.Flavor, error) {
	var flavors []entity.Flavor
	err := r.db.WithContext(ctx).Order("position ASC, name ASC").Find(&flavors).Error
	return flavors, err
}

func (r *flavorRepository) GetByName(ctx context.Context, name string) (*entity.Flavor, error) {
	var flavor entity.Flavor
	err := r.db.WithContext(ctx).First(&flavor, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &flavor, err
}

func (r *flavorRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Flavor{}).Error
}
