package service

import (
	"context"
	"fmt"
	"log"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	"github.com/caiolopes/pdv-api/internal/domain/repository"
	"github.com/caiolopes/pdv-api/internal/infrastructure/backup"
	"github.com/caiolopes/pdv-api/pkg/apperror"
)

// ConfigService handles event configuration and system reset
type ConfigService struct {
	configRepo repository.ConfigRepository
	flavorRepo repository.FlavorRepository
	saleRepo   repository.SaleRepository
	vipRepo    repository.VIPRepository
	carts      *CartStore
	backup     backup.Writer
}

// NewConfigService creates a new config service
func NewConfigService(
	configRepo repository.ConfigRepository,
	flavorRepo repository.FlavorRepository,
	saleRepo repository.SaleRepository,
	vipRepo repository.VIPRepository,
	carts *CartStore,
	backupWriter backup.Writer,
) *ConfigService {
	return &ConfigService{
		configRepo: configRepo,
		flavorRepo: flavorRepo,
		saleRepo:   saleRepo,
		vipRepo:    vipRepo,
		carts:      carts,
		backup:     backupWriter,
	}
}

// FlavorInput represents one catalog item in the configure input
type FlavorInput struct {
	Name     string
	Price    float64
	Seasonal bool
}

// ConfigureInput represents the configure event input
type ConfigureInput struct {
	StandName    string
	InitialFloat float64
	Flavors      []FlavorInput
}

// Configure replaces the active catalog and initial cash float. Re-calling it
// is an explicit event reconfiguration; historical sales keep their own price
// snapshots and are untouched.
func (s *ConfigService) Configure(ctx context.Context, input *ConfigureInput) (*entity.EventConfig, error) {
	if input.InitialFloat < 0 {
		return nil, apperror.NewBadRequestError("Initial cash float cannot be negative")
	}
	if len(input.Flavors) == 0 {
		return nil, apperror.NewBadRequestError("At least one flavor is required")
	}

	seen := make(map[string]bool, len(input.Flavors))
	flavors := make([]entity.Flavor, 0, len(input.Flavors))
	for i, in := range input.Flavors {
		if in.Name == "" {
			return nil, apperror.NewBadRequestError("Flavor name cannot be empty")
		}
		if seen[in.Name] {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Duplicate flavor %q", in.Name))
		}
		if in.Price < 0 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Price for %q cannot be negative", in.Name))
		}
		seen[in.Name] = true

		flavor := entity.Flavor{Name: in.Name, Seasonal: in.Seasonal, Position: i}
		flavor.SetPriceFromDecimal(in.Price)
		flavors = append(flavors, flavor)
	}

	if err := s.flavorRepo.ReplaceAll(ctx, flavors); err != nil {
		return nil, err
	}

	cfg := &entity.EventConfig{
		StandName:    input.StandName,
		InitialFloat: int64(input.InitialFloat*100 + 0.5),
		Configured:   true,
	}
	if err := s.configRepo.Save(ctx, cfg); err != nil {
		return nil, err
	}

	log.Printf("Event configured: %d flavors, initial float %.2f", len(flavors), input.InitialFloat)
	return cfg, nil
}

// GetConfig returns the current event configuration.
func (s *ConfigService) GetConfig(ctx context.Context) (*entity.EventConfig, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return &entity.EventConfig{}, nil
	}
	return cfg, nil
}

// GetCatalog returns the ordered active catalog.
func (s *ConfigService) GetCatalog(ctx context.Context) ([]entity.Flavor, error) {
	return s.flavorRepo.List(ctx)
}

// Reset clears all persisted state for a new event: ledger, VIP registry,
// catalog, configuration, carts and CSV backups.
func (s *ConfigService) Reset(ctx context.Context) error {
	if err := s.saleRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.vipRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.flavorRepo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.configRepo.Save(ctx, &entity.EventConfig{}); err != nil {
		return err
	}
	s.carts.Reset()

	if err := s.backup.Clean(); err != nil {
		return err
	}

	log.Println("System reset: ledger, VIP registry and catalog cleared")
	return nil
}
