package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/oakline/rental-backend/internal/domain"
	"github.com/oakline/rental-backend/internal/pkg/apierr"
	"github.com/oakline/rental-backend/internal/pkg/logger"
	"github.com/oakline/rental-backend/internal/repos"
)

type PropertyManagerService interface {
	Create(ctx context.Context, name string) (*domain.PropertyManager, error)
	List(ctx context.Context) ([]*domain.PropertyManager, error)
	Update(ctx context.Context, managerID int64, name *string) (*domain.PropertyManager, error)
}

type propertyManagerService struct {
	db          *gorm.DB
	log         *logger.Logger
	managerRepo repos.PropertyManagerRepo
}

func NewPropertyManagerService(db *gorm.DB, log *logger.Logger, managerRepo repos.PropertyManagerRepo) PropertyManagerService {
	serviceLog := log.With("service", "PropertyManagerService")
	return &propertyManagerService{db: db, log: serviceLog, managerRepo: managerRepo}
}

func (ps *propertyManagerService) Create(ctx context.Context, name string) (*domain.PropertyManager, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apierr.Validation(fmt.Errorf("please send a name"))
	}
	created, err := ps.managerRepo.Create(ctx, nil, &domain.PropertyManager{Name: name})
	if err != nil {
		ps.log.Error("Failed to create property manager", "error", err)
		return nil, apierr.Store(err)
	}
	return created, nil
}

func (ps *propertyManagerService) List(ctx context.Context) ([]*domain.PropertyManager, error) {
	managers, err := ps.managerRepo.List(ctx, nil)
	if err != nil {
		ps.log.Error("Failed to list property managers", "error", err)
		return nil, apierr.Store(err)
	}
	return managers, nil
}

func (ps *propertyManagerService) Update(ctx context.Context, managerID int64, name *string) (*domain.PropertyManager, error) {
	manager, err := ps.managerRepo.GetByID(ctx, nil, managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("property manager")
		}
		ps.log.Error("Failed to fetch property manager", "error", err)
		return nil, apierr.Store(err)
	}
	if name == nil || strings.TrimSpace(*name) == "" {
		return nil, apierr.Validation(fmt.Errorf("please send a valid name"))
	}
	manager.Name = *name
	updated, err := ps.managerRepo.Update(ctx, nil, manager)
	if err != nil {
		ps.log.Error("Failed to update property manager", "error", err)
		return nil, apierr.Store(err)
	}
	return updated, nil
}
