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

type CreatePropertyInput struct {
	Address           string
	Name              string
	PropertyManagerID int64
}

// UpdatePropertyInput uses pointer fields so an omitted field (nil) is
// distinguishable from an explicitly supplied zero value.
type UpdatePropertyInput struct {
	Address           *string
	Name              *string
	PropertyManagerID *int64
}

type PropertyService interface {
	Create(ctx context.Context, in CreatePropertyInput) (*domain.Property, error)
	List(ctx context.Context) ([]*domain.Property, error)
	GetByID(ctx context.Context, propertyID int64) (*domain.Property, error)
	Update(ctx context.Context, propertyID int64, in UpdatePropertyInput) (*domain.Property, error)
}

type propertyService struct {
	db           *gorm.DB
	log          *logger.Logger
	propertyRepo repos.PropertyRepo
	managerRepo  repos.PropertyManagerRepo
}

func NewPropertyService(db *gorm.DB, log *logger.Logger, propertyRepo repos.PropertyRepo, managerRepo repos.PropertyManagerRepo) PropertyService {
	serviceLog := log.With("service", "PropertyService")
	return &propertyService{db: db, log: serviceLog, propertyRepo: propertyRepo, managerRepo: managerRepo}
}

func (ps *propertyService) Create(ctx context.Context, in CreatePropertyInput) (*domain.Property, error) {
	if strings.TrimSpace(in.Address) == "" || strings.TrimSpace(in.Name) == "" || in.PropertyManagerID == 0 {
		return nil, apierr.Validation(fmt.Errorf("please send all required parameters"))
	}
	exists, err := ps.managerRepo.Exists(ctx, nil, in.PropertyManagerID)
	if err != nil {
		ps.log.Error("Failed to check property manager existence", "error", err)
		return nil, apierr.Store(err)
	}
	if !exists {
		return nil, apierr.NotFound("property manager")
	}
	created, err := ps.propertyRepo.Create(ctx, nil, &domain.Property{
		PropertyManagerID: in.PropertyManagerID,
		Address:           in.Address,
		Name:              in.Name,
	})
	if err != nil {
		ps.log.Error("Failed to create property", "error", err)
		return nil, apierr.Store(err)
	}
	return created, nil
}

func (ps *propertyService) List(ctx context.Context) ([]*domain.Property, error) {
	properties, err := ps.propertyRepo.List(ctx, nil)
	if err != nil {
		ps.log.Error("Failed to list properties", "error", err)
		return nil, apierr.Store(err)
	}
	return properties, nil
}

func (ps *propertyService) GetByID(ctx context.Context, propertyID int64) (*domain.Property, error) {
	property, err := ps.propertyRepo.GetByID(ctx, nil, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("property")
		}
		ps.log.Error("Failed to fetch property", "error", err)
		return nil, apierr.Store(err)
	}
	return property, nil
}

func (ps *propertyService) Update(ctx context.Context, propertyID int64, in UpdatePropertyInput) (*domain.Property, error) {
	property, err := ps.propertyRepo.GetByID(ctx, nil, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("property")
		}
		ps.log.Error("Failed to fetch property", "error", err)
		return nil, apierr.Store(err)
	}
	if in.Address != nil {
		if strings.TrimSpace(*in.Address) == "" {
			return nil, apierr.Validation(fmt.Errorf("address must not be empty"))
		}
		property.Address = *in.Address
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, apierr.Validation(fmt.Errorf("name must not be empty"))
		}
		property.Name = *in.Name
	}
	if in.PropertyManagerID != nil {
		exists, err := ps.managerRepo.Exists(ctx, nil, *in.PropertyManagerID)
		if err != nil {
			ps.log.Error("Failed to check property manager existence", "error", err)
			return nil, apierr.Store(err)
		}
		if !exists {
			return nil, apierr.NotFound("property manager")
		}
		property.PropertyManagerID = *in.PropertyManagerID
	}
	updated, err := ps.propertyRepo.Update(ctx, nil, property)
	if err != nil {
		ps.log.Error("Failed to update property", "error", err)
		return nil, apierr.Store(err)
	}
	return updated, nil
}
