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

type CreateApartmentInput struct {
	PropertyID int64
	UnitNumber string
}

type UpdateApartmentInput struct {
	PropertyID *int64
	UnitNumber *string
}

type ApartmentService interface {
	Create(ctx context.Context, in CreateApartmentInput) (*domain.Apartment, error)
	List(ctx context.Context) ([]*domain.Apartment, error)
	GetByID(ctx context.Context, apartmentID int64) (*domain.Apartment, error)
	Update(ctx context.Context, apartmentID int64, in UpdateApartmentInput) (*domain.Apartment, error)
}

type apartmentService struct {
	db            *gorm.DB
	log           *logger.Logger
	apartmentRepo repos.ApartmentRepo
	propertyRepo  repos.PropertyRepo
}

func NewApartmentService(db *gorm.DB, log *logger.Logger, apartmentRepo repos.ApartmentRepo, propertyRepo repos.PropertyRepo) ApartmentService {
	serviceLog := log.With("service", "ApartmentService")
	return &apartmentService{db: db, log: serviceLog, apartmentRepo: apartmentRepo, propertyRepo: propertyRepo}
}

func (as *apartmentService) Create(ctx context.Context, in CreateApartmentInput) (*domain.Apartment, error) {
	if in.PropertyID == 0 || strings.TrimSpace(in.UnitNumber) == "" {
		return nil, apierr.Validation(fmt.Errorf("please send all required parameters"))
	}
	exists, err := as.propertyRepo.Exists(ctx, nil, in.PropertyID)
	if err != nil {
		as.log.Error("Failed to check property existence", "error", err)
		return nil, apierr.Store(err)
	}
	if !exists {
		return nil, apierr.NotFound("property")
	}
	created, err := as.apartmentRepo.Create(ctx, nil, &domain.Apartment{
		PropertyID: in.PropertyID,
		UnitNumber: in.UnitNumber,
	})
	if err != nil {
		as.log.Error("Failed to create apartment", "error", err)
		return nil, apierr.Store(err)
	}
	return created, nil
}

func (as *apartmentService) List(ctx context.Context) ([]*domain.Apartment, error) {
	apartments, err := as.apartmentRepo.List(ctx, nil)
	if err != nil {
		as.log.Error("Failed to list apartments", "error", err)
		return nil, apierr.Store(err)
	}
	return apartments, nil
}

func (as *apartmentService) GetByID(ctx context.Context, apartmentID int64) (*domain.Apartment, error) {
	apartment, err := as.apartmentRepo.GetByID(ctx, nil, apartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("apartment")
		}
		as.log.Error("Failed to fetch apartment", "error", err)
		return nil, apierr.Store(err)
	}
	return apartment, nil
}

func (as *apartmentService) Update(ctx context.Context, apartmentID int64, in UpdateApartmentInput) (*domain.Apartment, error) {
	apartment, err := as.apartmentRepo.GetByID(ctx, nil, apartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("apartment")
		}
		as.log.Error("Failed to fetch apartment", "error", err)
		return nil, apierr.Store(err)
	}
	if in.UnitNumber != nil {
		if strings.TrimSpace(*in.UnitNumber) == "" {
			return nil, apierr.Validation(fmt.Errorf("unitNumber must not be empty"))
		}
		apartment.UnitNumber = *in.UnitNumber
	}
	if in.PropertyID != nil {
		exists, err := as.propertyRepo.Exists(ctx, nil, *in.PropertyID)
		if err != nil {
			as.log.Error("Failed to check property existence", "error", err)
			return nil, apierr.Store(err)
		}
		if !exists {
			return nil, apierr.NotFound("property")
		}
		apartment.PropertyID = *in.PropertyID
	}
	updated, err := as.apartmentRepo.Update(ctx, nil, apartment)
	if err != nil {
		as.log.Error("Failed to update apartment", "error", err)
		return nil, apierr.Store(err)
	}
	return updated, nil
}
