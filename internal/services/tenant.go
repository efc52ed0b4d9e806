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

type CreateTenantInput struct {
	FirstName   string
	LastName    string
	Dob         string
	SSN         string
	IsPrimary   *bool
	ApartmentID int64
}

type UpdateTenantInput struct {
	FirstName   *string
	LastName    *string
	Dob         *string
	SSN         *string
	IsPrimary   *bool
	ApartmentID *int64
}

type TenantService interface {
	Create(ctx context.Context, in CreateTenantInput) (*domain.Tenant, error)
	List(ctx context.Context) ([]*domain.Tenant, error)
	GetByID(ctx context.Context, tenantID int64) (*domain.Tenant, error)
	Update(ctx context.Context, tenantID int64, in UpdateTenantInput) (*domain.Tenant, error)
}

type tenantService struct {
	db            *gorm.DB
	log           *logger.Logger
	tenantRepo    repos.TenantRepo
	apartmentRepo repos.ApartmentRepo
}

func NewTenantService(db *gorm.DB, log *logger.Logger, tenantRepo repos.TenantRepo, apartmentRepo repos.ApartmentRepo) TenantService {
	serviceLog := log.With("service", "TenantService")
	return &tenantService{db: db, log: serviceLog, tenantRepo: tenantRepo, apartmentRepo: apartmentRepo}
}

func (ts *tenantService) Create(ctx context.Context, in CreateTenantInput) (*domain.Tenant, error) {
	missing := strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.Dob) == "" ||
		strings.TrimSpace(in.SSN) == "" ||
		in.IsPrimary == nil ||
		in.ApartmentID == 0
	if missing {
		return nil, apierr.Validation(fmt.Errorf("please send all required parameters"))
	}
	exists, err := ts.apartmentRepo.Exists(ctx, nil, in.ApartmentID)
	if err != nil {
		ts.log.Error("Failed to check apartment existence", "error", err)
		return nil, apierr.Store(err)
	}
	if !exists {
		return nil, apierr.NotFound("apartment")
	}
	created, err := ts.tenantRepo.Create(ctx, nil, &domain.Tenant{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Dob:         in.Dob,
		SSN:         in.SSN,
		IsPrimary:   *in.IsPrimary,
		ApartmentID: in.ApartmentID,
	})
	if err != nil {
		ts.log.Error("Failed to create tenant", "error", err)
		return nil, apierr.Store(err)
	}
	return created, nil
}

func (ts *tenantService) List(ctx context.Context) ([]*domain.Tenant, error) {
	tenants, err := ts.tenantRepo.List(ctx, nil)
	if err != nil {
		ts.log.Error("Failed to list tenants", "error", err)
		return nil, apierr.Store(err)
	}
	return tenants, nil
}

func (ts *tenantService) GetByID(ctx context.Context, tenantID int64) (*domain.Tenant, error) {
	tenant, err := ts.tenantRepo.GetByID(ctx, nil, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("tenant")
		}
		ts.log.Error("Failed to fetch tenant", "error", err)
		return nil, apierr.Store(err)
	}
	return tenant, nil
}

func (ts *tenantService) Update(ctx context.Context, tenantID int64, in UpdateTenantInput) (*domain.Tenant, error) {
	tenant, err := ts.tenantRepo.GetByID(ctx, nil, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("tenant")
		}
		ts.log.Error("Failed to fetch tenant", "error", err)
		return nil, apierr.Store(err)
	}
	if in.FirstName != nil {
		if strings.TrimSpace(*in.FirstName) == "" {
			return nil, apierr.Validation(fmt.Errorf("firstName must not be empty"))
		}
		tenant.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		if strings.TrimSpace(*in.LastName) == "" {
			return nil, apierr.Validation(fmt.Errorf("lastName must not be empty"))
		}
		tenant.LastName = *in.LastName
	}
	if in.Dob != nil {
		if strings.TrimSpace(*in.Dob) == "" {
			return nil, apierr.Validation(fmt.Errorf("dob must not be empty"))
		}
		tenant.Dob = *in.Dob
	}
	if in.SSN != nil {
		if strings.TrimSpace(*in.SSN) == "" {
			return nil, apierr.Validation(fmt.Errorf("ssn must not be empty"))
		}
		tenant.SSN = *in.SSN
	}
	if in.IsPrimary != nil {
		tenant.IsPrimary = *in.IsPrimary
	}
	if in.ApartmentID != nil {
		exists, err := ts.apartmentRepo.Exists(ctx, nil, *in.ApartmentID)
		if err != nil {
			ts.log.Error("Failed to check apartment existence", "error", err)
			return nil, apierr.Store(err)
		}
		if !exists {
			return nil, apierr.NotFound("apartment")
		}
		tenant.ApartmentID = *in.ApartmentID
	}
	updated, err := ts.tenantRepo.Update(ctx, nil, tenant)
	if err != nil {
		ts.log.Error("Failed to update tenant", "error", err)
		return nil, apierr.Store(err)
	}
	return updated, nil
}
