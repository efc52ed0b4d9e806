package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/oakline/rental-backend/internal/domain"
	"github.com/oakline/rental-backend/internal/pkg/logger"
)

type TenantRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tenant *domain.Tenant) (*domain.Tenant, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.Tenant, error)
	GetByID(ctx context.Context, tx *gorm.DB, tenantID int64) (*domain.Tenant, error)
	Update(ctx context.Context, tx *gorm.DB, tenant *domain.Tenant) (*domain.Tenant, error)
	Exists(ctx context.Context, tx *gorm.DB, tenantID int64) (bool, error)
}

type tenantRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTenantRepo(db *gorm.DB, baseLog *logger.Logger) TenantRepo {
	repoLog := baseLog.With("repo", "TenantRepo")
	return &tenantRepo{db: db, log: repoLog}
}

func (tr *tenantRepo) Create(ctx context.Context, tx *gorm.DB, tenant *domain.Tenant) (*domain.Tenant, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

func (tr *tenantRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.Tenant, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []*domain.Tenant
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *tenantRepo) GetByID(ctx context.Context, tx *gorm.DB, tenantID int64) (*domain.Tenant, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var result domain.Tenant
	if err := transaction.WithContext(ctx).
		Where("id = ?", tenantID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (tr *tenantRepo) Update(ctx context.Context, tx *gorm.DB, tenant *domain.Tenant) (*domain.Tenant, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).Save(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

func (tr *tenantRepo) Exists(ctx context.Context, tx *gorm.DB, tenantID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Tenant{}).
		Where("id = ?", tenantID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
