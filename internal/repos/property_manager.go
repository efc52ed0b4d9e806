package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/oakline/rental-backend/internal/domain"
	"github.com/oakline/rental-backend/internal/pkg/logger"
)

type PropertyManagerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, manager *domain.PropertyManager) (*domain.PropertyManager, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.PropertyManager, error)
	GetByID(ctx context.Context, tx *gorm.DB, managerID int64) (*domain.PropertyManager, error)
	Update(ctx context.Context, tx *gorm.DB, manager *domain.PropertyManager) (*domain.PropertyManager, error)
	Exists(ctx context.Context, tx *gorm.DB, managerID int64) (bool, error)
}

type propertyManagerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPropertyManagerRepo(db *gorm.DB, baseLog *logger.Logger) PropertyManagerRepo {
	repoLog := baseLog.With("repo", "PropertyManagerRepo")
	return &propertyManagerRepo{db: db, log: repoLog}
}

func (pr *propertyManagerRepo) Create(ctx context.Context, tx *gorm.DB, manager *domain.PropertyManager) (*domain.PropertyManager, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(manager).Error; err != nil {
		return nil, err
	}
	return manager, nil
}

func (pr *propertyManagerRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.PropertyManager, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*domain.PropertyManager
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *propertyManagerRepo) GetByID(ctx context.Context, tx *gorm.DB, managerID int64) (*domain.PropertyManager, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result domain.PropertyManager
	if err := transaction.WithContext(ctx).
		Where("id = ?", managerID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *propertyManagerRepo) Update(ctx context.Context, tx *gorm.DB, manager *domain.PropertyManager) (*domain.PropertyManager, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Save(manager).Error; err != nil {
		return nil, err
	}
	return manager, nil
}

func (pr *propertyManagerRepo) Exists(ctx context.Context, tx *gorm.DB, managerID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.PropertyManager{}).
		Where("id = ?", managerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
