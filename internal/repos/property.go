package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/oakline/rental-backend/internal/domain"
	"github.com/oakline/rental-backend/internal/pkg/logger"
)

type PropertyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, property *domain.Property) (*domain.Property, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.Property, error)
	GetByID(ctx context.Context, tx *gorm.DB, propertyID int64) (*domain.Property, error)
	Update(ctx context.Context, tx *gorm.DB, property *domain.Property) (*domain.Property, error)
	Exists(ctx context.Context, tx *gorm.DB, propertyID int64) (bool, error)
}

type propertyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPropertyRepo(db *gorm.DB, baseLog *logger.Logger) PropertyRepo {
	repoLog := baseLog.With("repo", "PropertyRepo")
	return &propertyRepo{db: db, log: repoLog}
}

func (pr *propertyRepo) Create(ctx context.Context, tx *gorm.DB, property *domain.Property) (*domain.Property, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(property).Error; err != nil {
		return nil, err
	}
	return property, nil
}

func (pr *propertyRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.Property, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*domain.Property
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *propertyRepo) GetByID(ctx context.Context, tx *gorm.DB, propertyID int64) (*domain.Property, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result domain.Property
	if err := transaction.WithContext(ctx).
		Where("id = ?", propertyID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *propertyRepo) Update(ctx context.Context, tx *gorm.DB, property *domain.Property) (*domain.Property, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Save(property).Error; err != nil {
		return nil, err
	}
	return property, nil
}

func (pr *propertyRepo) Exists(ctx context.Context, tx *gorm.DB, propertyID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Property{}).
		Where("id = ?", propertyID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
