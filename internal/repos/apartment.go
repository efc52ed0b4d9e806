package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/oakline/rental-backend/internal/domain"
	"github.com/oakline/rental-backend/internal/pkg/logger"
)

type ApartmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, apartment *domain.Apartment) (*domain.Apartment, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.Apartment, error)
	GetByID(ctx context.Context, tx *gorm.DB, apartmentID int64) (*domain.Apartment, error)
	Update(ctx context.Context, tx *gorm.DB, apartment *domain.Apartment) (*domain.Apartment, error)
	Exists(ctx context.Context, tx *gorm.DB, apartmentID int64) (bool, error)
}

type apartmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewApartmentRepo(db *gorm.DB, baseLog *logger.Logger) ApartmentRepo {
	repoLog := baseLog.With("repo", "ApartmentRepo")
	return &apartmentRepo{db: db, log: repoLog}
}

func (ar *apartmentRepo) Create(ctx context.Context, tx *gorm.DB, apartment *domain.Apartment) (*domain.Apartment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if err := transaction.WithContext(ctx).Create(apartment).Error; err != nil {
		return nil, err
	}
	return apartment, nil
}

func (ar *apartmentRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.Apartment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var results []*domain.Apartment
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *apartmentRepo) GetByID(ctx context.Context, tx *gorm.DB, apartmentID int64) (*domain.Apartment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var result domain.Apartment
	if err := transaction.WithContext(ctx).
		Where("id = ?", apartmentID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ar *apartmentRepo) Update(ctx context.Context, tx *gorm.DB, apartment *domain.Apartment) (*domain.Apartment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if err := transaction.WithContext(ctx).Save(apartment).Error; err != nil {
		return nil, err
	}
	return apartment, nil
}

func (ar *apartmentRepo) Exists(ctx context.Context, tx *gorm.DB, apartmentID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Apartment{}).
		Where("id = ?", apartmentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
