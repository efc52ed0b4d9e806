package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/oakline/rental-backend/internal/domain"
	"github.com/oakline/rental-backend/internal/pkg/logger"
)

type PaymentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, payment *domain.Payment) (*domain.Payment, error)
	ListByTenant(ctx context.Context, tx *gorm.DB, tenantID int64) ([]*domain.Payment, error)
}

type paymentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPaymentRepo(db *gorm.DB, baseLog *logger.Logger) PaymentRepo {
	repoLog := baseLog.With("repo", "PaymentRepo")
	return &paymentRepo{db: db, log: repoLog}
}

func (pr *paymentRepo) Create(ctx context.Context, tx *gorm.DB, payment *domain.Payment) (*domain.Payment, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (pr *paymentRepo) ListByTenant(ctx context.Context, tx *gorm.DB, tenantID int64) ([]*domain.Payment, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*domain.Payment
	if err := transaction.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
