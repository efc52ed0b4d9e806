package services

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/oakline/rental-backend/internal/domain"
	"github.com/oakline/rental-backend/internal/pkg/apierr"
	"github.com/oakline/rental-backend/internal/pkg/logger"
	"github.com/oakline/rental-backend/internal/repos"
)

const monthLayout = "2006-01"

// MonthlyPayment is one year-month bucket of a tenant's payment
// history: the summed amount and the latest payment date in that month.
type MonthlyPayment struct {
	Month  string    `json:"month"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

type PaymentService interface {
	RecordPayment(ctx context.Context, tenantID int64, amount any, date any) (*domain.Payment, error)
	GetPaymentHistory(ctx context.Context, tenantID int64) ([]MonthlyPayment, error)
}

type paymentService struct {
	db          *gorm.DB
	log         *logger.Logger
	paymentRepo repos.PaymentRepo
	tenantRepo  repos.TenantRepo
	now         func() time.Time
}

func NewPaymentService(db *gorm.DB, log *logger.Logger, paymentRepo repos.PaymentRepo, tenantRepo repos.TenantRepo) PaymentService {
	serviceLog := log.With("service", "PaymentService")
	return &paymentService{
		db:          db,
		log:         serviceLog,
		paymentRepo: paymentRepo,
		tenantRepo:  tenantRepo,
		now:         time.Now,
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Plain decimal only. ParseFloat alone would also take "NaN", "Inf"
// and hex floats, and a NaN amount cannot be stored or summed.
var numericPattern = regexp.MustCompile(`^[+-]?([0-9]*[.])?[0-9]+$`)

// anyAmount accepts a JSON number or a decimal string.
func anyAmount(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, !math.IsNaN(t) && !math.IsInf(t, 0)
	case float32:
		f := float64(t)
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if !numericPattern.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func anyDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (ps *paymentService) RecordPayment(ctx context.Context, tenantID int64, amount any, date any) (*domain.Payment, error) {
	var fields []apierr.FieldError

	parsedAmount, ok := anyAmount(amount)
	if !ok {
		fields = append(fields, apierr.FieldError{Param: "amount", Msg: "Amount must be a number"})
	}
	parsedDate, ok := anyDate(date)
	if !ok {
		fields = append(fields, apierr.FieldError{Param: "date", Msg: "Invalid date format"})
	} else if !parsedDate.Before(ps.now()) {
		fields = append(fields, apierr.FieldError{Param: "date", Msg: "Date must be in the past"})
	}
	if len(fields) > 0 {
		return nil, apierr.Unprocessable(fields)
	}

	exists, err := ps.tenantRepo.Exists(ctx, nil, tenantID)
	if err != nil {
		ps.log.Error("Failed to check tenant existence", "error", err)
		return nil, apierr.Store(err)
	}
	if !exists {
		return nil, apierr.NotFound("tenant")
	}

	created, err := ps.paymentRepo.Create(ctx, nil, &domain.Payment{
		TenantID: tenantID,
		Amount:   parsedAmount,
		Date:     parsedDate,
	})
	if err != nil {
		ps.log.Error("Failed to create payment", "error", err)
		return nil, apierr.Store(err)
	}
	return created, nil
}

func (ps *paymentService) GetPaymentHistory(ctx context.Context, tenantID int64) ([]MonthlyPayment, error) {
	payments, err := ps.paymentRepo.ListByTenant(ctx, nil, tenantID)
	if err != nil {
		ps.log.Error("Failed to list payments", "error", err)
		return nil, apierr.Store(err)
	}

	buckets := make(map[string]*MonthlyPayment)
	for _, payment := range payments {
		month := payment.Date.Format(monthLayout)
		bucket, ok := buckets[month]
		if !ok {
			buckets[month] = &MonthlyPayment{
				Month:  month,
				Amount: payment.Amount,
				Date:   payment.Date,
			}
			continue
		}
		bucket.Amount += payment.Amount
		if payment.Date.After(bucket.Date) {
			bucket.Date = payment.Date
		}
	}

	history := make([]MonthlyPayment, 0, len(buckets))
	for _, bucket := range buckets {
		history = append(history, *bucket)
	}
	// YYYY-MM labels sort chronologically as strings.
	sort.Slice(history, func(i, j int) bool { return history[i].Month < history[j].Month })
	return history, nil
}
