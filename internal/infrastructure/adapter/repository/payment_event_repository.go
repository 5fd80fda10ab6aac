package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentEventRepository stores the payment journal using GORM
type PaymentEventRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentEventRepository creates a new PaymentEventRepository instance
func NewPaymentEventRepository(db *gorm.DB, logger coreport.Logger) *PaymentEventRepository {
	return &PaymentEventRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Record appends one journal entry
func (r *PaymentEventRepository) Record(ctx context.Context, event *entity.PaymentEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("%w: encode journal payload: %v", errs.ErrPersistence, err)
	}
	if event.Payload == nil {
		payload = []byte("{}")
	}

	row := model.PaymentEvent{
		TransactionID:     event.TransactionID,
		MerchantReference: event.MerchantReference,
		Kind:              string(event.Kind),
		Outcome:           event.Outcome,
		Payload:           datatypes.JSON(payload),
		CreatedAt:         event.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error("Failed to record payment event", map[string]any{
			"transaction_id": event.TransactionID,
			"kind":           event.Kind,
			"error":          err,
		})
		return r.errorClassifier.ToDomain(err, errs.ErrNotFound, "record payment event")
	}

	event.ID = row.ID
	return nil
}

// ListByTransaction returns the journal of one transaction in insertion order
func (r *PaymentEventRepository) ListByTransaction(ctx context.Context, transactionID uint64) ([]*entity.PaymentEvent, error) {
	var rows []model.PaymentEvent
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomain(err, errs.ErrNotFound, "list payment events")
	}

	events := make([]*entity.PaymentEvent, 0, len(rows))
	for i := range rows {
		var payload map[string]any
		if len(rows[i].Payload) > 0 {
			if err := json.Unmarshal(rows[i].Payload, &payload); err != nil {
				return nil, fmt.Errorf("%w: decode journal payload: %v", errs.ErrPersistence, err)
			}
		}
		events = append(events, &entity.PaymentEvent{
			ID:                rows[i].ID,
			TransactionID:     rows[i].TransactionID,
			MerchantReference: rows[i].MerchantReference,
			Kind:              entity.EventKind(rows[i].Kind),
			Outcome:           rows[i].Outcome,
			Payload:           payload,
			CreatedAt:         rows[i].CreatedAt.UTC(),
		})
	}
	return events, nil
}

var _ persistence.PaymentEventRepository = (*PaymentEventRepository)(nil)
