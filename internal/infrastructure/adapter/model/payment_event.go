package model

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentEvent is one row of the append-only payment journal
type PaymentEvent struct {
	ID                uint64         `gorm:"primaryKey;autoIncrement"`
	TransactionID     uint64         `gorm:"not null;index"`
	MerchantReference string         `gorm:"column:merchant_transaction_id;not null;size:64;index"`
	Kind              string         `gorm:"not null;size:32"`
	Outcome           string         `gorm:"size:32"`
	Payload           datatypes.JSON `gorm:"type:json"`
	CreatedAt         time.Time      `gorm:"not null"`
}

// TableName specifies the table name for PaymentEvent
func (PaymentEvent) TableName() string {
	return "payment_events"
}
