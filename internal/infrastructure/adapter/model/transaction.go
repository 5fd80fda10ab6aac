package model

import (
	"time"
)

// Transaction represents the database model for top-up transactions
type Transaction struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement"`
	MerchantReference string    `gorm:"column:merchant_transaction_id;uniqueIndex;not null;size:64"`
	TotalDiamond      int64     `gorm:"not null"`
	TotalAmount       int64     `gorm:"not null"`
	ContactReference  string    `gorm:"column:no_wa;not null;size:32"`
	TargetID          string    `gorm:"not null;size:64"`
	Status            string    `gorm:"not null;size:20;index"`
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
