package dto

import (
	"strconv"
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/payment"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/usecase"
)

// CreateTransactionRequest is the body of POST /transactions
type CreateTransactionRequest struct {
	TotalDiamond int64  `json:"total_diamond" binding:"required,gt=0"`
	TotalAmount  int64  `json:"total_amount" binding:"required,gt=0"`
	NoWA         string `json:"no_wa" binding:"required"`
	TargetID     int64  `json:"target_id" binding:"required,gt=0"`
}

// UpdateStatusByReferenceRequest is the body of PUT /transactions/merchant/status
type UpdateStatusByReferenceRequest struct {
	MerchantTransactionID string `json:"merchant_transaction_id"`
	Status                string `json:"status"`
}

// UpdateStatusRequest is the body of PUT /transactions/:id
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// StatusQuery is the query of GET /transactions/status
type StatusQuery struct {
	MerchantTransactionID string `form:"merchant_transaction_id" binding:"required"`
	NoWA                  string `form:"no_wa" binding:"required"`
}

// ListQuery is the query of GET /transactions
type ListQuery struct {
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=10" binding:"min=1"`
	Status string `form:"status"`
}

// TransactionResponse is the wire form of a transaction
type TransactionResponse struct {
	ID                    uint64    `json:"id"`
	MerchantTransactionID string    `json:"merchant_transaction_id"`
	TotalDiamond          int64     `json:"total_diamond"`
	TotalAmount           int64     `json:"total_amount"`
	NoWA                  string    `json:"no_wa"`
	TargetID              any       `json:"target_id"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// NewTransactionResponse converts a transaction entity
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                    txn.ID,
		MerchantTransactionID: txn.MerchantReference,
		TotalDiamond:          txn.TotalDiamond,
		TotalAmount:           txn.TotalAmount,
		NoWA:                  txn.ContactReference,
		TargetID:              targetIDValue(txn.TargetID),
		Status:                string(txn.Status),
		CreatedAt:             txn.CreatedAt,
		UpdatedAt:             txn.UpdatedAt,
	}
}

// targetIDValue renders numeric target ids as numbers, as they were submitted
func targetIDValue(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	return raw
}

// TransactionEnvelope wraps a single transaction with an optional message
type TransactionEnvelope struct {
	Message     string              `json:"message,omitempty"`
	Transaction TransactionResponse `json:"transaction"`
}

// StatusResponse is the answer of the public status poll
type StatusResponse struct {
	Status      string              `json:"status"`
	Transaction TransactionResponse `json:"transaction"`
}

// Pagination describes the page of a listing
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// TransactionListResponse is one page of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

// NewTransactionListResponse converts a page of transactions
func NewTransactionListResponse(page *usecase.TransactionPage) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(page.Transactions))
	for _, txn := range page.Transactions {
		items = append(items, NewTransactionResponse(txn))
	}
	return TransactionListResponse{
		Transactions: items,
		Pagination: Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages(),
		},
	}
}

// QrisResponse carries the normalized QR fields of a created payment
type QrisResponse struct {
	QrString      *string `json:"qr_string"`
	QrURL         *string `json:"qr_url"`
	RedirectURL   *string `json:"redirect_url"`
	TransactionID *string `json:"transaction_id"`
	Raw           any     `json:"raw"`
}

// PaymentInitiationResponse is the answer of POST /transactions/:id/pay/qris
type PaymentInitiationResponse struct {
	Message       string       `json:"message"`
	ReferenceID   string       `json:"reference_id"`
	TransactionID uint64       `json:"transaction_id"`
	Qris          QrisResponse `json:"qris"`
}

// NewPaymentInitiationResponse converts a payment initiation
func NewPaymentInitiationResponse(p *usecase.PaymentInitiation) PaymentInitiationResponse {
	return PaymentInitiationResponse{
		Message:       "QRIS payment initiated",
		ReferenceID:   p.ReferenceID,
		TransactionID: p.TransactionID,
		Qris:          newQrisResponse(p.Qris),
	}
}

func newQrisResponse(q *payment.QrisResult) QrisResponse {
	if q == nil {
		return QrisResponse{}
	}
	return QrisResponse{
		QrString:      q.QrString,
		QrURL:         q.QrURL,
		RedirectURL:   q.RedirectURL,
		TransactionID: q.ProviderTransactionID,
		Raw:           q.Raw,
	}
}

// HealthResponse is the answer of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
