package entity

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/topup-processor/internal/domain/error"
	tport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
)

// Status is the lifecycle status of a top-up transaction
type Status string

// Status constants
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// referencePrefix starts every merchant reference
const referencePrefix = "TRX"

// allowedTransitions lists, for each status, the statuses it may move to
var allowedTransitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusSuccess, StatusFailed},
	StatusProcessing: {StatusSuccess, StatusFailed},
	StatusSuccess:    {},
	StatusFailed:     {},
}

// ParseStatus converts a raw status string into a known Status
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := allowedTransitions[s]; !ok {
		return "", false
	}
	return s, true
}

// Statuses returns every known status in lifecycle order
func Statuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusSuccess, StatusFailed}
}

// IsTerminal reports whether no further transition is possible
func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// CanTransitionTo reports whether the state machine allows s -> next
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transaction is a single top-up purchase and its payment progress
type Transaction struct {
	ID                uint64    // System-assigned identifier
	MerchantReference string    // Globally unique reference shared with the provider
	TotalDiamond      int64     // Quantity of in-game currency purchased
	TotalAmount       int64     // Price in IDR, sent to the provider verbatim
	ContactReference  string    // Payer contact (WhatsApp number)
	TargetID          string    // In-game account receiving the diamonds
	Status            Status    // Lifecycle status
	CreatedAt         time.Time // When the transaction was recorded
	UpdatedAt         time.Time // Last status transition
}

// NewTransaction builds a pending transaction with the given reference
func NewTransaction(
	reference string,
	totalDiamond int64,
	totalAmount int64,
	contactReference string,
	targetID string,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, errs.NewValidationError("merchant_transaction_id", "must not be empty")
	}
	if totalDiamond <= 0 {
		return nil, errs.NewValidationError("total_diamond", "must be a positive integer")
	}
	if totalAmount <= 0 {
		return nil, errs.NewValidationError("total_amount", "must be a positive integer")
	}
	if strings.TrimSpace(contactReference) == "" {
		return nil, errs.NewValidationError("no_wa", "must not be empty")
	}

	now := timeProvider.Now()
	return &Transaction{
		MerchantReference: reference,
		TotalDiamond:      totalDiamond,
		TotalAmount:       totalAmount,
		ContactReference:  strings.TrimSpace(contactReference),
		TargetID:          strings.TrimSpace(targetID),
		Status:            StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// NewMerchantReference allocates a reference of the form TRX-<unix millis>-<10 hex chars>
func NewMerchantReference(now time.Time) string {
	id := uuid.New()
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:10]
	return fmt.Sprintf("%s-%d-%s", referencePrefix, now.UnixMilli(), suffix)
}

// Description is the human-readable payment description shown by the provider
func (t *Transaction) Description() string {
	return fmt.Sprintf("Top Up %d Diamonds", t.TotalDiamond)
}

// OwnedBy reports whether contact matches the payer contact, in constant time
func (t *Transaction) OwnedBy(contact string) bool {
	return subtle.ConstantTimeCompare([]byte(t.ContactReference), []byte(strings.TrimSpace(contact))) == 1
}

// Clone returns a copy that can be mutated independently
func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
