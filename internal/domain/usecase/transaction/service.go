package transaction

import (
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/event"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/payment"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/usecase"
)

const (
	// defaultStatusAttempts bounds the compare-and-set loop. A lost swap means the row
	// moved forward, and the longest chain is pending -> processing -> terminal.
	defaultStatusAttempts = 4

	defaultPageLimit = 10
	maxPageLimit     = 100
)

// ReferenceGenerator allocates merchant references
type ReferenceGenerator func(now time.Time) string

// Service implements usecase.TransactionUseCase
type Service struct {
	repo         persistence.TransactionRepository
	provider     payment.Provider
	statusCache  cache.StatusCache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *TransactionValidator
	manager      *TransactionManager

	newReference ReferenceGenerator
}

// Option customizes a Service
type Option func(*Service)

// WithReferenceGenerator replaces the merchant reference generator
func WithReferenceGenerator(gen ReferenceGenerator) Option {
	return func(s *Service) {
		s.newReference = gen
	}
}

// WithStatusAttempts overrides how many compare-and-set rounds a status change may take
func WithStatusAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.manager.maxAttempts = n
		}
	}
}

// WithPaymentEvents enables the payment journal
func WithPaymentEvents(events persistence.PaymentEventRepository) Option {
	return func(s *Service) {
		s.manager.journal.events = events
	}
}

// WithStatusCache enables caching of terminal transactions for status polls
func WithStatusCache(c cache.StatusCache) Option {
	return func(s *Service) {
		s.statusCache = c
		s.manager.statusCache = c
	}
}

// WithPublisher enables fulfillment events on successful payment
func WithPublisher(p event.Publisher) Option {
	return func(s *Service) {
		s.manager.publisher = p
	}
}

// NewService creates the transaction lifecycle service
func NewService(
	repo persistence.TransactionRepository,
	provider payment.Provider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts ...Option,
) *Service {
	journal := &paymentJournal{timeProvider: timeProvider, logger: logger}
	s := &Service{
		repo:         repo,
		provider:     provider,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewTransactionValidator(),
		manager:      newTransactionManager(repo, journal, timeProvider, logger),
		newReference: entity.NewMerchantReference,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ usecase.TransactionUseCase = (*Service)(nil)
