package handler

import (
	"net/http"
	"strconv"

	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactions usecase.TransactionUseCase
	metrics      *metrics.Metrics
	logger       coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactions usecase.TransactionUseCase,
	m *metrics.Metrics,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		metrics:      m,
		logger:       logger,
	}
}

// Create handles POST /transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	txn, err := h.transactions.Create(c.Request.Context(), usecase.CreateTransactionRequest{
		TotalDiamond:     req.TotalDiamond,
		TotalAmount:      req.TotalAmount,
		ContactReference: req.NoWA,
		TargetID:         strconv.FormatInt(req.TargetID, 10),
	})
	if err != nil {
		respondError(c, h.logger, "Failed to create transaction", err)
		return
	}

	h.metrics.CountStatus(string(txn.Status))
	c.JSON(http.StatusCreated, dto.TransactionEnvelope{
		Message:     "Transaction created successfully",
		Transaction: dto.NewTransactionResponse(txn),
	})
}

// InitiatePayment handles POST /transactions/:id/pay/qris
func (h *TransactionHandler) InitiatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	initiation, err := h.transactions.InitiatePayment(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Failed to initiate QRIS payment", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentInitiationResponse(initiation))
}

// CheckStatus handles GET /transactions/status
func (h *TransactionHandler) CheckStatus(c *gin.Context) {
	var query dto.StatusQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "merchant_transaction_id and no_wa are required")
		return
	}

	txn, err := h.transactions.CheckStatus(c.Request.Context(), query.MerchantTransactionID, query.NoWA)
	if err != nil {
		respondError(c, h.logger, "Status check failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:      string(txn.Status),
		Transaction: dto.NewTransactionResponse(txn),
	})
}

// UpdateStatusByReference handles PUT /transactions/merchant/status
func (h *TransactionHandler) UpdateStatusByReference(c *gin.Context) {
	var req dto.UpdateStatusByReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	txn, err := h.transactions.UpdateStatusByReference(c.Request.Context(), req.MerchantTransactionID, req.Status)
	if err != nil {
		respondError(c, h.logger, "Administrative status update failed", err)
		return
	}

	h.metrics.CountStatus(string(txn.Status))
	c.JSON(http.StatusOK, dto.TransactionEnvelope{
		Message:     "Transaction status updated successfully",
		Transaction: dto.NewTransactionResponse(txn),
	})
}

// UpdateStatusByID handles PUT /transactions/:id
func (h *TransactionHandler) UpdateStatusByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	txn, err := h.transactions.UpdateStatusByID(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.logger, "Administrative status update failed", err)
		return
	}

	h.metrics.CountStatus(string(txn.Status))
	c.JSON(http.StatusOK, dto.TransactionEnvelope{
		Message:     "Transaction updated successfully",
		Transaction: dto.NewTransactionResponse(txn),
	})
}

// Get handles GET /transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	txn, err := h.transactions.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "Failed to get transaction", err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionEnvelope{Transaction: dto.NewTransactionResponse(txn)})
}

// List handles GET /transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "page and limit must be positive integers")
		return
	}

	page, err := h.transactions.List(c.Request.Context(), usecase.ListTransactionsRequest{
		Page:   query.Page,
		Limit:  query.Limit,
		Status: query.Status,
	})
	if err != nil {
		respondError(c, h.logger, "Failed to list transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(page))
}

// parseID reads the :id path parameter, answering 400 when it is not a positive integer
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, "Invalid transaction id")
		return 0, false
	}
	return id, true
}
