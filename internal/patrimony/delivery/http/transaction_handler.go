package http

import (
	"net/http"
	"strconv"

	"golang-family-office/internal/patrimony/dto"
	"golang-family-office/internal/patrimony/service"
	"golang-family-office/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles HTTP requests for the transaction ledger.
type TransactionHandler struct {
	transactionService service.TransactionService
	logger             *logger.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService service.TransactionService, logger *logger.Logger) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, logger: logger}
}

// RegisterRoutes registers the transaction routes to the Echo group.
func (h *TransactionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateTransaction)
	g.GET("", h.GetTransactionsByAsset)
	g.GET("/:id", h.GetTransaction)
	g.PUT("/:id", h.UpdateTransaction)
	g.DELETE("/:id", h.DeleteTransaction)
}

// CreateTransaction godoc
// @Summary Record a buy or sell
// @Description Append a record to an asset's ledger; rejected when the resulting ledger would not replay cleanly
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction  body    dto.CreateTransactionRequest  true  "Transaction to record"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	tx, err := h.transactionService.CreateTransaction(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, tx)
}

// GetTransactionsByAsset godoc
// @Summary Get an asset's ledger with its derived position
// @Tags transactions
// @Produce  json
// @Param   asset_id  query   int true  "Asset ID"
// @Success 200 {object} dto.TransactionSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /transactions [get]
func (h *TransactionHandler) GetTransactionsByAsset(c echo.Context) error {
	assetID, err := strconv.ParseUint(c.QueryParam("asset_id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid asset_id"})
	}

	summary, err := h.transactionService.GetTransactionsByAsset(c.Request().Context(), uint(assetID))
	if err != nil {
		h.logger.Error("Failed to load ledger", logger.ErrorField(err))
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// GetTransaction godoc
// @Summary Get a single transaction
// @Tags transactions
// @Produce  json
// @Param   id  path    int true  "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid transaction ID"})
	}

	tx, err := h.transactionService.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, tx)
}

// UpdateTransaction godoc
// @Summary Correct a transaction
// @Description Replace quantity, price or date; rejected when the corrected ledger would not replay cleanly
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id  path    int true  "Transaction ID"
// @Param   transaction  body    dto.UpdateTransactionRequest  true  "Corrected fields"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid transaction ID"})
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	tx, err := h.transactionService.UpdateTransaction(c.Request().Context(), id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, tx)
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Description Rejected when the remaining ledger would not replay cleanly
// @Tags transactions
// @Param   id  path    int true  "Transaction ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid transaction ID"})
	}

	if err := h.transactionService.DeleteTransaction(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
