package http

import (
	"context"
	"net/http"
	"strconv"

	"golang-family-office/internal/patrimony/dto"
	"golang-family-office/internal/patrimony/service"
	"golang-family-office/pkg/logger"

	"github.com/labstack/echo/v4"
)

// FamilyHandler handles HTTP requests for families and their cash balance.
type FamilyHandler struct {
	portfolioService service.PortfolioService
	logger           *logger.Logger
}

// NewFamilyHandler creates a new FamilyHandler.
func NewFamilyHandler(portfolioService service.PortfolioService, logger *logger.Logger) *FamilyHandler {
	return &FamilyHandler{portfolioService: portfolioService, logger: logger}
}

// RegisterRoutes registers the family routes to the Echo group.
func (h *FamilyHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateFamily)
	g.GET("", h.GetAllFamilies)
	g.GET("/:id", h.GetFamily)
	g.DELETE("/:id", h.DeleteFamily)
	g.GET("/:id/balance", h.GetBalance)
	g.POST("/:id/deposit", h.Deposit)
	g.POST("/:id/withdraw", h.Withdraw)
}

// CreateFamily godoc
// @Summary Create a new family
// @Description Create a family with an optional opening cash balance
// @Tags families
// @Accept  json
// @Produce  json
// @Param   family  body    dto.CreateFamilyRequest  true  "Family to create"
// @Success 201 {object} dto.FamilyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /families [post]
func (h *FamilyHandler) CreateFamily(c echo.Context) error {
	var req dto.CreateFamilyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Family name is required"})
	}

	family, err := h.portfolioService.CreateFamily(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, family)
}

// GetAllFamilies godoc
// @Summary List families
// @Description List every registered family
// @Tags families
// @Produce  json
// @Success 200 {array} dto.FamilyResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /families [get]
func (h *FamilyHandler) GetAllFamilies(c echo.Context) error {
	families, err := h.portfolioService.GetAllFamilies(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get families", logger.ErrorField(err))
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, families)
}

// GetFamily godoc
// @Summary Get a family by ID
// @Tags families
// @Produce  json
// @Param   id  path    int true  "Family ID"
// @Success 200 {object} dto.FamilyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /families/{id} [get]
func (h *FamilyHandler) GetFamily(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid family ID"})
	}

	family, err := h.portfolioService.GetFamily(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, family)
}

// DeleteFamily godoc
// @Summary Delete a family
// @Description Delete a family and, by cascade, its assets and transactions
// @Tags families
// @Param   id  path    int true  "Family ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /families/{id} [delete]
func (h *FamilyHandler) DeleteFamily(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid family ID"})
	}

	if err := h.portfolioService.DeleteFamily(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetBalance godoc
// @Summary Get the aggregated patrimony of a family
// @Description Value every asset from its ledger and aggregate with the cash balance
// @Tags families
// @Produce  json
// @Param   id  path    int true  "Family ID"
// @Success 200 {object} dto.FamilyBalanceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /families/{id}/balance [get]
func (h *FamilyHandler) GetBalance(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid family ID"})
	}

	balance, err := h.portfolioService.GetBalance(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, balance)
}

// Deposit godoc
// @Summary Deposit cash into a family's balance
// @Tags families
// @Accept  json
// @Produce  json
// @Param   id  path    int true  "Family ID"
// @Param   operation  body    dto.CashOperationRequest  true  "Amount to deposit"
// @Success 200 {object} dto.FamilyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /families/{id}/deposit [post]
func (h *FamilyHandler) Deposit(c echo.Context) error {
	return h.cashOperation(c, h.portfolioService.Deposit)
}

// Withdraw godoc
// @Summary Withdraw cash from a family's balance
// @Description Rejected when the amount exceeds the available cash balance
// @Tags families
// @Accept  json
// @Produce  json
// @Param   id  path    int true  "Family ID"
// @Param   operation  body    dto.CashOperationRequest  true  "Amount to withdraw"
// @Success 200 {object} dto.FamilyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /families/{id}/withdraw [post]
func (h *FamilyHandler) Withdraw(c echo.Context) error {
	return h.cashOperation(c, h.portfolioService.Withdraw)
}

func (h *FamilyHandler) cashOperation(
	c echo.Context,
	op func(ctx context.Context, familyID uint, req *dto.CashOperationRequest) (*dto.FamilyResponse, error),
) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid family ID"})
	}

	var req dto.CashOperationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	family, err := op(c.Request().Context(), id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, family)
}

func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
