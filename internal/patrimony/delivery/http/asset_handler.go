package http

import (
	"net/http"
	"strconv"

	"golang-family-office/internal/patrimony/dto"
	"golang-family-office/internal/patrimony/service"
	"golang-family-office/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AssetHandler handles HTTP requests for assets and their risk scores.
type AssetHandler struct {
	assetService service.AssetService
	riskService  service.RiskService
	logger       *logger.Logger
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService service.AssetService, riskService service.RiskService, logger *logger.Logger) *AssetHandler {
	return &AssetHandler{assetService: assetService, riskService: riskService, logger: logger}
}

// RegisterRoutes registers the asset routes to the Echo group.
func (h *AssetHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateAsset)
	g.GET("", h.GetAssetsByFamily)
	g.GET("/:id", h.GetAsset)
	g.PUT("/:id", h.UpdateAsset)
	g.DELETE("/:id", h.DeleteAsset)
	g.GET("/:id/risk", h.GetAssetRisk)
}

// CreateAsset godoc
// @Summary Register a new asset
// @Description Register an asset under a family; holdings come from transactions later
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset  body    dto.CreateAssetRequest  true  "Asset to register"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assets [post]
func (h *AssetHandler) CreateAsset(c echo.Context) error {
	var req dto.CreateAssetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	asset, err := h.assetService.CreateAsset(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, asset)
}

// GetAssetsByFamily godoc
// @Summary List a family's assets with positions
// @Tags assets
// @Produce  json
// @Param   family_id  query   int true  "Family ID"
// @Success 200 {array} dto.AssetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assets [get]
func (h *AssetHandler) GetAssetsByFamily(c echo.Context) error {
	familyID, err := strconv.ParseUint(c.QueryParam("family_id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid family_id"})
	}

	assets, err := h.assetService.GetAssetsByFamily(c.Request().Context(), uint(familyID))
	if err != nil {
		h.logger.Error("Failed to list assets", logger.ErrorField(err))
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, assets)
}

// GetAsset godoc
// @Summary Get an asset with its derived position
// @Tags assets
// @Produce  json
// @Param   id  path    int true  "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assets/{id} [get]
func (h *AssetHandler) GetAsset(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid asset ID"})
	}

	asset, err := h.assetService.GetAsset(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, asset)
}

// UpdateAsset godoc
// @Summary Update an asset's name, type or details
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   id  path    int true  "Asset ID"
// @Param   asset  body    dto.UpdateAssetRequest  true  "New asset fields"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid asset ID"})
	}

	var req dto.UpdateAssetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	asset, err := h.assetService.UpdateAsset(c.Request().Context(), id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, asset)
}

// DeleteAsset godoc
// @Summary Delete an asset and its ledger
// @Tags assets
// @Param   id  path    int true  "Asset ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid asset ID"})
	}

	if err := h.assetService.DeleteAsset(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetAssetRisk godoc
// @Summary Get the risk classification of one asset
// @Description Apply the per-asset risk rules against the current position
// @Tags risk
// @Produce  json
// @Param   id  path    int true  "Asset ID"
// @Success 200 {object} dto.AssetRiskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assets/{id}/risk [get]
func (h *AssetHandler) GetAssetRisk(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid asset ID"})
	}

	risk, err := h.riskService.GetAssetRisk(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, risk)
}
