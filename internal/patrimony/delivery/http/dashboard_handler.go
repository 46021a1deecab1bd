package http

import (
	"net/http"

	"golang-family-office/internal/patrimony/service"
	"golang-family-office/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles HTTP requests for the family overview, its risk
// scores and its alerts.
type DashboardHandler struct {
	dashboardService service.DashboardService
	riskService      service.RiskService
	alertService     service.AlertService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(
	dashboardService service.DashboardService,
	riskService service.RiskService,
	alertService service.AlertService,
	logger *logger.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		riskService:      riskService,
		alertService:     alertService,
		logger:           logger,
	}
}

// RegisterRoutes registers the overview routes to the families Echo group.
func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/:id/dashboard", h.GetDashboard)
	g.GET("/:id/risk", h.GetFamilyRisk)
	g.GET("/:id/risk/assets", h.GetFamilyAssetRisks)
	g.GET("/:id/alerts", h.GetAlerts)
	g.POST("/:id/alerts/trigger", h.TriggerAlerts)
}

// GetDashboard godoc
// @Summary Get the family dashboard
// @Description Patrimony total, distribution by class, largest holdings, recent alerts and the weighted risk score
// @Tags dashboard
// @Produce  json
// @Param   id  path    int true  "Family ID"
// @Success 200 {object} dto.DashboardResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /families/{id}/dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid family ID"})
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("Failed to build dashboard", logger.ErrorField(err))
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

// GetFamilyRisk godoc
// @Summary Get the family's weighted risk score
// @Tags risk
// @Produce  json
// @Param   id  path    int true  "Family ID"
// @Success 200 {object} dto.FamilyRiskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /families/{id}/risk [get]
func (h *DashboardHandler) GetFamilyRisk(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid family ID"})
	}

	risk, err := h.riskService.GetFamilyRisk(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, risk)
}

// GetFamilyAssetRisks godoc
// @Summary Get the risk classification of every asset in a family
// @Tags risk
// @Produce  json
// @Param   id  path    int true  "Family ID"
// @Success 200 {array} dto.AssetRiskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /families/{id}/risk/assets [get]
func (h *DashboardHandler) GetFamilyAssetRisks(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid family ID"})
	}

	risks, err := h.riskService.GetFamilyAssetRisks(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, risks)
}

// GetAlerts godoc
// @Summary List a family's alerts
// @Tags alerts
// @Produce  json
// @Param   id  path    int true  "Family ID"
// @Success 200 {array} dto.AlertResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /families/{id}/alerts [get]
func (h *DashboardHandler) GetAlerts(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid family ID"})
	}

	alerts, err := h.alertService.GetAlertsByFamily(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, alerts)
}

// TriggerAlerts godoc
// @Summary Regenerate a family's threshold alerts
// @Description Retract the managed alert kinds and insert the freshly derived set in one transaction
// @Tags alerts
// @Produce  json
// @Param   id  path    int true  "Family ID"
// @Success 200 {object} dto.TriggerAlertsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /families/{id}/alerts/trigger [post]
func (h *DashboardHandler) TriggerAlerts(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid family ID"})
	}

	result, err := h.alertService.TriggerForFamily(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
