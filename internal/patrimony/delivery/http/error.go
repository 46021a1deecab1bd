package http

import (
	"errors"
	"net/http"

	"golang-family-office/internal/patrimony/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// writeError maps service errors onto HTTP status codes. Ledger rejections
// are reported as unprocessable rather than server faults.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Resource not found"})
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidTransaction),
		errors.Is(err, service.ErrUnknownAssetType):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, service.ErrUncoveredSell):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
