// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"
	"slices"

	"vitrine/internal/delivery/api/response"
	"vitrine/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Categories lists the fixed category catalogue in display order.
func Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, slices.Clone(entity.Categories))
}
