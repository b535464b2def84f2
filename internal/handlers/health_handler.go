package handlers

import (
	"net/http"
	"time"

	"customer-service/internal/errors"
	"customer-service/internal/repositories"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	repo    repositories.CustomerRepositoryInterface
	backend string
}

// HealthResponse is the body of a healthy check
type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	Customers int    `json:"customers"`
	Time      string `json:"time"`
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(repo repositories.CustomerRepositoryInterface, backend string) *HealthCheckHandler {
	return &HealthCheckHandler{repo: repo, backend: backend}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and customer store status
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (store unreachable)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.repo.Ping(); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Customer store unreachable"))
	}

	count, err := h.repo.Count()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Customer store unreachable"))
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Store:     h.backend,
		Customers: count,
		Time:      time.Now().UTC().Format(time.RFC3339),
	})
}
