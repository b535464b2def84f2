package handlers

import (
	stderrors "errors"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"customer-service/internal/dto"
	"customer-service/internal/errors"
	"customer-service/internal/repositories"
	"customer-service/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	repo    repositories.CustomerRepositoryInterface
	logger  services.CustomerLoggerInterface
	metrics services.MetricsRecorderInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	repo repositories.CustomerRepositoryInterface,
	logger services.CustomerLoggerInterface,
	metrics services.MetricsRecorderInterface,
) *CustomerHandler {
	return &CustomerHandler{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
}

// RegisterRoutes mounts the customer resource on g
func (h *CustomerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListCustomers)
	g.POST("", h.CreateCustomer)
	g.GET("/:id", h.GetCustomer)
	g.DELETE("/:id", h.DeleteCustomer)
}

// ListCustomers returns every stored customer
// @Summary List customers
// @Description Returns all customers in insertion order, an empty array when there are none
// @Tags Customers
// @Produce json
// @Success 200 {array} models.Customer "Customers"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customer [get]
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	customers, err := h.repo.FindAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	body, err := dto.MarshalCustomers(customers)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.RecordProcessingTime("customer_list", time.Since(startTime))
	h.metrics.RecordGauge("customers_stored", float64(len(customers)), nil)
	h.logger.LogCustomersListed(ctx, len(customers))

	return c.JSONBlob(http.StatusOK, body)
}

// CreateCustomer stores a new customer
// @Summary Create customer
// @Description Stores a customer and assigns it a new identifier. Any client supplied id is ignored.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer body dto.CustomerPayload true "Customer"
// @Success 201 {object} models.Customer "Created customer"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Empty or malformed body"
// @Failure 415 {object} errors.ErrorResponse "REQUEST_003 - Body is not JSON"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customer [post]
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	if !acceptsJSON(c.Request().Header.Get(echo.HeaderContentType)) {
		h.logger.LogValidationFailure(ctx, "customer_create", "unsupported content type")
		h.metrics.IncrementCounter("customer_rejected", map[string]string{"reason": "unsupported_media_type"})
		return SendError(c, errors.RequestUnsupportedMedia)
	}

	customer, err := dto.DecodeCustomer(c.Request().Body)
	if err != nil {
		h.logger.LogValidationFailure(ctx, "customer_create", err.Error())
		h.metrics.IncrementCounter("customer_rejected", map[string]string{"reason": "malformed_body"})
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("request body must be a JSON customer object"))
	}

	created, err := h.repo.Create(customer)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("customer_created", nil)
	h.metrics.RecordProcessingTime("customer_create", time.Since(startTime))
	h.recordStoredCount()
	h.logger.LogCustomerCreated(ctx, created.ID)

	return sendJSON(c, http.StatusCreated, created)
}

// GetCustomer returns one customer
// @Summary Get customer
// @Description Returns the customer with the given id. A missing customer yields 404 with an empty body.
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Customer "Customer"
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_004 - Invalid customer ID"
// @Failure 404 "Customer not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customer/{id} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	id, err := parseCustomerID(c)
	if err != nil {
		h.logger.LogValidationFailure(ctx, "customer_get", err.Error())
		return SendError(c, errors.CustomerInvalidID)
	}

	customer, err := h.repo.FindByID(id)
	h.metrics.RecordProcessingTime("customer_get", time.Since(startTime))
	if stderrors.Is(err, repositories.ErrCustomerNotFound) {
		h.metrics.IncrementCounter("customer_lookup", map[string]string{"operation": "get", "result": "not_found"})
		h.logger.LogCustomerNotFound(ctx, "get", id)
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("customer_lookup", map[string]string{"operation": "get", "result": "found"})

	return sendJSON(c, http.StatusOK, customer)
}

// DeleteCustomer removes one customer
// @Summary Delete customer
// @Description Removes the customer with the given id. A missing customer yields 404 with an empty body.
// @Tags Customers
// @Param id path int true "Customer ID"
// @Success 204 "Customer deleted"
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_004 - Invalid customer ID"
// @Failure 404 "Customer not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customer/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	id, err := parseCustomerID(c)
	if err != nil {
		h.logger.LogValidationFailure(ctx, "customer_delete", err.Error())
		return SendError(c, errors.CustomerInvalidID)
	}

	deleted, err := h.repo.Delete(id)
	if err != nil {
		return SendSystemError(c, err)
	}
	h.metrics.RecordProcessingTime("customer_delete", time.Since(startTime))

	if !deleted {
		h.metrics.IncrementCounter("customer_lookup", map[string]string{"operation": "delete", "result": "not_found"})
		h.logger.LogCustomerNotFound(ctx, "delete", id)
		return c.NoContent(http.StatusNotFound)
	}

	h.metrics.IncrementCounter("customer_deleted", nil)
	h.recordStoredCount()
	h.logger.LogCustomerDeleted(ctx, id)

	return c.NoContent(http.StatusNoContent)
}

// recordStoredCount refreshes the customers_stored gauge; a failed count only skips the update
func (h *CustomerHandler) recordStoredCount() {
	count, err := h.repo.Count()
	if err != nil {
		return
	}
	h.metrics.RecordGauge("customers_stored", float64(count), nil)
}

func parseCustomerID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// acceptsJSON reports whether a request content type can carry a JSON body.
// A missing header is accepted.
func acceptsJSON(contentType string) bool {
	if contentType == "" {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == echo.MIMEApplicationJSON || strings.HasSuffix(mediaType, "+json")
}
