package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"customer-service/internal/models"
	"customer-service/internal/repositories"
	"customer-service/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthCheckHandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	echo *echo.Echo
}

func (s *HealthCheckHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
}

func (s *HealthCheckHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHealthCheckHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerTestSuite))
}

func (s *HealthCheckHandlerTestSuite) TestHealthy() {
	repo := repositories.NewCustomerRepository(repositories.NewSequenceGenerator())
	_, err := repo.Create(&models.Customer{FirstName: "A"})
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(NewHealthCheckHandler(repo, "memory").HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)

	var body HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("healthy", body.Status)
	s.Equal("memory", body.Store)
	s.Equal(1, body.Customers)
	s.NotEmpty(body.Time)
}

func (s *HealthCheckHandlerTestSuite) TestPingFailure() {
	repo := repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	repo.EXPECT().Ping().Return(errors.New("sql: database is closed"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "health-trace")

	s.NoError(NewHealthCheckHandler(repo, "sqlite").HealthCheck(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_003", response.Error.Code)
	s.Equal("health-trace", response.Error.TraceID)
	s.NotContains(rec.Body.String(), "database is closed")
}

func (s *HealthCheckHandlerTestSuite) TestCountFailure() {
	repo := repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	repo.EXPECT().Ping().Return(nil)
	repo.EXPECT().Count().Return(0, errors.New("count failed"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.NoError(NewHealthCheckHandler(repo, "sqlite").HealthCheck(s.echo.NewContext(req, rec)))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}
