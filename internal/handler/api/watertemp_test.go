//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"famboard/internal/handler/api"
	resdto "famboard/internal/handler/dto/response"
	"famboard/internal/pkg/errs"
	"famboard/internal/usecase/queries"
	"famboard/tests/common/httptest"
	commandsmock "famboard/tests/mock/commands"
	queriesmock "famboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WaterTempHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockWaterTempQueries
	mockCommands *commandsmock.MockPushCommands
	handler      *api.WaterTempHandler
}

func (s *WaterTempHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockWaterTempQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockPushCommands(s.mockCtrl)
	s.handler = api.NewWaterTempHandler(s.mockQueries, s.mockCommands)

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", authedUserID)
		c.Next()
	}

	s.router.GET("/water-temperature", authMiddleware, s.handler.CurrentTemperature)
	s.router.PUT("/water-temperature/alerts", authMiddleware, s.handler.EnableAlerts)
	s.router.DELETE("/water-temperature/alerts", authMiddleware, s.handler.DisableAlerts)
}

func (s *WaterTempHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWaterTempHandlerSuite(t *testing.T) {
	suite.Run(t, new(WaterTempHandlerTestSuite))
}

func (s *WaterTempHandlerTestSuite) TestCurrentTemperature() {
	s.Run("success: returns the latest reading", func() {
		temp := 41.5
		at := time.Date(2026, 2, 14, 8, 30, 0, 0, time.UTC)
		s.mockQueries.EXPECT().Current(gomock.Any()).
			Return(&queries.CurrentTemperature{Temperature: &temp, Timestamp: &at}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/water-temperature", nil, "bearer-token")

		var body resdto.CurrentTemperatureResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Temperature)
		s.Equal(temp, *body.Temperature)
	})

	s.Run("success: null fields when the feed is empty", func() {
		s.mockQueries.EXPECT().Current(gomock.Any()).
			Return(&queries.CurrentTemperature{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/water-temperature", nil, "bearer-token")

		var body resdto.CurrentTemperatureResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body.Temperature)
		s.Nil(body.Timestamp)
	})

	s.Run("error: 502 when the sensor is unreachable", func() {
		s.mockQueries.EXPECT().Current(gomock.Any()).
			Return(nil, errs.ErrUpstreamUnavailable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/water-temperature", nil, "bearer-token")
		s.Equal(http.StatusBadGateway, rec.Code)
	})
}

func (s *WaterTempHandlerTestSuite) TestAlertOptIn() {
	s.Run("enable returns 204", func() {
		s.mockCommands.EXPECT().EnableTempAlerts(gomock.Any(), authedUserID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/water-temperature/alerts", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("disable returns 204", func() {
		s.mockCommands.EXPECT().DisableTempAlerts(gomock.Any(), authedUserID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/water-temperature/alerts", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
